package generate

import "time"

// ImageStrategy selects how item image references are produced.
type ImageStrategy string

const (
	// ImageStrategyKeyword asks the model for a short descriptive keyword
	// per item and expands it locally into a stock-photo locator. This is
	// the default: models routinely invent dead image URLs.
	ImageStrategyKeyword ImageStrategy = "keyword"

	// ImageStrategyDirect trusts the model to return a usable image URL.
	// Legacy behavior, kept for backends that return real asset locators.
	ImageStrategyDirect ImageStrategy = "direct"
)

// Config holds exercise generation settings.
type Config struct {
	// ItemCount is the number of items to request per exercise.
	ItemCount int

	MaxTokens   int
	Temperature float64

	// ImageStrategy selects keyword expansion (default) or direct URLs.
	ImageStrategy ImageStrategy

	// CallTimeout bounds each external call (content, cover image).
	// Expiry surfaces as a transport failure.
	CallTimeout time.Duration
}

// DefaultConfig returns sensible defaults for exercise generation.
func DefaultConfig() Config {
	return Config{
		ItemCount:     4,
		MaxTokens:     2048,
		Temperature:   0.7,
		ImageStrategy: ImageStrategyKeyword,
		CallTimeout:   45 * time.Second,
	}
}
