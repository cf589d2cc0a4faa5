package llm

import (
	"os"
	"time"
)

// Config holds provider selection and credentials.
type Config struct {
	// Provider selects the backend: "gemini", "openai", "anthropic", "mock".
	Provider string

	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig

	// Grounding enables web-search grounding on content generation for
	// backends that support it (currently Gemini).
	Grounding bool

	// Timeout bounds a single request. Default: 45s.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenAIConfig holds OpenAI-specific configuration.
// BaseURL allows OpenRouter and other compatible endpoints.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// DefaultConfig returns a Config with sensible defaults.
// Gemini is the default provider: it is the backend the exercise
// generation prompts were tuned against.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Grounding: true,
		Timeout:   45 * time.Second,
	}
}

// ConfigFromEnv builds a Config from ATELIER_* environment variables,
// falling back to the standard provider key variables (GEMINI_API_KEY,
// OPENAI_API_KEY, ANTHROPIC_API_KEY) and then to defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("ATELIER_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("ATELIER_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	} else if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("ATELIER_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := os.Getenv("ATELIER_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	} else if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("ATELIER_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("ATELIER_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("ATELIER_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	} else if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("ATELIER_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if os.Getenv("ATELIER_NO_GROUNDING") != "" {
		cfg.Grounding = false
	}

	return cfg
}

// WithCredential returns a copy of the config with the selected provider's
// API key replaced by the user-supplied override. An empty override leaves
// the config unchanged. This is how a teacher supplies an alternate key
// after a quota error without touching the environment.
func (c Config) WithCredential(key string) Config {
	if key == "" {
		return c
	}
	switch c.Provider {
	case "gemini":
		c.Gemini.APIKey = key
	case "openai":
		c.OpenAI.APIKey = key
	case "anthropic":
		c.Anthropic.APIKey = key
	}
	return c
}

// Validate checks that the selected provider has a credential.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return &ErrMissingCredential{Provider: "gemini"}
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return &ErrMissingCredential{Provider: "openai"}
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return &ErrMissingCredential{Provider: "anthropic"}
		}
	case "mock":
		// No credential needed.
	default:
		return &ErrMissingCredential{Provider: c.Provider}
	}
	return nil
}
