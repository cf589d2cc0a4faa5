package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the generative backend.
// Consumers call Generate with a Request and receive structured JSON
// (when a Schema is set) or raw text.
type Provider interface {
	// Generate sends a prompt to the backend and returns its response.
	// When the request carries a Schema the provider uses its native
	// structured-output mechanism and the returned Content is JSON that
	// has already passed schema validation.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the backend's role and constraints.
	System string

	// Messages is the conversation. Atelier only ever sends single-turn
	// requests, so this is one user message in practice.
	Messages []Message

	// Schema, when set, constrains the response to structured JSON.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means deterministic.
	Temperature float64

	// Grounded asks the provider to ground the response in web search and
	// return citations, when the backend supports it. Best effort: providers
	// without grounding ignore it.
	Grounded bool
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the backend.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "quiz-exercise".
	Name string

	// Description tells the backend what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Citation is a grounding reference attached to a response.
type Citation struct {
	Title string
	URI   string
}

// Response holds the backend's output.
type Response struct {
	// Content is the generated output: validated JSON when a Schema was
	// requested, otherwise the raw text wrapped as json.RawMessage.
	Content json.RawMessage

	// Citations lists grounding references, if the backend returned any.
	Citations []Citation

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
