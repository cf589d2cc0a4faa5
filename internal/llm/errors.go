package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrMissingCredential indicates no usable API key was found, or the
// backend rejected the one supplied (401/403).
type ErrMissingCredential struct {
	Provider string
	Err      error
}

func (e *ErrMissingCredential) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s credential rejected: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("no API key configured for provider %q", e.Provider)
}

func (e *ErrMissingCredential) Unwrap() error { return e.Err }

// ErrRateLimit indicates the backend returned a rate/quota limit signal (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the backend returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the backend is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider unavailable: %v", e.Err)
	}
	return "provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated at MaxTokens.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model response truncated: max tokens exceeded"
}
