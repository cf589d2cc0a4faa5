package generate

import (
	"errors"
	"fmt"

	"github.com/minhvu/atelier/internal/llm"
)

// ErrorKind classifies a generation failure. The four kinds are the
// complete set; every failure path maps to exactly one.
type ErrorKind string

const (
	// KindMissingCredential: no API key configured, or the backend
	// rejected the supplied key.
	KindMissingCredential ErrorKind = "missing_credential"

	// KindQuotaExceeded: the backend signalled a rate or quota limit.
	KindQuotaExceeded ErrorKind = "quota_exceeded"

	// KindMalformedOutput: the backend returned content that violates the
	// schema or the exercise invariants.
	KindMalformedOutput ErrorKind = "malformed_output"

	// KindTransportFailure: connectivity problems, timeouts, backend
	// outages, and anything otherwise unclassified.
	KindTransportFailure ErrorKind = "transport_failure"
)

// Error is the typed result of a failed generation.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// classify maps a raw backend or validation error onto the taxonomy.
// The mapping is deterministic: a rate-limit signal always becomes
// QuotaExceeded, never TransportFailure.
func classify(err error) *Error {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr
	}

	var missing *llm.ErrMissingCredential
	if errors.As(err, &missing) {
		return &Error{Kind: KindMissingCredential, Err: err}
	}

	var rateLimit *llm.ErrRateLimit
	if errors.As(err, &rateLimit) {
		return &Error{Kind: KindQuotaExceeded, Err: err}
	}

	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		return &Error{Kind: KindMalformedOutput, Err: err}
	}

	var truncated *llm.ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return &Error{Kind: KindMalformedOutput, Err: err}
	}

	// Timeouts, cancellations, provider outages and unknowns all fall
	// through to transport.
	return &Error{Kind: KindTransportFailure, Err: err}
}

// malformed wraps a local validation or decode failure.
func malformed(err error) *Error {
	return &Error{Kind: KindMalformedOutput, Err: err}
}
