package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit is returned when the provider throttles us (HTTP 429).
// RetryAfter is zero when the provider gave no hint.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse carries model output that failed to parse as JSON or
// to validate against the request schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable wraps transport failures and server-side errors.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return "LLM provider unavailable: " + e.Err.Error()
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded is returned when structured output hit the token
// limit before the JSON was complete.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// Failure reasons reported by Reason.
const (
	ReasonRateLimited = "rate_limited"
	ReasonInvalid     = "invalid_response"
	ReasonUnavailable = "unavailable"
	ReasonTruncated   = "truncated"
	ReasonTimeout     = "timeout"
	ReasonCanceled    = "canceled"
	ReasonOther       = "other"
)

// Reason classifies err into one of the Reason constants for logs. It
// returns "" for a nil error.
func Reason(err error) string {
	var (
		rl      *ErrRateLimit
		invalid *ErrInvalidResponse
		down    *ErrProviderUnavailable
		maxTok  *ErrMaxTokensExceeded
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, context.Canceled):
		return ReasonCanceled
	case errors.As(err, &rl):
		return ReasonRateLimited
	case errors.As(err, &maxTok):
		return ReasonTruncated
	case errors.As(err, &invalid):
		return ReasonInvalid
	case errors.As(err, &down):
		return ReasonUnavailable
	}
	return ReasonOther
}
