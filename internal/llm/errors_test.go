package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"rate limit", &ErrRateLimit{Err: errors.New("429")}, ReasonRateLimited},
		{"wrapped rate limit", fmt.Errorf("generate: %w", &ErrRateLimit{}), ReasonRateLimited},
		{"invalid", &ErrInvalidResponse{Err: errors.New("bad json")}, ReasonInvalid},
		{"unavailable", &ErrProviderUnavailable{}, ReasonUnavailable},
		{"truncated", &ErrMaxTokensExceeded{}, ReasonTruncated},
		{"deadline", context.DeadlineExceeded, ReasonTimeout},
		{"deadline behind transport", &ErrProviderUnavailable{Err: context.DeadlineExceeded}, ReasonTimeout},
		{"canceled", fmt.Errorf("call: %w", context.Canceled), ReasonCanceled},
		{"other", errors.New("boom"), ReasonOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reason(tt.err); got != tt.want {
				t.Errorf("Reason() = %q, want %q", got, tt.want)
			}
		})
	}
}
