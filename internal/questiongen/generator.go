package questiongen

import (
	"context"

	"github.com/abhisek/pathwise/internal/question"
)

// Generator produces adaptive assessment questions.
type Generator interface {
	// Generate produces a single question for the given input context.
	// Implementations may return (nil, nil) when they have nothing to ask.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input Input) (*question.Question, error)
}
