package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/question"
)

const (
	minOptions = 2
	maxOptions = 6
)

// OptionsValidator checks that multiple-choice questions carry a usable
// option list and that other kinds carry none.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *question.Question, _ Input) *ValidationError {
	if q.Kind != question.KindMultipleChoice {
		if len(q.Options) > 0 {
			return v.fail(fmt.Sprintf("%s question must not have options", q.Kind))
		}
		return nil
	}

	if len(q.Options) < minOptions || len(q.Options) > maxOptions {
		return v.fail(fmt.Sprintf("multiple-choice question needs %d-%d options, got %d", minOptions, maxOptions, len(q.Options)))
	}
	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		key := strings.TrimSpace(o)
		if key == "" {
			return v.fail("option is empty")
		}
		if seen[key] {
			return v.fail(fmt.Sprintf("duplicate option %q", o))
		}
		seen[key] = true
	}
	return nil
}

func (v *OptionsValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}
