package questiongen

import (
	"strings"

	"github.com/abhisek/pathwise/internal/question"
)

const maxQuestionLen = 500

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *question.Question, _ Input) *ValidationError {
	switch {
	case strings.TrimSpace(q.Text) == "":
		return v.fail("question is empty")
	case len(q.Text) > maxQuestionLen:
		return v.fail("question exceeds 500 characters")
	case !q.Kind.Valid():
		return v.fail(`type must be "scale", "multiple-choice" or "text"`)
	case strings.TrimSpace(q.Skill) == "":
		return v.fail("skill is empty")
	case !q.Difficulty.Valid():
		return v.fail(`difficulty must be "beginner", "intermediate" or "advanced"`)
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}
