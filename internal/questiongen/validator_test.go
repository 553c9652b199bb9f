package questiongen

import (
	"strings"
	"testing"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/question"
)

func validQuestion() *question.Question {
	return &question.Question{
		ID:         "software-engineer-ai-1",
		Text:       "Rate your SQL skills.",
		Kind:       question.KindScale,
		Skill:      "Database Management",
		Difficulty: question.DifficultyBeginner,
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Validator: "options", Message: "duplicate option"}
	if got, want := err.Error(), `validator "options": duplicate option`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	names := []string{"structural", "options", "skill-scope"}
	if len(cfg.Validators) != len(names) {
		t.Fatalf("expected %d validators, got %d", len(names), len(cfg.Validators))
	}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestStructural(t *testing.T) {
	v := &StructuralValidator{}
	tests := []struct {
		name   string
		mutate func(q *question.Question)
		ok     bool
	}{
		{"valid", func(q *question.Question) {}, true},
		{"no difficulty is fine", func(q *question.Question) { q.Difficulty = "" }, true},
		{"empty text", func(q *question.Question) { q.Text = "" }, false},
		{"too long", func(q *question.Question) { q.Text = strings.Repeat("a", 501) }, false},
		{"bad kind", func(q *question.Question) { q.Kind = "essay" }, false},
		{"no skill", func(q *question.Question) { q.Skill = "  " }, false},
		{"bad difficulty", func(q *question.Question) { q.Difficulty = "expert" }, false},
	}
	for _, tt := range tests {
		q := validQuestion()
		tt.mutate(q)
		err := v.Validate(q, Input{})
		if (err == nil) != tt.ok {
			t.Errorf("%s: err = %v, want ok=%v", tt.name, err, tt.ok)
		}
	}
}

func TestOptions(t *testing.T) {
	v := &OptionsValidator{}

	q := validQuestion()
	q.Options = []string{"A", "B"}
	if err := v.Validate(q, Input{}); err == nil {
		t.Error("scale question with options should fail")
	}

	q.Kind = question.KindMultipleChoice
	if err := v.Validate(q, Input{}); err != nil {
		t.Errorf("two options should pass: %v", err)
	}

	q.Options = []string{"A"}
	if err := v.Validate(q, Input{}); err == nil {
		t.Error("single option should fail")
	}

	q.Options = []string{"A", "B", "C", "D", "E", "F", "G"}
	if err := v.Validate(q, Input{}); err == nil {
		t.Error("seven options should fail")
	}

	q.Options = []string{"A", ""}
	if err := v.Validate(q, Input{}); err == nil {
		t.Error("empty option should fail")
	}
}

func TestSkillScope(t *testing.T) {
	career, err := catalog.GetProfile("software-engineer")
	if err != nil {
		t.Fatal(err)
	}
	v := &SkillScopeValidator{}
	in := Input{Career: career}

	for _, skill := range []string{"Database Management", "version control", "Node.js"} {
		q := validQuestion()
		q.Skill = skill
		if err := v.Validate(q, in); err != nil {
			t.Errorf("%q should be in scope: %v", skill, err)
		}
	}

	q := validQuestion()
	q.Skill = "Figma"
	if err := v.Validate(q, in); err == nil {
		t.Error("Figma is not a software engineer skill")
	}
}
