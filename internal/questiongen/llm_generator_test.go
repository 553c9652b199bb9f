package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/question"
	"github.com/abhisek/pathwise/internal/store"
)

func testCareer(t *testing.T) catalog.CareerProfile {
	t.Helper()
	p, err := catalog.GetProfile("software-engineer")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	return p
}

func mcQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question": "How comfortable are you with React hooks?",
		"type": "multiple-choice",
		"options": ["No experience", "Some knowledge", "Practical experience", "Expert level"],
		"skill": "react",
		"difficulty": "intermediate",
		"reasoning": "You rated JavaScript highly, so we check the framework next."
	}`)
}

type purposeRecorder struct{ purposes []string }

func (r *purposeRecorder) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	r.purposes = append(r.purposes, d.Purpose)
	return nil
}

func TestGenerate_MultipleChoice(t *testing.T) {
	rec := &purposeRecorder{}
	mock := llm.NewMockProvider(llm.MockResponse{Content: mcQuestionJSON()})
	gen := New(llm.WithLogging(mock, "mock", rec, nil), DefaultConfig())

	q, err := gen.Generate(context.Background(), Input{
		Career:      testCareer(t),
		SkillLevel:  question.DifficultyBeginner,
		FocusSkills: []string{"JavaScript", "React"},
		Index:       1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID != "software-engineer-ai-1" {
		t.Errorf("ID = %q", q.ID)
	}
	if q.Kind != question.KindMultipleChoice || len(q.Options) != 4 {
		t.Errorf("kind %q with %d options", q.Kind, len(q.Options))
	}
	if q.Skill != "React" {
		t.Errorf("skill = %q, want canonical React", q.Skill)
	}
	if q.Rationale == "" {
		t.Error("rationale not carried over")
	}
	if len(rec.purposes) != 1 || rec.purposes[0] != "question-gen" {
		t.Errorf("purposes = %v", rec.purposes)
	}

	req := mock.Calls[0]
	if req.Schema != QuestionSchema {
		t.Error("request should use QuestionSchema")
	}
	if !strings.Contains(req.Messages[0].Content, "Focus skills: JavaScript, React") {
		t.Errorf("prompt missing focus skills:\n%s", req.Messages[0].Content)
	}
}

func TestGenerate_ScenarioBecomesText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(map[string]any{
		"question":   "A production deploy broke checkout. Walk through how you'd find the cause.",
		"type":       "scenario",
		"options":    []string{"stray"},
		"skill":      "Problem Solving",
		"difficulty": "advanced",
		"reasoning":  "Tests debugging under pressure.",
	}))
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), Input{Career: testCareer(t), Index: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Kind != question.KindText {
		t.Errorf("kind = %q, want text", q.Kind)
	}
	if q.Options != nil {
		t.Errorf("options = %v, want none", q.Options)
	}
	if q.ID != "software-engineer-ai-3" {
		t.Errorf("ID = %q", q.ID)
	}
}

func TestGenerate_ValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		output    map[string]any
		validator string
	}{
		{"empty question", map[string]any{
			"question": " ", "type": "scale", "options": []string{}, "skill": "React", "difficulty": "beginner", "reasoning": "",
		}, "structural"},
		{"unknown kind", map[string]any{
			"question": "Q?", "type": "essay", "options": []string{}, "skill": "React", "difficulty": "beginner", "reasoning": "",
		}, "structural"},
		{"mc without options", map[string]any{
			"question": "Q?", "type": "multiple-choice", "options": []string{}, "skill": "React", "difficulty": "beginner", "reasoning": "",
		}, "options"},
		{"duplicate options", map[string]any{
			"question": "Q?", "type": "multiple-choice", "options": []string{"A", "A"}, "skill": "React", "difficulty": "beginner", "reasoning": "",
		}, "options"},
		{"skill outside career", map[string]any{
			"question": "Q?", "type": "scale", "options": []string{}, "skill": "Underwater Welding", "difficulty": "beginner", "reasoning": "",
		}, "skill-scope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := New(llm.NewMockProvider(llm.MockJSON(tt.output)), DefaultConfig())
			_, err := gen.Generate(context.Background(), Input{Career: testCareer(t), Index: 1})

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T (%v)", err, err)
			}
			if verr.Validator != tt.validator {
				t.Errorf("validator = %q, want %q", verr.Validator, tt.validator)
			}
		})
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	gen := New(llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}}), DefaultConfig())
	_, err := gen.Generate(context.Background(), Input{Career: testCareer(t)})

	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected wrapped ErrRateLimit, got %v", err)
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	gen := New(llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"question":`)}), DefaultConfig())
	if _, err := gen.Generate(context.Background(), Input{Career: testCareer(t)}); err == nil {
		t.Fatal("expected parse error")
	}
}
