package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/question"
)

// Purpose labels the LLM calls made by this package.
const Purpose = "question-gen"

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Question   string   `json:"question"`
	Type       string   `json:"type"`
	Options    []string `json:"options"`
	Skill      string   `json:"skill"`
	Difficulty string   `json:"difficulty"`
	Reasoning  string   `json:"reasoning"`
}

// Generate produces a single question for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) (*question.Question, error) {
	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	q := toQuestion(raw, input)
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}
	return q, nil
}

// toQuestion maps the model output onto a Question. Scenario questions
// are answered in free text; options are dropped for kinds that take none.
func toQuestion(raw questionOutput, input Input) *question.Question {
	kind := question.Kind(strings.TrimSpace(raw.Type))
	if kind == "scenario" {
		kind = question.KindText
	}

	var options []string
	if kind == question.KindMultipleChoice {
		options = raw.Options
	}

	skill, _ := canonicalSkill(input.Career, raw.Skill)

	return &question.Question{
		ID:         fmt.Sprintf("%s-ai-%d", input.Career.ID, input.Index),
		Text:       strings.TrimSpace(raw.Question),
		Kind:       kind,
		Options:    options,
		Skill:      skill,
		Difficulty: question.Difficulty(raw.Difficulty),
		Rationale:  raw.Reasoning,
	}
}
