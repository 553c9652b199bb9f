package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/question"
)

// Purpose labels the LLM calls made by this package.
const Purpose = "assessment-analysis"

// AnalyzerConfig holds configuration for the LLM analyzer.
type AnalyzerConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultAnalyzerConfig returns sensible defaults.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MaxTokens:   2048,
		Temperature: 0.3,
	}
}

// LLMAnalyzer implements Analyzer with an LLM provider.
type LLMAnalyzer struct {
	provider llm.Provider
	cfg      AnalyzerConfig
}

// NewLLMAnalyzer creates an LLM-based analyzer.
func NewLLMAnalyzer(provider llm.Provider, cfg AnalyzerConfig) *LLMAnalyzer {
	return &LLMAnalyzer{provider: provider, cfg: cfg}
}

// Analyze sends the session's answers to the LLM for a holistic analysis.
func (a *LLMAnalyzer) Analyze(ctx context.Context, in Input) (*Payload, error) {
	ctx = llm.WithPurpose(ctx, Purpose)
	if in.SessionID != "" {
		ctx = llm.WithSessionID(ctx, in.SessionID)
	}

	userMsg, err := buildAnalysisMessage(in)
	if err != nil {
		return nil, fmt.Errorf("build analysis prompt: %w", err)
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM analysis failed: %w", err)
	}

	var p Payload
	if err := json.Unmarshal(resp.Content, &p); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}
	return &p, nil
}

const analysisSystemPrompt = `You are a career counselor analyzing a candidate's assessment responses.

Instructions:
- Rate every required skill on a 1-5 scale from the evidence in the responses. A skill with no evidence is level 1.
- Use the target level given for each skill unless industry standards clearly demand otherwise.
- The overall score (0-100) should reflect the average skill level, where level 5 is 100.
- Give two or three concrete recommendations per skill gap, and three immediate next steps.
- Base the analysis on industry standards, current market demand and the candidate's demonstrated knowledge.
- Free-text answers carry no rating; read them for evidence of experience and motivation.
- Questions listed as not answered were shown but skipped when the candidate finished early. They are not evidence either way.`

type analysisView struct {
	Title       string
	Category    string
	TargetLevel int
	Skills      []string
	Answers     []answerView
	Unanswered  []question.Question
}

type answerView struct {
	Skill string
	Text  string
	Kind  question.Kind
	Value string
	Level question.Level
}

var analysisUserTemplate = template.Must(template.New("analysis").Parse(`Career: {{.Title}} ({{.Category}})
Required skills (target level {{.TargetLevel}}): {{range $i, $s := .Skills}}{{if $i}}, {{end}}{{$s}}{{end}}

Responses:
{{range $i, $a := .Answers}}{{if $i}}
{{end}}- [{{$a.Skill}}] {{$a.Text}}
  Answer ({{$a.Kind}}): {{$a.Value}}{{if $a.Level.Scored}} -> level {{$a.Level}}/5{{end}}{{else}}None{{end}}
{{if .Unanswered}}
Presented but not answered:
{{range .Unanswered}}- [{{.Skill}}] {{.Text}}
{{end}}{{end}}`))

func buildAnalysisMessage(in Input) (string, error) {
	view := analysisView{
		Title:       in.Career.Title,
		Category:    in.Career.Category,
		TargetLevel: in.Career.TargetLevel,
		Skills:      in.Career.Skills,
	}
	answered := make(map[string]bool, len(in.Answers))
	for _, a := range in.Answers {
		answered[a.Question.ID] = true
		v := answerView{Skill: a.Question.Skill, Text: a.Question.Text, Kind: a.Question.Kind, Level: a.Level}
		if a.Response != nil {
			v.Value = a.Response.String()
		}
		view.Answers = append(view.Answers, v)
	}
	for _, q := range in.Questions {
		if !answered[q.ID] {
			view.Unanswered = append(view.Unanswered, q)
		}
	}

	var buf bytes.Buffer
	if err := analysisUserTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
