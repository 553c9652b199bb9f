package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/question"
	"github.com/abhisek/pathwise/internal/store"
)

func validPayload() map[string]any {
	return map[string]any{
		"overallScore":      68,
		"overallAssessment": "Solid foundations, thin on version control.",
		"skillGaps": []map[string]any{
			{"skill": "Version Control", "currentLevel": 2, "targetLevel": 4, "recommendations": []string{"Learn git rebase"}},
		},
		"recommendations":  []string{"Contribute to open source"},
		"strengths":        []string{"JavaScript"},
		"improvementAreas": []string{"Version Control"},
		"nextSteps":        []string{"Create a GitHub account"},
		"learningPath":     []map[string]any{{"phase": "Git basics", "duration": "2 weeks", "skills": []string{"Version Control"}, "resources": []string{}}},
		"confidenceScore":  75,
	}
}

func TestLLMAnalyzer_Analyze(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(validPayload()))
	a := NewLLMAnalyzer(mock, DefaultAnalyzerConfig())

	p, err := a.Analyze(context.Background(), versionControlGap(t))
	require.NoError(t, err)
	require.NotNil(t, p.OverallScore)
	assert.InDelta(t, 68, *p.OverallScore, 0.001)
	assert.Equal(t, "Solid foundations, thin on version control.", p.OverallSummary)
	require.Len(t, p.SkillGaps, 1)
	assert.Equal(t, 2, p.SkillGaps[0].CurrentLevel)
	assert.Equal(t, "Git basics", p.LearningPath[0].Phase)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, AnalysisSchema, req.Schema)
	assert.Equal(t, 2048, req.MaxTokens)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
}

func TestLLMAnalyzer_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	_, err := NewLLMAnalyzer(mock, DefaultAnalyzerConfig()).Analyze(context.Background(), versionControlGap(t))

	var u *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &u)
}

func TestLLMAnalyzer_UnparseableContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: []byte(`{"overallScore": "high"}`)})
	_, err := NewLLMAnalyzer(mock, DefaultAnalyzerConfig()).Analyze(context.Background(), versionControlGap(t))
	assert.ErrorContains(t, err, "parse analysis response")
}

type purposeRecorder struct {
	purposes []string
	sessions []string
}

func (r *purposeRecorder) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	r.purposes = append(r.purposes, d.Purpose)
	r.sessions = append(r.sessions, d.SessionID)
	return nil
}

func TestLLMAnalyzer_TagsPurposeAndSession(t *testing.T) {
	rec := &purposeRecorder{}
	p := llm.WithLogging(llm.NewMockProvider(llm.MockJSON(validPayload())), "mock", rec, nil)

	_, err := NewLLMAnalyzer(p, DefaultAnalyzerConfig()).Analyze(context.Background(), versionControlGap(t))
	require.NoError(t, err)
	assert.Equal(t, []string{Purpose}, rec.purposes)
	assert.Equal(t, []string{"s-1"}, rec.sessions)
}

func TestBuildAnalysisMessage(t *testing.T) {
	in := versionControlGap(t)
	in.Answers = append(in.Answers, question.Answer{
		Question: question.Question{ID: "m", Text: "Why this career?", Kind: question.KindText, Skill: "Motivation"},
		Response: question.TextResponse{Text: "I enjoy building things"},
	})

	msg, err := buildAnalysisMessage(in)
	require.NoError(t, err)

	assert.Contains(t, msg, "Career: Software Engineer (Technology)")
	assert.Contains(t, msg, "Required skills (target level 4): JavaScript, React, Problem Solving, Version Control, Database Management")
	assert.Contains(t, msg, "- [Version Control] Rate your Version Control\n  Answer (scale): 2 -> level 2/5")
	assert.Contains(t, msg, "- [Motivation] Why this career?\n  Answer (text): I enjoy building things\n")
	assert.NotContains(t, msg, "I enjoy building things ->")
}

func TestBuildAnalysisMessage_NoAnswers(t *testing.T) {
	msg, err := buildAnalysisMessage(Input{Career: softwareEngineer(t)})
	require.NoError(t, err)
	assert.Contains(t, msg, "Responses:\nNone\n")
	assert.NotContains(t, msg, "not answered:")
}

func TestBuildAnalysisMessage_ListsUnansweredQuestions(t *testing.T) {
	in := versionControlGap(t)
	for _, a := range in.Answers {
		in.Questions = append(in.Questions, a.Question)
	}
	in.Questions = append(in.Questions, question.Question{
		ID: "se-6", Text: "How do you review pull requests?", Kind: question.KindText, Skill: "Version Control",
	})

	msg, err := buildAnalysisMessage(in)
	require.NoError(t, err)
	assert.Contains(t, msg, "\nPresented but not answered:\n- [Version Control] How do you review pull requests?\n")
	assert.Equal(t, 1, strings.Count(msg, "Rate your React"), "answered questions are not repeated")
}

func TestLLMAnalyzer_EndToEndThroughAggregator(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockJSON(validPayload()))
	agg := newAggregator(t, NewLLMAnalyzer(mock, DefaultAnalyzerConfig()), Config{})

	res := agg.Finalize(context.Background(), versionControlGap(t))
	assert.Equal(t, SourceAI, res.Source)
	assert.Equal(t, 68, res.OverallScore)
	assert.Equal(t, "Medium", res.ReadinessLevel)
	assert.Equal(t, []string{"Contribute to open source"}, res.Recommendations)
	assert.Equal(t, 75, res.ConfidenceScore)
}
