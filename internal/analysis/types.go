package analysis

import (
	"context"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/gap"
	"github.com/abhisek/pathwise/internal/question"
)

// Source records which path produced a Result.
type Source string

const (
	SourceAI       Source = "ai"
	SourceStandard Source = "standard"
)

// FallbackNotice is the soft notice attached to results computed locally
// because the external analysis was unavailable.
const FallbackNotice = "couldn't generate personalized content, using standard assessment"

// Result is the final assessment of a completed session.
type Result struct {
	OverallScore    int         `json:"overall_score"`
	SkillGaps       []gap.Entry `json:"skill_gaps"`
	Recommendations []string    `json:"recommendations"`
	ReadinessLevel  string      `json:"readiness_level"`

	// Enrichment, set only when the external analysis succeeded.
	Strengths        []string `json:"strengths,omitempty"`
	ImprovementAreas []string `json:"improvement_areas,omitempty"`
	NextSteps        []string `json:"next_steps,omitempty"`
	Summary          string   `json:"summary,omitempty"`
	ConfidenceScore  int      `json:"confidence_score,omitempty"`
	LearningPath     []Phase  `json:"learning_path,omitempty"`

	Source Source `json:"source"`
	Notice string `json:"notice,omitempty"`
}

// Phase is one stage of a suggested learning path.
type Phase struct {
	Phase     string   `json:"phase"`
	Duration  string   `json:"duration"`
	Skills    []string `json:"skills"`
	Resources []string `json:"resources"`
}

// Input is everything the aggregator knows about a completed session.
type Input struct {
	SessionID string
	Career    catalog.CareerProfile
	Questions []question.Question
	Answers   []question.Answer
}

// Analyzer is the external analysis collaborator. It may return a nil
// payload or an error; both resolve to the local fallback.
type Analyzer interface {
	Analyze(ctx context.Context, in Input) (*Payload, error)
}

// Payload is the analysis returned by an Analyzer before it is checked
// and mapped into a Result.
type Payload struct {
	OverallScore     *float64     `json:"overallScore"`
	OverallSummary   string       `json:"overallAssessment"`
	SkillGaps        []PayloadGap `json:"skillGaps"`
	Recommendations  []string     `json:"recommendations"`
	Strengths        []string     `json:"strengths"`
	ImprovementAreas []string     `json:"improvementAreas"`
	NextSteps        []string     `json:"nextSteps"`
	LearningPath     []Phase      `json:"learningPath"`
	ConfidenceScore  float64      `json:"confidenceScore"`
}

// PayloadGap is one skill entry of a Payload. Gap and priority supplied
// by the analyzer are ignored and recomputed from the levels.
type PayloadGap struct {
	Skill           string   `json:"skill"`
	CurrentLevel    int      `json:"currentLevel"`
	TargetLevel     int      `json:"targetLevel"`
	Recommendations []string `json:"recommendations"`
}
