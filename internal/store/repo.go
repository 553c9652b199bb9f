package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	Purpose   string    // exact purpose match
	SessionID string    // exact session match
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	SessionID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a persisted LLM call.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM calls grouped by a single key (purpose or model).
type LLMUsage struct {
	Key          string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs float64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if it doesn't exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage per provider model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}

// SkillGapRecord is the persisted form of one skill-gap entry.
type SkillGapRecord struct {
	Skill         string
	CurrentLevel  int
	RequiredLevel int
	Gap           int
	Priority      string
}

// AssessmentData captures a completed assessment for persistence.
type AssessmentData struct {
	SessionID      string
	CareerID       string
	Mode           string
	Source         string
	OverallScore   int
	ReadinessLevel string
	QuestionCount  int // answered, not presented
	DurationSecs   int
	Result         json.RawMessage
	Gaps           []SkillGapRecord
}

// Assessment is a persisted assessment. Gaps are populated only by
// GetAssessment.
type Assessment struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AssessmentData
}

// AssessmentQuery filters ListAssessments.
type AssessmentQuery struct {
	Limit    int    // max results (0 = unlimited)
	CareerID string // exact career match
}

// SkillGapStat aggregates the gaps recorded for one skill of one career.
type SkillGapStat struct {
	CareerID    string
	Skill       string
	Assessments int
	AvgLevel    float64
	AvgGap      float64
}

// AssessmentRepo manages completed assessments.
type AssessmentRepo interface {
	// SaveAssessment stores the assessment and its per-skill gaps atomically.
	SaveAssessment(ctx context.Context, data AssessmentData) error

	// ListAssessments returns assessments newest first.
	ListAssessments(ctx context.Context, q AssessmentQuery) ([]Assessment, error)

	// GetAssessment looks up an assessment by session ID or unique session
	// ID prefix. It returns nil if nothing matches.
	GetAssessment(ctx context.Context, sessionID string) (*Assessment, error)

	// SkillGapStats averages gaps per skill, largest first. An empty
	// careerID covers all careers.
	SkillGapStats(ctx context.Context, careerID string) ([]SkillGapStat, error)
}
