package question

// Question is a single assessment prompt shown to the user.
type Question struct {
	// ID is unique within a session. Static bank questions use ids like
	// "se-1"; generated questions use "<career>-ai-<n>".
	ID string

	// Text is the prompt displayed to the user.
	Text string

	// Kind determines how the user answers and how the answer is scored.
	Kind Kind

	// Options is populated only when Kind is KindMultipleChoice.
	// Ordered from least to most experienced.
	Options []string

	// Skill is the career skill this question measures. Answers are
	// attributed strictly to this skill.
	Skill string

	// Difficulty is optional.
	Difficulty Difficulty

	// Rationale explains why the question was asked. Optional; set for
	// generated questions.
	Rationale string
}

// Kind describes how a question is answered.
type Kind string

const (
	KindScale          Kind = "scale"
	KindMultipleChoice Kind = "multiple-choice"
	KindText           Kind = "text"
)

// Valid reports whether k is a known answer kind.
func (k Kind) Valid() bool {
	switch k {
	case KindScale, KindMultipleChoice, KindText:
		return true
	}
	return false
}

// Difficulty is the self-assessed difficulty tag of a question. It doubles
// as the skill level hint passed to the question generator.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is empty or a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case "", DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Level is a normalized proficiency level on a 1-5 scale.
type Level int

const (
	// LevelUnscored marks an answer that carries no numeric level
	// (free-text answers).
	LevelUnscored Level = 0

	MinLevel Level = 1
	MaxLevel Level = 5
)

// Scored reports whether l holds a real proficiency level.
func (l Level) Scored() bool {
	return l >= MinLevel && l <= MaxLevel
}

// Answer pairs a presented question with the user's response.
type Answer struct {
	Question Question
	Response Response
	Level    Level
}
