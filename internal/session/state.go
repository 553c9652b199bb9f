package session

import "fmt"

// Mode selects where questions come from.
type Mode string

const (
	// ModeFixed serves the career's static question bank in order.
	ModeFixed Mode = "fixed"

	// ModeAdaptive asks the question generator for one question at a
	// time, up to Config.MaxAdaptiveQuestions.
	ModeAdaptive Mode = "adaptive"
)

// ParseMode parses a mode name. The empty string is ModeFixed.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeFixed:
		return ModeFixed, nil
	case ModeAdaptive:
		return ModeAdaptive, nil
	}
	return "", fmt.Errorf("unknown assessment mode %q (want %q or %q)", s, ModeFixed, ModeAdaptive)
}

// State is the lifecycle phase of a session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateInProgress:
		return "in-progress"
	case StateCompleted:
		return "completed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Warnings recorded on a session when an external call falls back.
const (
	WarnQuestionFallback = "couldn't generate a personalized question, using a standard one"
	WarnEndedEarly       = "couldn't generate more questions, finishing the assessment early"
)

// MotivationSkill is the skill tag of the fallback motivational question.
const MotivationSkill = "Motivation"
