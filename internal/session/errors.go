package session

import "fmt"

// InvalidStateError is returned when an operation is not allowed in the
// session's current state.
type InvalidStateError struct {
	Op     string
	State  State
	Reason string
}

func (e *InvalidStateError) Error() string {
	msg := fmt.Sprintf("cannot %s session in state %s", e.Op, e.State)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// UnknownQuestionError is returned when a response names a question other
// than the current one.
type UnknownQuestionError struct {
	QuestionID string
	CurrentID  string
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("question %q is not the current question (%q)", e.QuestionID, e.CurrentID)
}
