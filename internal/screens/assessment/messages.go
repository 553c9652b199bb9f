package assessment

import (
	"time"

	"github.com/abhisek/pathwise/internal/analysis"
	sess "github.com/abhisek/pathwise/internal/session"
)

// sessionStartedMsg is sent when the session has loaded its first question.
type sessionStartedMsg struct {
	Session *sess.Session
	Err     error
}

// answerResultMsg is sent after an answer was submitted and the session
// advanced.
type answerResultMsg struct {
	Outcome sess.Outcome
	Err     error
}

// sessionFinishedMsg is sent once the result is computed and persisted.
type sessionFinishedMsg struct {
	Result  *analysis.Result
	SaveErr error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
