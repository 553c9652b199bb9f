package assessment

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/question"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/screens/results"
	sess "github.com/abhisek/pathwise/internal/session"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

// ScaleLabels describes the five points of a self-assessment scale.
var ScaleLabels = []string{
	"No experience",
	"Beginner",
	"Intermediate",
	"Advanced",
	"Expert",
}

// Deps are the services an assessment screen needs. Repo and Logger may
// be nil.
type Deps struct {
	Engine *sess.Engine
	Repo   store.AssessmentRepo
	Logger *zap.Logger
}

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseQuitConfirm
	phaseFinishing
	phaseError
)

// AssessmentScreen drives one session from the first question to the
// results screen.
type AssessmentScreen struct {
	deps     Deps
	careerID string
	mode     sess.Mode

	session  *sess.Session
	phase    phase
	current  question.Question
	choice   components.Choice
	input    components.TextInput
	errMsg   string
	fatalMsg string
	spinner  int
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.BackInterceptor = (*AssessmentScreen)(nil)

// New creates an assessment screen for careerID. The session starts when
// the screen is pushed.
func New(deps Deps, careerID string, mode sess.Mode) *AssessmentScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &AssessmentScreen{
		deps:     deps,
		careerID: careerID,
		mode:     mode,
		phase:    phaseLoading,
	}
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return tea.Batch(s.startSession(), spinnerTick())
}

func (s *AssessmentScreen) Title() string {
	if s.session != nil {
		return s.session.Career().Title + " Assessment"
	}
	return "Assessment"
}

// InterceptsBack keeps Esc for the quit confirmation while a session runs.
func (s *AssessmentScreen) InterceptsBack() bool {
	return s.phase != phaseError
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Finish now"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseError:
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case phaseQuestion:
		if s.current.Kind == question.KindText {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Submit"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "1-9", Description: "Pick"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

func (s *AssessmentScreen) View(width, height int) string {
	switch s.phase {
	case phaseError:
		return renderError(width, s.fatalMsg)
	case phaseQuitConfirm:
		return renderQuitConfirm(width, len(s.answered()))
	case phaseQuestion:
		return s.renderQuestionView(width, height)
	case phaseFinishing:
		return renderLoading(width, s.spinner, "Analyzing your answers...")
	}
	if s.session == nil {
		return renderLoading(width, s.spinner, "Preparing your assessment...")
	}
	return renderLoading(width, s.spinner, "Preparing your next question...")
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		return s.handleStarted(msg)

	case answerResultMsg:
		return s.handleAnswerResult(msg)

	case sessionFinishedMsg:
		return s.handleFinished(msg)

	case spinnerTickMsg:
		if s.phase == phaseLoading || s.phase == phaseFinishing {
			s.spinner++
			return s, spinnerTick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseQuestion && s.current.Kind == question.KindText {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *AssessmentScreen) startSession() tea.Cmd {
	engine, careerID, mode := s.deps.Engine, s.careerID, s.mode
	return func() tea.Msg {
		if engine == nil {
			return sessionStartedMsg{Err: fmt.Errorf("assessment engine not configured")}
		}
		session, err := engine.StartSession(context.Background(), careerID, mode)
		return sessionStartedMsg{Session: session, Err: err}
	}
}

func (s *AssessmentScreen) handleStarted(msg sessionStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.deps.Logger.Error("start assessment", zap.String("career", s.careerID), zap.Error(msg.Err))
		s.phase = phaseError
		s.fatalMsg = msg.Err.Error()
		return s, nil
	}
	s.session = msg.Session

	q, ok := s.session.CurrentQuestion()
	if !ok {
		s.phase = phaseFinishing
		return s, tea.Batch(s.finish(), spinnerTick())
	}
	return s, s.showQuestion(q)
}

func (s *AssessmentScreen) handleAnswerResult(msg answerResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// The session rejected the answer; let the user try again.
		s.phase = phaseQuestion
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if msg.Outcome.Result != nil {
		s.phase = phaseFinishing
		return s, tea.Batch(s.persist(msg.Outcome.Result), spinnerTick())
	}
	if msg.Outcome.Next == nil {
		s.phase = phaseFinishing
		return s, tea.Batch(s.finish(), spinnerTick())
	}
	return s, s.showQuestion(*msg.Outcome.Next)
}

func (s *AssessmentScreen) handleFinished(msg sessionFinishedMsg) (screen.Screen, tea.Cmd) {
	report := results.Report{
		SessionID: s.session.ID(),
		Career:    s.session.Career(),
		Mode:      string(s.session.Mode()),
		Result:    msg.Result,
		Warnings:  s.session.Warnings(),
		Answered:  len(s.session.Answers()),
		Duration:  s.session.Duration(),
		SaveErr:   msg.SaveErr,
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(report)}
	}
}

func (s *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseError:
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			s.phase = phaseFinishing
			return s, tea.Batch(s.finish(), spinnerTick())
		case "n", "N", "esc":
			s.phase = phaseQuestion
		}
		return s, nil

	case phaseQuestion:
		if key == "esc" {
			s.phase = phaseQuitConfirm
			return s, nil
		}
		if s.current.Kind == question.KindText {
			if key == "enter" {
				text := s.input.Value()
				if text == "" {
					s.errMsg = "Please type an answer first."
					return s, nil
				}
				return s.submit(question.TextResponse{Text: text})
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}

		var chosen bool
		s.choice, chosen = s.choice.Update(msg)
		if !chosen {
			return s, nil
		}
		if s.current.Kind == question.KindScale {
			return s.submit(question.ScaleResponse{Value: s.choice.Chosen + 1})
		}
		return s.submit(question.ChoiceResponse{Label: s.choice.Value()})
	}

	return s, nil
}

// showQuestion prepares the input widgets for q.
func (s *AssessmentScreen) showQuestion(q question.Question) tea.Cmd {
	s.phase = phaseQuestion
	s.current = q
	s.errMsg = ""

	switch q.Kind {
	case question.KindScale:
		s.choice = components.NewChoice(ScaleLabels)
	case question.KindMultipleChoice:
		s.choice = components.NewChoice(q.Options)
	default:
		s.input = components.NewTextInput("Type your answer...", 500, 60)
		return s.input.Init()
	}
	return nil
}

func (s *AssessmentScreen) submit(resp question.Response) (screen.Screen, tea.Cmd) {
	session := s.session
	s.phase = phaseLoading
	s.errMsg = ""
	return s, tea.Batch(func() tea.Msg {
		out, err := session.SubmitAndAdvance(context.Background(), resp)
		return answerResultMsg{Outcome: out, Err: err}
	}, spinnerTick())
}

// finish ends the session with the answers given so far.
func (s *AssessmentScreen) finish() tea.Cmd {
	session := s.session
	return func() tea.Msg {
		res := session.ForceComplete(context.Background())
		return sessionFinishedMsg{Result: res, SaveErr: s.save(session)}
	}
}

// persist stores a session that completed on its own.
func (s *AssessmentScreen) persist(res *analysis.Result) tea.Cmd {
	session := s.session
	return func() tea.Msg {
		return sessionFinishedMsg{Result: res, SaveErr: s.save(session)}
	}
}

// save stores the completed session. It is a no-op without a repository.
func (s *AssessmentScreen) save(session *sess.Session) error {
	if s.deps.Repo == nil {
		return nil
	}
	rec, err := session.Record()
	if err != nil {
		return err
	}
	if err := s.deps.Repo.SaveAssessment(context.Background(), rec); err != nil {
		s.deps.Logger.Error("save assessment", zap.String("session_id", rec.SessionID), zap.Error(err))
		return err
	}
	return nil
}

func (s *AssessmentScreen) answered() []question.Answer {
	if s.session == nil {
		return nil
	}
	return s.session.Answers()
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
