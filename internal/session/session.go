package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/question"
	"github.com/abhisek/pathwise/internal/questiongen"
)

var errGeneratorDisabled = errors.New("question generator not configured")

// Session is a single assessment run for one career. All methods are safe
// for concurrent use; the TUI calls Start and Advance from tea.Cmd
// goroutines while rendering from the update loop.
type Session struct {
	engine *Engine
	log    *zap.Logger

	mu          sync.Mutex
	id          string
	career      catalog.CareerProfile
	mode        Mode
	state       State
	questions   []question.Question
	position    int
	answers     []question.Answer
	version     uint64
	inFlight    bool
	warnings    []string
	startedAt   time.Time
	completedAt time.Time

	finalize sync.Once
	result   *analysis.Result
}

// Outcome is what SubmitAndAdvance produced: either the next question or,
// once the session completed, the result.
type Outcome struct {
	Next   *question.Question
	Result *analysis.Result
}

// Start moves the session to StateInProgress and loads the first
// question. Fixed mode loads the whole bank. Adaptive mode asks the
// generator for one question and falls back to a motivational question
// when it has none.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateNotStarted {
		defer s.mu.Unlock()
		return &InvalidStateError{Op: "start", State: s.state}
	}
	s.state = StateInProgress
	s.startedAt = s.engine.now()
	s.version++

	if s.mode == ModeFixed {
		defer s.mu.Unlock()
		bank, err := catalog.Questions(s.career.ID)
		if err != nil {
			return err
		}
		if len(bank) == 0 {
			bank = []question.Question{motivationQuestion(s.career)}
		}
		s.questions = bank
		s.log.Debug("session started", zap.Int("questions", len(bank)))
		return nil
	}

	in := s.generatorInput(question.DifficultyBeginner, initialFocus(s.career, s.engine.cfg.FocusSkills))
	version := s.version
	s.inFlight = true
	s.mu.Unlock()

	q, err := s.generate(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if s.version != version {
		s.log.Debug("discarding stale generated question")
		return nil
	}
	if err != nil {
		s.warn(WarnQuestionFallback, err)
		fallback := motivationQuestion(s.career)
		q = &fallback
	}
	s.questions = append(s.questions, *q)
	s.log.Debug("session started", zap.String("first_question", q.ID))
	return nil
}

// CurrentQuestion returns the question awaiting a response. ok is false
// when the session is not in progress or a question is still loading.
func (s *Session) CurrentQuestion() (q question.Question, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress || s.inFlight || s.position >= len(s.questions) {
		return question.Question{}, false
	}
	return s.questions[s.position], true
}

// Submit records the response to the current question. Submitting again
// before Advance replaces the earlier response. On error the session is
// unchanged.
func (s *Session) Submit(questionID string, resp question.Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkActive("submit"); err != nil {
		return err
	}

	cur := s.questions[s.position]
	if questionID != cur.ID {
		return &UnknownQuestionError{QuestionID: questionID, CurrentID: cur.ID}
	}
	level, err := question.Normalize(resp, cur.Kind)
	if err != nil {
		return fmt.Errorf("submit %s: %w", cur.ID, err)
	}

	ans := question.Answer{Question: cur, Response: resp, Level: level}
	if i := slices.IndexFunc(s.answers, func(a question.Answer) bool { return a.Question.ID == cur.ID }); i >= 0 {
		s.answers[i] = ans
	} else {
		s.answers = append(s.answers, ans)
	}
	return nil
}

// Advance moves past the current question. The session completes when
// the fixed bank is exhausted, the adaptive cap is reached or the
// generator has nothing more to ask.
func (s *Session) Advance(ctx context.Context) error {
	s.mu.Lock()
	if err := s.checkActive("advance"); err != nil {
		s.mu.Unlock()
		return err
	}

	if s.mode == ModeFixed {
		defer s.mu.Unlock()
		s.position++
		if s.position >= len(s.questions) {
			s.markCompleted()
		}
		return nil
	}

	if len(s.questions) >= s.engine.cfg.MaxAdaptiveQuestions || s.engine.generator == nil {
		defer s.mu.Unlock()
		s.markCompleted()
		return nil
	}

	in := s.generatorInput(question.DifficultyIntermediate, nextFocus(s.career, s.answers, s.engine.cfg.FocusSkills))
	version := s.version
	s.inFlight = true
	s.mu.Unlock()

	q, err := s.generate(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if s.version != version || s.state != StateInProgress {
		s.log.Debug("discarding stale generated question")
		return nil
	}
	if err != nil {
		s.warn(WarnEndedEarly, err)
		s.markCompleted()
		return nil
	}
	s.questions = append(s.questions, *q)
	s.position++
	return nil
}

// Complete forces the session to StateCompleted and returns its result.
// The aggregator runs once; later calls return the same result.
func (s *Session) Complete(ctx context.Context) *analysis.Result {
	s.mu.Lock()
	s.markCompleted()
	in := analysis.Input{
		SessionID: s.id,
		Career:    s.career,
		Questions: slices.Clone(s.questions),
		Answers:   slices.Clone(s.answers),
	}
	s.mu.Unlock()

	s.finalize.Do(func() {
		res := s.engine.aggregator.Finalize(ctx, in)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.result = res
		if res.Notice != "" {
			s.addWarning(res.Notice)
		}
		s.log.Info("session completed",
			zap.Int("answers", len(in.Answers)),
			zap.Int("score", res.OverallScore),
			zap.String("source", string(res.Source)))
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// ForceComplete ends the session early, for instance when the user quits
// mid-assessment, and returns the result computed from the answers so far.
func (s *Session) ForceComplete(ctx context.Context) *analysis.Result {
	return s.Complete(ctx)
}

// SubmitAndAdvance submits resp for the current question and advances.
// The outcome carries the next question, or the result when the session
// completed.
func (s *Session) SubmitAndAdvance(ctx context.Context, resp question.Response) (Outcome, error) {
	var id string
	if cur, ok := s.CurrentQuestion(); ok {
		id = cur.ID
	}
	if err := s.Submit(id, resp); err != nil {
		return Outcome{}, err
	}
	if err := s.Advance(ctx); err != nil {
		return Outcome{}, err
	}

	if s.State() == StateCompleted {
		return Outcome{Result: s.Complete(ctx)}, nil
	}
	next, ok := s.CurrentQuestion()
	if !ok {
		return Outcome{}, &InvalidStateError{Op: "advance", State: s.State(), Reason: "no next question"}
	}
	return Outcome{Next: &next}, nil
}

// SubmitRawAndAdvance converts a primitive value for the current
// question's kind and calls SubmitAndAdvance.
func (s *Session) SubmitRawAndAdvance(ctx context.Context, raw any) (Outcome, error) {
	cur, ok := s.CurrentQuestion()
	if !ok {
		return Outcome{}, &InvalidStateError{Op: "submit", State: s.State(), Reason: "no current question"}
	}
	resp, err := question.FromRaw(cur.Kind, raw)
	if err != nil {
		return Outcome{}, err
	}
	return s.SubmitAndAdvance(ctx, resp)
}

func (s *Session) ID() string { return s.id }

func (s *Session) Career() catalog.CareerProfile { return s.career }

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Questions returns the questions presented so far. In fixed mode this is
// the whole bank.
func (s *Session) Questions() []question.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.questions)
}

// Answers returns the answers in submission order.
func (s *Session) Answers() []question.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.answers)
}

// Progress returns the 1-based number of the current question and the
// planned total. The total of an adaptive session is its cap.
func (s *Session) Progress() (current, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	total = len(s.questions)
	if s.mode == ModeAdaptive {
		total = s.engine.cfg.MaxAdaptiveQuestions
	}
	return min(s.position+1, total), total
}

// Loading reports whether a generator request is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Warnings returns the soft failures recorded so far.
func (s *Session) Warnings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.warnings)
}

// Result returns the result once Complete has run, or nil.
func (s *Session) Result() *analysis.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Duration is the time between start and completion, or until now for a
// session still in progress.
func (s *Session) Duration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.startedAt.IsZero():
		return 0
	case s.completedAt.IsZero():
		return s.engine.now().Sub(s.startedAt)
	}
	return s.completedAt.Sub(s.startedAt)
}

// checkActive must be called with mu held.
func (s *Session) checkActive(op string) error {
	if s.state != StateInProgress {
		return &InvalidStateError{Op: op, State: s.state}
	}
	if s.inFlight {
		return &InvalidStateError{Op: op, State: s.state, Reason: "a question request is in flight"}
	}
	return nil
}

// markCompleted must be called with mu held.
func (s *Session) markCompleted() {
	if s.state == StateCompleted {
		return
	}
	now := s.engine.now()
	if s.startedAt.IsZero() {
		s.startedAt = now
	}
	s.state = StateCompleted
	s.completedAt = now
	s.version++
}

// generatorInput must be called with mu held.
func (s *Session) generatorInput(level question.Difficulty, focus []string) questiongen.Input {
	return questiongen.Input{
		Career:      s.career,
		Answers:     slices.Clone(s.answers),
		SkillLevel:  level,
		FocusSkills: focus,
		Index:       len(s.questions) + 1,
	}
}

// generate calls the generator without holding mu. A nil question, an
// unusable question or a panic are all reported as errors.
func (s *Session) generate(ctx context.Context, in questiongen.Input) (q *question.Question, err error) {
	gen := s.engine.generator
	if gen == nil {
		return nil, errGeneratorDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, s.engine.cfg.QuestionTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			q, err = nil, fmt.Errorf("question generator panicked: %v", r)
		}
	}()

	q, err = gen.Generate(ctx, in)
	switch {
	case err != nil:
		return nil, err
	case q == nil:
		return nil, errors.New("question generator returned no question")
	case !q.Kind.Valid() || q.Skill == "" || q.Text == "":
		return nil, fmt.Errorf("question generator returned an unusable question %q", q.ID)
	case q.Kind == question.KindMultipleChoice && len(q.Options) == 0:
		return nil, fmt.Errorf("question generator returned multiple-choice question %q without options", q.ID)
	}

	out := *q
	if out.ID == "" || s.hasQuestion(out.ID) {
		out.ID = fmt.Sprintf("%s-ai-%d", in.Career.ID, in.Index)
	}
	return &out, nil
}

func (s *Session) hasQuestion(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.ContainsFunc(s.questions, func(q question.Question) bool { return q.ID == id })
}

// warn must be called with mu held.
func (s *Session) warn(msg string, err error) {
	if errors.Is(err, errGeneratorDisabled) {
		s.log.Info(msg)
	} else {
		s.log.Warn(msg, zap.Error(err))
	}
	s.addWarning(msg)
}

func (s *Session) addWarning(msg string) {
	if !slices.Contains(s.warnings, msg) {
		s.warnings = append(s.warnings, msg)
	}
}

// motivationQuestion is the deterministic question used when the
// generator yields nothing for the first question.
func motivationQuestion(p catalog.CareerProfile) question.Question {
	return question.Question{
		ID:    p.ID + "-motivation",
		Text:  fmt.Sprintf("What motivates you to pursue a career in %s?", p.Category),
		Kind:  question.KindText,
		Skill: MotivationSkill,
	}
}
