package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/gap"
	"github.com/abhisek/pathwise/internal/question"
	"github.com/abhisek/pathwise/internal/questiongen"
)

// fakeGenerator asks about the first focus skill unless next overrides
// the reply for a call.
type fakeGenerator struct {
	mu    sync.Mutex
	calls []questiongen.Input
	next  func(call int, in questiongen.Input) (*question.Question, error)
}

func (f *fakeGenerator) Generate(ctx context.Context, in questiongen.Input) (*question.Question, error) {
	f.mu.Lock()
	f.calls = append(f.calls, in)
	call := len(f.calls)
	next := f.next
	f.mu.Unlock()

	if next != nil {
		return next(call, in)
	}
	skill := in.FocusSkills[0]
	return &question.Question{
		ID:    fmt.Sprintf("%s-ai-%d", in.Career.ID, in.Index),
		Text:  "How strong is your " + skill + "?",
		Kind:  question.KindScale,
		Skill: skill,
	}, nil
}

func (f *fakeGenerator) Calls() []questiongen.Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

type countingAnalyzer struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (c *countingAnalyzer) Analyze(_ context.Context, in analysis.Input) (*analysis.Payload, error) {
	c.mu.Lock()
	c.calls++
	n := c.calls
	c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	score := float64(40 + n)
	return &analysis.Payload{
		OverallScore: &score,
		SkillGaps:    []analysis.PayloadGap{{Skill: in.Career.Skills[0], CurrentLevel: 2, TargetLevel: 4}},
		Strengths:    []string{"Curiosity"},
	}, nil
}

func newTestEngine(t *testing.T, gen questiongen.Generator, an analysis.Analyzer) *Engine {
	t.Helper()
	logger := zaptest.NewLogger(t)
	var agg *analysis.Aggregator
	if an != nil {
		agg = analysis.NewAggregator(an, analysis.Config{Logger: logger})
	}
	cfg := DefaultConfig()
	cfg.Logger = logger
	return NewEngine(gen, agg, cfg)
}

func startSession(t *testing.T, e *Engine, mode Mode) *Session {
	t.Helper()
	s, err := e.StartSession(context.Background(), "software-engineer", mode)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	return s
}

func TestFixedSession_FullRun(t *testing.T) {
	s := startSession(t, newTestEngine(t, nil, nil), ModeFixed)
	ctx := context.Background()

	if s.State() != StateInProgress {
		t.Fatalf("state = %s, want in-progress", s.State())
	}
	if _, total := s.Progress(); total != 5 {
		t.Fatalf("total = %d, want the 5 bank questions", total)
	}

	replies := map[string]question.Response{
		"se-1": question.ScaleResponse{Value: 4},
		"se-2": question.ChoiceResponse{Label: "Expert level"},
		"se-3": question.ScaleResponse{Value: 4},
		"se-4": question.ChoiceResponse{Label: "Basic commands"},
		"se-5": question.ScaleResponse{Value: 4},
	}

	var out Outcome
	for i := 0; i < 5; i++ {
		cur, ok := s.CurrentQuestion()
		if !ok {
			t.Fatalf("no current question at step %d", i)
		}
		var err error
		out, err = s.SubmitAndAdvance(ctx, replies[cur.ID])
		if err != nil {
			t.Fatalf("SubmitAndAdvance(%s): %v", cur.ID, err)
		}
		if i < 4 && (out.Next == nil || out.Result != nil) {
			t.Fatalf("step %d: want next question, got %+v", i, out)
		}
	}

	if out.Result == nil {
		t.Fatal("last answer should complete the session")
	}
	if s.State() != StateCompleted {
		t.Errorf("state = %s, want completed", s.State())
	}

	res := out.Result
	if res.OverallScore != 76 || res.ReadinessLevel != gap.ReadinessMedium {
		t.Errorf("score %d readiness %s, want 76 Medium", res.OverallScore, res.ReadinessLevel)
	}
	if res.SkillGaps[0].Skill != "Version Control" || res.SkillGaps[0].Priority != gap.PriorityHigh {
		t.Errorf("top gap = %+v", res.SkillGaps[0])
	}
	for _, e := range res.SkillGaps[1:] {
		if e.Gap != 0 {
			t.Errorf("unexpected gap %+v", e)
		}
	}
	if res.Source != analysis.SourceStandard {
		t.Errorf("source = %s", res.Source)
	}
	if !slices.Contains(s.Warnings(), analysis.FallbackNotice) {
		t.Errorf("warnings %v should carry the fallback notice", s.Warnings())
	}
}

func TestStart_Twice(t *testing.T) {
	s := startSession(t, newTestEngine(t, nil, nil), ModeFixed)

	err := s.Start(context.Background())
	var ise *InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}
	if ise.State != StateInProgress {
		t.Errorf("state in error = %s", ise.State)
	}
}

func TestStartSession_UnknownCareerAndMode(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	if _, err := e.StartSession(context.Background(), "astronaut", ModeFixed); err == nil {
		t.Error("expected error for unknown career")
	}
	if _, err := e.StartSession(context.Background(), "software-engineer", Mode("random")); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestAdaptive_ProviderReturnsNothing(t *testing.T) {
	tests := []struct {
		name string
		gen  questiongen.Generator
	}{
		{"nil question", &fakeGenerator{next: func(int, questiongen.Input) (*question.Question, error) { return nil, nil }}},
		{"error", &fakeGenerator{next: func(int, questiongen.Input) (*question.Question, error) { return nil, errors.New("down") }}},
		{"panic", &fakeGenerator{next: func(int, questiongen.Input) (*question.Question, error) { panic("boom") }}},
		{"unusable question", &fakeGenerator{next: func(int, questiongen.Input) (*question.Question, error) {
			return &question.Question{ID: "x", Kind: "essay"}, nil
		}}},
		{"choice without options", &fakeGenerator{next: func(int, questiongen.Input) (*question.Question, error) {
			return &question.Question{ID: "x", Kind: question.KindMultipleChoice, Skill: "React", Text: "Which best describes you?"}, nil
		}}},
		{"not configured", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := startSession(t, newTestEngine(t, tt.gen, nil), ModeAdaptive)

			qs := s.Questions()
			if len(qs) != 1 {
				t.Fatalf("got %d questions, want exactly 1", len(qs))
			}
			q := qs[0]
			if q.ID != "software-engineer-motivation" || q.Kind != question.KindText || q.Skill != MotivationSkill {
				t.Errorf("fallback question = %+v", q)
			}
			if q.Text != "What motivates you to pursue a career in Technology?" {
				t.Errorf("text = %q", q.Text)
			}
			if !slices.Contains(s.Warnings(), WarnQuestionFallback) {
				t.Errorf("warnings = %v", s.Warnings())
			}

			out, err := s.SubmitAndAdvance(context.Background(), question.TextResponse{Text: "I love building things"})
			if err != nil {
				t.Fatalf("SubmitAndAdvance: %v", err)
			}
			if out.Result == nil || s.State() != StateCompleted {
				t.Fatalf("session should complete after the fallback question, got %+v", out)
			}
			if len(out.Result.SkillGaps) != 5 {
				t.Errorf("result should still cover every career skill, got %d", len(out.Result.SkillGaps))
			}
		})
	}
}

func TestAdaptive_CapCompletesWithoutProviderCall(t *testing.T) {
	gen := &fakeGenerator{}
	s := startSession(t, newTestEngine(t, gen, nil), ModeAdaptive)
	ctx := context.Background()

	for i := 1; i <= DefaultMaxAdaptiveQuestions; i++ {
		out, err := s.SubmitAndAdvance(ctx, question.ScaleResponse{Value: 3})
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if i < DefaultMaxAdaptiveQuestions && out.Next == nil {
			t.Fatalf("answer %d: expected another question", i)
		}
		if i == DefaultMaxAdaptiveQuestions && out.Result == nil {
			t.Fatal("cap reached: expected the result")
		}
	}

	if got := len(gen.Calls()); got != DefaultMaxAdaptiveQuestions {
		t.Errorf("generator called %d times, want %d", got, DefaultMaxAdaptiveQuestions)
	}
	if got := len(s.Questions()); got != DefaultMaxAdaptiveQuestions {
		t.Errorf("presented %d questions, want %d", got, DefaultMaxAdaptiveQuestions)
	}
	if len(s.Warnings()) != 1 || s.Warnings()[0] != analysis.FallbackNotice {
		t.Errorf("warnings = %v", s.Warnings())
	}
}

func TestAdaptive_AdvanceAtCapIgnoresProvider(t *testing.T) {
	gen := &fakeGenerator{}
	e := newTestEngine(t, gen, nil)
	s := startSession(t, e, ModeAdaptive)

	// Simulate a session that already presented the maximum.
	s.mu.Lock()
	for len(s.questions) < e.cfg.MaxAdaptiveQuestions {
		s.questions = append(s.questions, question.Question{ID: fmt.Sprintf("q%d", len(s.questions)), Kind: question.KindText, Skill: "x", Text: "x"})
	}
	s.mu.Unlock()
	before := len(gen.Calls())

	if err := s.Advance(context.Background()); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if s.State() != StateCompleted {
		t.Errorf("state = %s, want completed", s.State())
	}
	if len(gen.Calls()) != before {
		t.Error("generator must not be called at the cap")
	}
}

func TestAdaptive_GeneratorInputs(t *testing.T) {
	gen := &fakeGenerator{}
	s := startSession(t, newTestEngine(t, gen, nil), ModeAdaptive)

	first := gen.Calls()[0]
	if first.SkillLevel != question.DifficultyBeginner || first.Index != 1 || len(first.Answers) != 0 {
		t.Errorf("first input = %+v", first)
	}
	if want := []string{"JavaScript", "React", "Problem Solving"}; !slices.Equal(first.FocusSkills, want) {
		t.Errorf("first focus = %v, want %v", first.FocusSkills, want)
	}

	if _, err := s.SubmitAndAdvance(context.Background(), question.ScaleResponse{Value: 5}); err != nil {
		t.Fatal(err)
	}
	second := gen.Calls()[1]
	if second.SkillLevel != question.DifficultyIntermediate || second.Index != 2 || len(second.Answers) != 1 {
		t.Errorf("second input = %+v", second)
	}
	if want := []string{"React", "Problem Solving", "Version Control"}; !slices.Equal(second.FocusSkills, want) {
		t.Errorf("second focus = %v, want %v", second.FocusSkills, want)
	}
}

func TestAdaptive_ProviderFailureEndsEarly(t *testing.T) {
	gen := &fakeGenerator{}
	gen.next = func(call int, in questiongen.Input) (*question.Question, error) {
		if call == 2 {
			return nil, errors.New("rate limited")
		}
		return &question.Question{ID: "q1", Text: "Rate JS", Kind: question.KindScale, Skill: "JavaScript"}, nil
	}
	s := startSession(t, newTestEngine(t, gen, nil), ModeAdaptive)

	out, err := s.SubmitAndAdvance(context.Background(), question.ScaleResponse{Value: 2})
	if err != nil {
		t.Fatal(err)
	}
	if out.Result == nil {
		t.Fatal("provider failure should complete the session")
	}
	if len(gen.Calls()) != 2 {
		t.Errorf("failure must not be retried, got %d calls", len(gen.Calls()))
	}
	if !slices.Contains(s.Warnings(), WarnEndedEarly) {
		t.Errorf("warnings = %v", s.Warnings())
	}
}

func TestAdaptive_DuplicateIDIsReassigned(t *testing.T) {
	gen := &fakeGenerator{next: func(int, questiongen.Input) (*question.Question, error) {
		return &question.Question{ID: "same", Text: "Rate JS", Kind: question.KindScale, Skill: "JavaScript"}, nil
	}}
	s := startSession(t, newTestEngine(t, gen, nil), ModeAdaptive)
	if _, err := s.SubmitAndAdvance(context.Background(), question.ScaleResponse{Value: 2}); err != nil {
		t.Fatal(err)
	}

	qs := s.Questions()
	if qs[0].ID != "same" || qs[1].ID != "software-engineer-ai-2" {
		t.Errorf("ids = %q, %q", qs[0].ID, qs[1].ID)
	}
}

func TestAdaptive_GeneratorTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QuestionTimeout = 10 * time.Millisecond
	cfg.Logger = zaptest.NewLogger(t)

	blocking := generatorFunc(func(ctx context.Context, _ questiongen.Input) (*question.Question, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	e := NewEngine(blocking, nil, cfg)

	start := time.Now()
	s, err := e.StartSession(context.Background(), "software-engineer", ModeAdaptive)
	if err != nil {
		t.Fatal(err)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("start should give up after the question timeout")
	}
	if qs := s.Questions(); len(qs) != 1 || qs[0].Skill != MotivationSkill {
		t.Errorf("questions = %+v", qs)
	}
}

type generatorFunc func(ctx context.Context, in questiongen.Input) (*question.Question, error)

func (f generatorFunc) Generate(ctx context.Context, in questiongen.Input) (*question.Question, error) {
	return f(ctx, in)
}

func TestAdaptive_InFlightGuardAndStaleDiscard(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	gen := &fakeGenerator{}
	gen.next = func(call int, in questiongen.Input) (*question.Question, error) {
		if call > 1 {
			entered <- struct{}{}
			<-release
		}
		return &question.Question{Text: "Rate " + in.FocusSkills[0], Kind: question.KindScale, Skill: in.FocusSkills[0]}, nil
	}
	s := startSession(t, newTestEngine(t, gen, nil), ModeAdaptive)
	ctx := context.Background()

	cur, _ := s.CurrentQuestion()
	if err := s.Submit(cur.ID, question.ScaleResponse{Value: 3}); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- s.Advance(ctx) }()
	<-entered

	var ise *InvalidStateError
	if err := s.Advance(ctx); !errors.As(err, &ise) {
		t.Errorf("second Advance during a pending request: got %v, want InvalidStateError", err)
	}
	if err := s.Submit(cur.ID, question.ScaleResponse{Value: 4}); !errors.As(err, &ise) {
		t.Errorf("Submit during a pending request: got %v, want InvalidStateError", err)
	}
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("no question should be current while loading")
	}
	if !s.Loading() {
		t.Error("Loading should report the pending request")
	}

	res := s.ForceComplete(ctx)
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if res == nil || s.State() != StateCompleted {
		t.Fatal("ForceComplete should complete the session")
	}
	if got := len(s.Questions()); got != 1 {
		t.Errorf("stale question applied: %d questions", got)
	}
}

func TestSubmit_UnknownQuestionLeavesStateUnchanged(t *testing.T) {
	s := startSession(t, newTestEngine(t, nil, nil), ModeFixed)

	err := s.Submit("se-3", question.ScaleResponse{Value: 4})
	var uq *UnknownQuestionError
	if !errors.As(err, &uq) {
		t.Fatalf("expected UnknownQuestionError, got %v", err)
	}
	if uq.CurrentID != "se-1" {
		t.Errorf("current id = %q", uq.CurrentID)
	}
	if len(s.Answers()) != 0 || s.State() != StateInProgress {
		t.Error("state changed after a rejected submit")
	}
	if cur, _ := s.CurrentQuestion(); cur.ID != "se-1" {
		t.Errorf("current question moved to %q", cur.ID)
	}
}

func TestSubmit_TypeMismatchLeavesStateUnchanged(t *testing.T) {
	s := startSession(t, newTestEngine(t, nil, nil), ModeFixed)

	err := s.Submit("se-1", question.TextResponse{Text: "four"})
	var tm *question.TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
	if len(s.Answers()) != 0 {
		t.Error("answer recorded after a rejected submit")
	}
}

func TestSubmit_ReplacesEarlierResponse(t *testing.T) {
	s := startSession(t, newTestEngine(t, nil, nil), ModeFixed)

	for _, v := range []int{2, 9} {
		if err := s.Submit("se-1", question.ScaleResponse{Value: v}); err != nil {
			t.Fatal(err)
		}
	}
	answers := s.Answers()
	if len(answers) != 1 || answers[0].Level != question.MaxLevel {
		t.Errorf("answers = %+v", answers)
	}
}

func TestOperationsRequireInProgress(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	ctx := context.Background()

	fresh, err := e.NewSession("software-engineer", ModeFixed)
	if err != nil {
		t.Fatal(err)
	}
	completed := startSession(t, e, ModeFixed)
	completed.Complete(ctx)

	for name, s := range map[string]*Session{"not started": fresh, "completed": completed} {
		t.Run(name, func(t *testing.T) {
			var ise *InvalidStateError
			if err := s.Submit("se-1", question.ScaleResponse{Value: 3}); !errors.As(err, &ise) {
				t.Errorf("Submit: got %v", err)
			}
			if err := s.Advance(ctx); !errors.As(err, &ise) {
				t.Errorf("Advance: got %v", err)
			}
			if _, err := s.SubmitRawAndAdvance(ctx, 3); !errors.As(err, &ise) {
				t.Errorf("SubmitRawAndAdvance: got %v", err)
			}
		})
	}
}

func TestComplete_RunsAggregatorOnce(t *testing.T) {
	an := &countingAnalyzer{}
	s := startSession(t, newTestEngine(t, nil, an), ModeFixed)
	ctx := context.Background()

	if _, err := s.SubmitRawAndAdvance(ctx, 2); err != nil {
		t.Fatal(err)
	}

	first := s.Complete(ctx)
	second := s.ForceComplete(ctx)
	if first != second {
		t.Error("later calls should return the cached result")
	}
	if an.calls != 1 {
		t.Errorf("analyzer called %d times, want 1", an.calls)
	}
	if first.Source != analysis.SourceAI || first.Strengths[0] != "Curiosity" {
		t.Errorf("result = %+v", first)
	}
	if len(s.Warnings()) != 0 {
		t.Errorf("warnings = %v", s.Warnings())
	}
}

func TestComplete_AnalyzerFailureFallsBack(t *testing.T) {
	an := &countingAnalyzer{err: errors.New("boom")}
	s := startSession(t, newTestEngine(t, nil, an), ModeFixed)

	res := s.ForceComplete(context.Background())
	if res.Source != analysis.SourceStandard || res.Strengths != nil || res.NextSteps != nil {
		t.Errorf("result = %+v", res)
	}
	if res.OverallScore != 20 {
		t.Errorf("score = %d, want 20 with no answers", res.OverallScore)
	}
}

func TestComplete_BeforeStart(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	s, err := e.NewSession("data-scientist", ModeAdaptive)
	if err != nil {
		t.Fatal(err)
	}
	res := s.Complete(context.Background())
	if res == nil || s.State() != StateCompleted {
		t.Fatal("Complete should work from any state")
	}
	if err := s.Start(context.Background()); err == nil {
		t.Error("Start after Complete should fail")
	}
}

func TestSubmitRawAndAdvance(t *testing.T) {
	s := startSession(t, newTestEngine(t, nil, nil), ModeFixed)
	ctx := context.Background()

	if _, err := s.SubmitRawAndAdvance(ctx, "four"); err == nil {
		t.Error("string for a scale question should fail")
	}
	out, err := s.SubmitRawAndAdvance(ctx, float64(4))
	if err != nil {
		t.Fatal(err)
	}
	if out.Next == nil || out.Next.ID != "se-2" {
		t.Errorf("next = %+v", out.Next)
	}
	if _, err := s.SubmitRawAndAdvance(ctx, "Built several projects"); err != nil {
		t.Fatal(err)
	}
	if a := s.Answers(); a[1].Level != 3 {
		t.Errorf("level = %d, want 3", a[1].Level)
	}
}

func TestRecord(t *testing.T) {
	s := startSession(t, newTestEngine(t, nil, nil), ModeFixed)
	if _, err := s.Record(); err == nil {
		t.Error("Record before completion should fail")
	}

	ctx := context.Background()
	if _, err := s.SubmitRawAndAdvance(ctx, 5); err != nil {
		t.Fatal(err)
	}
	res := s.Complete(ctx)

	rec, err := s.Record()
	if err != nil {
		t.Fatal(err)
	}
	if rec.SessionID != s.ID() || rec.CareerID != "software-engineer" || rec.Mode != "fixed" {
		t.Errorf("record = %+v", rec)
	}
	if presented := len(s.Questions()); rec.QuestionCount != 1 || presented != 5 {
		t.Errorf("QuestionCount = %d with %d presented, want the 1 answered", rec.QuestionCount, presented)
	}
	if rec.OverallScore != res.OverallScore || rec.Source != "standard" {
		t.Errorf("record = %+v", rec)
	}
	if len(rec.Gaps) != 5 || rec.Gaps[0].Priority != "high" {
		t.Errorf("gaps = %+v", rec.Gaps)
	}
	if len(rec.Result) == 0 {
		t.Error("result body missing")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeFixed, false},
		{"fixed", ModeFixed, false},
		{"adaptive", ModeAdaptive, false},
		{"Adaptive", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMode(%q) = %q, %v", tt.in, got, err)
		}
	}
}
