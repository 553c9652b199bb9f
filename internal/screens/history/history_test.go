package history

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screens/results"
	"github.com/abhisek/pathwise/internal/store"
)

type mockRepo struct {
	list []store.Assessment
	err  error
}

func (m *mockRepo) SaveAssessment(context.Context, store.AssessmentData) error { return nil }
func (m *mockRepo) ListAssessments(_ context.Context, q store.AssessmentQuery) ([]store.Assessment, error) {
	if q.Limit != historyLimit {
		return nil, errors.New("unexpected limit")
	}
	return m.list, m.err
}
func (m *mockRepo) GetAssessment(context.Context, string) (*store.Assessment, error) {
	return nil, nil
}
func (m *mockRepo) SkillGapStats(context.Context, string) ([]store.SkillGapStat, error) {
	return nil, nil
}

func assessmentFixture(t *testing.T, sessionID, career string, score int) store.Assessment {
	t.Helper()
	body, err := json.Marshal(analysis.Result{OverallScore: score, ReadinessLevel: "Medium", Source: analysis.SourceStandard})
	if err != nil {
		t.Fatal(err)
	}
	return store.Assessment{
		ID:        1,
		Timestamp: time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC),
		AssessmentData: store.AssessmentData{
			SessionID:      sessionID,
			CareerID:       career,
			Mode:           "fixed",
			OverallScore:   score,
			ReadinessLevel: "Medium",
			QuestionCount:  5,
			DurationSecs:   125,
			Result:         body,
		},
	}
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	s.Update(s.Init()())
}

func TestHistory_ListAndOpen(t *testing.T) {
	repo := &mockRepo{list: []store.Assessment{
		assessmentFixture(t, "s-2", "data-scientist", 64),
		assessmentFixture(t, "s-1", "software-engineer", 72),
	}}
	s := New(repo)
	if !strings.Contains(s.View(100, 30), "Loading") {
		t.Error("expected loading text before the list arrives")
	}
	load(t, s)

	view := s.View(100, 30)
	for _, want := range []string{"Mar 04, 2026", "Data Scientist", "Software Engineer", "2:05"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Fatalf("selected = %d, want clamp at 1", s.selected)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should open the assessment")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*results.ResultsScreen); !ok {
		t.Fatalf("expected results screen, got %T", push.Screen)
	}
	if !strings.Contains(push.Screen.View(100, 200), "Software Engineer readiness") {
		t.Error("results should be for the selected assessment")
	}
}

func TestHistory_Empty(t *testing.T) {
	s := New(&mockRepo{})
	load(t, s)
	if !strings.Contains(s.View(100, 30), "No assessments yet") {
		t.Error("expected empty-state text")
	}
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("enter on an empty list should do nothing")
	}
}

func TestHistory_Errors(t *testing.T) {
	tests := []struct {
		name string
		repo store.AssessmentRepo
		want string
	}{
		{"no database", nil, "without a database"},
		{"query fails", &mockRepo{err: errors.New("locked")}, "locked"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.repo)
			load(t, s)
			if !strings.Contains(s.View(100, 30), tt.want) {
				t.Errorf("view should mention %q", tt.want)
			}
		})
	}
}

func TestReport_CorruptResult(t *testing.T) {
	a := assessmentFixture(t, "s-1", "software-engineer", 72)
	a.Result = json.RawMessage(`{`)
	if _, err := Report(a); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestReport_UnknownCareer(t *testing.T) {
	r, err := Report(assessmentFixture(t, "s-1", "retired-career", 50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Career.Title != "retired-career" || r.Result.OverallScore != 50 {
		t.Errorf("report = %+v", r)
	}
}

func TestHistory_Back(t *testing.T) {
	s := New(&mockRepo{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop the screen")
	}
}
