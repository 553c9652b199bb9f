package store

import (
	"context"
	"encoding/json"
	"testing"
)

func TestSaveAndGetAssessment(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	data := sampleAssessment("7d3f6a1e-0000-4000-8000-000000000001", "software-engineer")
	if err := repo.SaveAssessment(ctx, data); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetAssessment(ctx, data.SessionID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected assessment")
	}
	if got.CareerID != "software-engineer" || got.OverallScore != 56 || got.ReadinessLevel != "Low" {
		t.Errorf("assessment = %+v", got.AssessmentData)
	}
	if got.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
	if len(got.Gaps) != 3 || got.Gaps[0].Skill != "Version Control" || got.Gaps[2].Priority != "low" {
		t.Errorf("gaps = %+v", got.Gaps)
	}

	var result map[string]any
	if err := json.Unmarshal(got.Result, &result); err != nil {
		t.Fatalf("result JSON: %v", err)
	}
	if result["readinessLevel"] != "Low" {
		t.Errorf("result = %v", result)
	}
}

func TestGetAssessmentByPrefix(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	for _, id := range []string{"abc-111", "abc-222", "def-333"} {
		if err := repo.SaveAssessment(ctx, sampleAssessment(id, "data-scientist")); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	got, err := repo.GetAssessment(ctx, "def")
	if err != nil || got == nil || got.SessionID != "def-333" {
		t.Fatalf("prefix lookup = %v, %v", got, err)
	}

	if _, err := repo.GetAssessment(ctx, "abc"); err == nil {
		t.Error("expected ambiguity error")
	}

	got, err = repo.GetAssessment(ctx, "zzz")
	if err != nil || got != nil {
		t.Errorf("missing lookup = %v, %v; want nil, nil", got, err)
	}
}

func TestSaveAssessmentDuplicateSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	data := sampleAssessment("dup", "ux-designer")
	if err := repo.SaveAssessment(ctx, data); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.SaveAssessment(ctx, data); err == nil {
		t.Fatal("expected unique constraint error on second save")
	}

	// The failed save must not leave orphan gap rows behind.
	var n int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM skill_gaps WHERE session_id = 'dup'").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("skill gap rows = %d, want 3", n)
	}
}

func TestSaveAssessmentRequiresIDs(t *testing.T) {
	s := openTestStore(t)
	if err := s.AssessmentRepo().SaveAssessment(context.Background(), AssessmentData{CareerID: "x"}); err == nil {
		t.Fatal("expected error for empty session ID")
	}
}

func TestListAssessments(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	saves := []struct{ session, career string }{
		{"s1", "software-engineer"},
		{"s2", "data-scientist"},
		{"s3", "software-engineer"},
	}
	for _, sv := range saves {
		if err := repo.SaveAssessment(ctx, sampleAssessment(sv.session, sv.career)); err != nil {
			t.Fatalf("save %s: %v", sv.session, err)
		}
	}

	all, err := repo.ListAssessments(ctx, AssessmentQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].SessionID != "s3" || all[2].SessionID != "s1" {
		t.Fatalf("list order = %v", sessionIDs(all))
	}
	if all[0].Gaps != nil {
		t.Error("list should not load gaps")
	}

	se, err := repo.ListAssessments(ctx, AssessmentQuery{CareerID: "software-engineer", Limit: 1})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(se) != 1 || se[0].SessionID != "s3" {
		t.Errorf("filtered list = %v", sessionIDs(se))
	}
}

func TestSkillGapStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	first := sampleAssessment("s1", "software-engineer")
	second := sampleAssessment("s2", "software-engineer")
	second.Gaps[0] = SkillGapRecord{Skill: "Version Control", CurrentLevel: 3, RequiredLevel: 4, Gap: 1, Priority: "medium"}
	other := sampleAssessment("s3", "data-scientist")

	for _, d := range []AssessmentData{first, second, other} {
		if err := repo.SaveAssessment(ctx, d); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	stats, err := repo.SkillGapStats(ctx, "software-engineer")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("got %d stats, want 3: %+v", len(stats), stats)
	}
	vc := stats[0]
	if vc.Skill != "Version Control" || vc.Assessments != 2 || vc.AvgGap != 2 || vc.AvgLevel != 2 {
		t.Errorf("top stat = %+v", vc)
	}

	all, err := repo.SkillGapStats(ctx, "")
	if err != nil {
		t.Fatalf("stats (all): %v", err)
	}
	if len(all) != 6 {
		t.Errorf("got %d stats across careers, want 6", len(all))
	}
}

func sessionIDs(as []Assessment) []string {
	ids := make([]string, len(as))
	for i, a := range as {
		ids[i] = a.SessionID
	}
	return ids
}
