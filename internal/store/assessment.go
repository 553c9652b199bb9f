package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// assessmentRepo implements AssessmentRepo.
type assessmentRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

var assessmentColumns = []string{
	"id", "sequence", "timestamp", "session_id", "career_id", "mode", "source",
	"overall_score", "readiness_level", "question_count", "duration_secs", "result",
}

func (r *assessmentRepo) SaveAssessment(ctx context.Context, data AssessmentData) error {
	if data.SessionID == "" || data.CareerID == "" {
		return fmt.Errorf("save assessment: session and career IDs are required")
	}
	result := data.Result
	if len(result) == 0 {
		result = json.RawMessage(`{}`)
	}

	// Sequence numbers are reserved before the transaction takes the
	// connection.
	first, err := r.seq.Reserve(ctx, 1+len(data.Gaps))
	if err != nil {
		return err
	}
	now := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableAssessments).
		Columns(assessmentColumns[1:]...).
		Values(
			first, now, data.SessionID, data.CareerID, data.Mode, data.Source,
			data.OverallScore, data.ReadinessLevel, data.QuestionCount, data.DurationSecs, []byte(result),
		).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}

	if len(data.Gaps) > 0 {
		ins := entsql.Dialect(dialect.SQLite).
			Insert(tableSkillGaps).
			Columns("sequence", "timestamp", "session_id", "career_id", "skill",
				"current_level", "required_level", "gap", "priority")
		for i, g := range data.Gaps {
			ins.Values(first+int64(i)+1, now, data.SessionID, data.CareerID, g.Skill,
				g.CurrentLevel, g.RequiredLevel, g.Gap, g.Priority)
		}
		query, args := ins.Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("save skill gaps: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepo) ListAssessments(ctx context.Context, q AssessmentQuery) ([]Assessment, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(assessmentColumns...).
		From(entsql.Table(tableAssessments)).
		OrderBy(entsql.Desc("sequence"))
	if q.CareerID != "" {
		sel.Where(entsql.EQ("career_id", q.CareerID))
	}
	if q.Limit > 0 {
		sel.Limit(q.Limit)
	}
	return r.queryAssessments(ctx, sel)
}

func (r *assessmentRepo) GetAssessment(ctx context.Context, sessionID string) (*Assessment, error) {
	if sessionID == "" {
		return nil, nil
	}
	sel := entsql.Dialect(dialect.SQLite).
		Select(assessmentColumns...).
		From(entsql.Table(tableAssessments)).
		Where(entsql.HasPrefix("session_id", sessionID)).
		OrderBy(entsql.Desc("sequence")).
		Limit(2)
	found, err := r.queryAssessments(ctx, sel)
	if err != nil {
		return nil, err
	}

	var a *Assessment
	switch {
	case len(found) == 0:
		return nil, nil
	case len(found) == 1:
		a = &found[0]
	default:
		for i := range found {
			if found[i].SessionID == sessionID {
				a = &found[i]
			}
		}
		if a == nil {
			return nil, fmt.Errorf("session ID prefix %q is ambiguous", sessionID)
		}
	}

	gaps, err := r.gapsFor(ctx, a.SessionID)
	if err != nil {
		return nil, err
	}
	a.Gaps = gaps
	return a, nil
}

func (r *assessmentRepo) SkillGapStats(ctx context.Context, careerID string) ([]SkillGapStat, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(
			"career_id",
			"skill",
			entsql.As(entsql.Count("*"), "assessments"),
			entsql.As(entsql.Avg("current_level"), "avg_level"),
			entsql.As(entsql.Avg("gap"), "avg_gap"),
		).
		From(entsql.Table(tableSkillGaps)).
		GroupBy("career_id", "skill").
		OrderBy(entsql.Desc("avg_gap"), "career_id", "skill")
	if careerID != "" {
		sel.Where(entsql.EQ("career_id", careerID))
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("skill gap stats: %w", err)
	}
	defer rows.Close()

	var stats []SkillGapStat
	for rows.Next() {
		var s SkillGapStat
		if err := rows.Scan(&s.CareerID, &s.Skill, &s.Assessments, &s.AvgLevel, &s.AvgGap); err != nil {
			return nil, fmt.Errorf("scan skill gap stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *assessmentRepo) queryAssessments(ctx context.Context, sel *entsql.Selector) ([]Assessment, error) {
	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var out []Assessment
	for rows.Next() {
		var (
			a      Assessment
			result []byte
		)
		err := rows.Scan(
			&a.ID, &a.Sequence, &a.Timestamp, &a.SessionID, &a.CareerID, &a.Mode, &a.Source,
			&a.OverallScore, &a.ReadinessLevel, &a.QuestionCount, &a.DurationSecs, &result,
		)
		if err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		a.Result = json.RawMessage(result)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	return out, nil
}

func (r *assessmentRepo) gapsFor(ctx context.Context, sessionID string) ([]SkillGapRecord, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("skill", "current_level", "required_level", "gap", "priority").
		From(entsql.Table(tableSkillGaps)).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy("sequence").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query skill gaps: %w", err)
	}
	defer rows.Close()

	var gaps []SkillGapRecord
	for rows.Next() {
		var g SkillGapRecord
		if err := rows.Scan(&g.Skill, &g.CurrentLevel, &g.RequiredLevel, &g.Gap, &g.Priority); err != nil {
			return nil, fmt.Errorf("scan skill gap: %w", err)
		}
		gaps = append(gaps, g)
	}
	return gaps, rows.Err()
}
