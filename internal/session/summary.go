package session

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/pathwise/internal/store"
)

// Record builds the persistence record of a completed session.
func (s *Session) Record() (store.AssessmentData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateCompleted || s.result == nil {
		return store.AssessmentData{}, &InvalidStateError{Op: "record", State: s.state, Reason: "no result yet"}
	}

	body, err := json.Marshal(s.result)
	if err != nil {
		return store.AssessmentData{}, fmt.Errorf("encode result: %w", err)
	}

	gaps := make([]store.SkillGapRecord, len(s.result.SkillGaps))
	for i, e := range s.result.SkillGaps {
		gaps[i] = store.SkillGapRecord{
			Skill:         e.Skill,
			CurrentLevel:  e.CurrentLevel,
			RequiredLevel: e.RequiredLevel,
			Gap:           e.Gap,
			Priority:      string(e.Priority),
		}
	}

	return store.AssessmentData{
		SessionID:      s.id,
		CareerID:       s.career.ID,
		Mode:           string(s.mode),
		Source:         string(s.result.Source),
		OverallScore:   s.result.OverallScore,
		ReadinessLevel: s.result.ReadinessLevel,
		QuestionCount:  len(s.answers),
		DurationSecs:   int(s.completedAt.Sub(s.startedAt).Seconds()),
		Result:         body,
		Gaps:           gaps,
	}, nil
}
