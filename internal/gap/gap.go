package gap

import (
	"fmt"
	"math"
	"sort"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/question"
)

// Priority ranks how urgently a skill gap should be addressed.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Readiness levels derived from the overall score.
const (
	ReadinessHigh   = "High"
	ReadinessMedium = "Medium"
	ReadinessLow    = "Low"
)

// Entry is the gap between current and required proficiency for one skill.
type Entry struct {
	Skill         string   `json:"skill"`
	CurrentLevel  int      `json:"current_level"`
	RequiredLevel int      `json:"required_level"`
	Gap           int      `json:"gap"`
	Priority      Priority `json:"priority"`
	EstimatedTime string   `json:"estimated_time"`
}

// DuplicateSkillError is returned when the skill list names a skill twice.
type DuplicateSkillError struct {
	Skill string
}

func (e *DuplicateSkillError) Error() string {
	return fmt.Sprintf("duplicate skill %q", e.Skill)
}

// NewEntry builds an entry from raw levels. Both levels are clamped to
// [1,5] before the gap is derived.
func NewEntry(skill string, current, required int) Entry {
	cur := int(question.Clamp(question.Level(current)))
	req := int(question.Clamp(question.Level(required)))
	g := max(0, req-cur)
	return Entry{
		Skill:         skill,
		CurrentLevel:  cur,
		RequiredLevel: req,
		Gap:           g,
		Priority:      PriorityFor(g),
		EstimatedTime: EstimatedTime(g),
	}
}

// Compute produces one entry per skill, ordered by descending gap. Skills
// with equal gaps keep their input order. Skills missing from levels (or
// with an unscored level) are treated as level 1.
func Compute(skills []string, required int, levels map[string]question.Level) ([]Entry, error) {
	seen := make(map[string]bool, len(skills))
	entries := make([]Entry, 0, len(skills))
	for _, s := range skills {
		if seen[s] {
			return nil, &DuplicateSkillError{Skill: s}
		}
		seen[s] = true

		cur := question.MinLevel
		if l, ok := levels[s]; ok && l != question.LevelUnscored {
			cur = l
		}
		entries = append(entries, NewEntry(s, int(cur), required))
	}
	Sort(entries)
	return entries, nil
}

// ComputeForProfile runs Compute against a career's assessed skills and
// target level.
func ComputeForProfile(p catalog.CareerProfile, levels map[string]question.Level) ([]Entry, error) {
	entries, err := Compute(p.Skills, p.TargetLevel, levels)
	if err != nil {
		return nil, fmt.Errorf("compute gaps for %s: %w", p.ID, err)
	}
	return entries, nil
}

// Sort orders entries by descending gap, keeping input order for ties.
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Gap > entries[j].Gap
	})
}

// PriorityFor maps a gap to its priority.
func PriorityFor(gap int) Priority {
	switch {
	case gap >= 2:
		return PriorityHigh
	case gap == 1:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// OverallScore is the mean current level scaled to 0-100 and rounded.
// An empty slice scores 0.
func OverallScore(entries []Entry) int {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.CurrentLevel
	}
	mean := float64(sum) / float64(len(entries))
	return int(math.Round(mean * 20))
}

// Readiness maps an overall score to a readiness label.
func Readiness(score int) string {
	switch {
	case score >= 80:
		return ReadinessHigh
	case score >= 60:
		return ReadinessMedium
	default:
		return ReadinessLow
	}
}

// EstimatedTime is a rough duration needed to close a gap.
func EstimatedTime(gap int) string {
	switch gap {
	case 0:
		return "0 weeks"
	case 1:
		return "2-4 weeks"
	case 2:
		return "1-2 months"
	case 3:
		return "2-3 months"
	case 4:
		return "3-4 months"
	case 5:
		return "4-6 months"
	default:
		return "6+ months"
	}
}

// SkillsWithGap returns the skills of entries with a positive gap, in
// entry order.
func SkillsWithGap(entries []Entry) []string {
	var out []string
	for _, e := range entries {
		if e.Gap > 0 {
			out = append(out, e.Skill)
		}
	}
	return out
}
