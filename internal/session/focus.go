package session

import (
	"slices"
	"sort"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/question"
)

// initialFocus returns the first n assessed skills of the career.
func initialFocus(p catalog.CareerProfile, n int) []string {
	return slices.Clone(p.Skills[:min(n, len(p.Skills))])
}

// nextFocus picks the skills the next adaptive question should probe.
// Skills without a scored answer come first, in profile order, followed by
// assessed skills from the lowest level up. At most n are returned.
func nextFocus(p catalog.CareerProfile, answers []question.Answer, n int) []string {
	levels := analysis.Levels(answers)

	type assessed struct {
		skill string
		level question.Level
	}
	var (
		out  []string
		seen []assessed
	)
	for _, s := range p.Skills {
		if l, ok := levels[s]; ok {
			seen = append(seen, assessed{s, l})
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(seen, func(i, j int) bool {
		return seen[i].level < seen[j].level
	})
	for _, a := range seen {
		out = append(out, a.skill)
	}
	return out[:min(n, len(out))]
}
