package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/question"
)

// validateCatalog performs all structural checks on the given data.
// Returns a combined error describing all problems found, or nil if valid.
// A *DuplicateSkillError found along the way is reachable via errors.As.
func validateCatalog(profiles []CareerProfile, questions map[string][]question.Question) error {
	var errs []string
	var dup *DuplicateSkillError

	ids := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if ids[p.ID] {
			errs = append(errs, fmt.Sprintf("duplicate career ID: %q", p.ID))
		}
		ids[p.ID] = true

		if len(p.Skills) == 0 {
			errs = append(errs, fmt.Sprintf("career %q has no skills", p.ID))
		}
		if p.TargetLevel < int(question.MinLevel) || p.TargetLevel > int(question.MaxLevel) {
			errs = append(errs, fmt.Sprintf("career %q: TargetLevel must be in [1,5], got %d", p.ID, p.TargetLevel))
		}

		seen := make(map[string]bool, len(p.Skills))
		for _, s := range p.Skills {
			if seen[s] {
				e := &DuplicateSkillError{CareerID: p.ID, Skill: s}
				if dup == nil {
					dup = e
				}
				errs = append(errs, e.Error())
			}
			seen[s] = true
		}

		qids := make(map[string]bool)
		for _, q := range questions[p.ID] {
			prefix := fmt.Sprintf("career %q question %q", p.ID, q.ID)
			if qids[q.ID] {
				errs = append(errs, prefix+": duplicate question ID")
			}
			qids[q.ID] = true

			if !q.Kind.Valid() {
				errs = append(errs, fmt.Sprintf("%s: unknown kind %q", prefix, q.Kind))
			}
			if q.Kind == question.KindMultipleChoice && len(q.Options) == 0 {
				errs = append(errs, prefix+": multiple-choice question has no options")
			}
			if q.Kind != question.KindMultipleChoice && len(q.Options) > 0 {
				errs = append(errs, prefix+": options set on non multiple-choice question")
			}
			if !seen[q.Skill] {
				errs = append(errs, fmt.Sprintf("%s: skill %q is not in the profile", prefix, q.Skill))
			}
		}
	}

	for id := range questions {
		if !ids[id] {
			errs = append(errs, fmt.Sprintf("question bank for unknown career %q", id))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	err := fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	if dup != nil {
		return errors.Join(dup, err)
	}
	return err
}
