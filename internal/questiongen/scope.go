package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/question"
)

// SkillScopeValidator rejects questions whose skill is not part of the
// career profile (assessed or related skills).
type SkillScopeValidator struct{}

func (v *SkillScopeValidator) Name() string { return "skill-scope" }

func (v *SkillScopeValidator) Validate(q *question.Question, input Input) *ValidationError {
	if _, ok := canonicalSkill(input.Career, q.Skill); !ok {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("skill %q is not part of %s", q.Skill, input.Career.Title),
		}
	}
	return nil
}

// canonicalSkill matches name case-insensitively against the profile's
// assessed skills first, then its related skills, and returns the
// catalog spelling.
func canonicalSkill(p catalog.CareerProfile, name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, list := range [][]string{p.Skills, p.RelatedSkills} {
		for _, s := range list {
			if strings.EqualFold(s, name) {
				return s, true
			}
		}
	}
	return name, false
}
