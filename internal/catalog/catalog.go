package catalog

import (
	"slices"

	"github.com/abhisek/pathwise/internal/question"
)

// catalog holds the career profiles, question bank and resources with
// precomputed indices.
type catalog struct {
	profiles  []CareerProfile
	byID      map[string]*CareerProfile
	questions map[string][]question.Question
	resources []Resource
	bySkill   map[string][]int
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

func buildCatalog(profiles []CareerProfile, questions map[string][]question.Question, resources []Resource) *catalog {
	cat := &catalog{
		profiles:  profiles,
		byID:      make(map[string]*CareerProfile, len(profiles)),
		questions: questions,
		resources: resources,
		bySkill:   make(map[string][]int),
	}
	for i := range cat.profiles {
		cat.byID[cat.profiles[i].ID] = &cat.profiles[i]
	}
	for i, r := range cat.resources {
		for _, s := range r.Skills {
			cat.bySkill[s] = append(cat.bySkill[s], i)
		}
	}
	return cat
}

// GetProfile returns the career profile with the given ID, or a
// *NotFoundError if there is none.
func GetProfile(id string) (CareerProfile, error) {
	p, ok := c.byID[id]
	if !ok {
		return CareerProfile{}, &NotFoundError{ID: id}
	}
	out := *p
	out.Skills = slices.Clone(p.Skills)
	out.RelatedSkills = slices.Clone(p.RelatedSkills)
	return out, nil
}

// AllProfiles returns every career profile in catalog order.
func AllProfiles() []CareerProfile {
	return slices.Clone(c.profiles)
}

// Questions returns the static question bank for a career. Unknown careers
// yield a *NotFoundError.
func Questions(id string) ([]question.Question, error) {
	if _, ok := c.byID[id]; !ok {
		return nil, &NotFoundError{ID: id}
	}
	qs := c.questions[id]
	out := make([]question.Question, len(qs))
	for i, q := range qs {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out, nil
}

// Resources returns all learning resources.
func Resources() []Resource {
	return slices.Clone(c.resources)
}

// RecommendResources returns resources covering any of the given skills,
// in catalog order, at most limit entries. A limit <= 0 means no limit.
func RecommendResources(skills []string, limit int) []Resource {
	picked := make(map[int]bool)
	for _, s := range skills {
		for _, idx := range c.bySkill[s] {
			picked[idx] = true
		}
	}

	var out []Resource
	for i, r := range c.resources {
		if !picked[i] {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Validate checks the loaded seed data.
func Validate() error {
	return validateCatalog(c.profiles, c.questions)
}
