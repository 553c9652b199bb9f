package catalog

import "fmt"

// TargetLevel is the proficiency every career skill is measured against.
const TargetLevel = 4

// CareerProfile describes a career path and the skills it requires.
type CareerProfile struct {
	ID          string
	Title       string
	Description string
	Category    string
	Icon        string

	// Skills is the ordered list of assessed skills. Gap reports list
	// skills in this order when gaps tie.
	Skills []string

	// RelatedSkills is the broader skill set of the role, used for display.
	RelatedSkills []string

	// TargetLevel is the required proficiency for every skill (1-5).
	TargetLevel int

	AverageSalary string
	GrowthRate    string
}

// HasSkill reports whether skill is one of the assessed skills.
func (p CareerProfile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// ResourceType categorizes a learning resource.
type ResourceType string

const (
	ResourceCourse        ResourceType = "course"
	ResourceBook          ResourceType = "book"
	ResourceCertification ResourceType = "certification"
)

// Resource is a learning resource that covers one or more skills.
type Resource struct {
	ID         string
	Title      string
	Type       ResourceType
	Provider   string
	Duration   string
	Difficulty string
	Rating     float64
	Skills     []string
}

// NotFoundError is returned when a career ID is not in the catalog.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("career not found: %q", e.ID)
}

// DuplicateSkillError reports a career profile that lists a skill twice.
type DuplicateSkillError struct {
	CareerID string
	Skill    string
}

func (e *DuplicateSkillError) Error() string {
	return fmt.Sprintf("career %q lists skill %q more than once", e.CareerID, e.Skill)
}
