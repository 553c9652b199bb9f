package question

// DefaultChoiceLevel is assigned to option labels missing from the lookup
// table. Unknown labels are scored at the low end of the middle range.
const DefaultChoiceLevel Level = 2

// choiceLevels maps every known option label to a proficiency level.
// Four-step ladders map to 1, 2, 3 and 5.
var choiceLevels = map[string]Level{
	// Rung 1: no exposure.
	"Never used it":   1,
	"No experience":   1,
	"Not familiar":    1,
	"Never used any":  1,
	"Never used":      1,
	"Beginner":        1,
	"Not experienced": 1,

	// Rung 2: basic knowledge.
	"Basic understanding": 2,
	"Basic commands":      2,
	"Basic knowledge":     2,
	"Know basic concepts": 2,
	"Basic charts":        2,
	"Basic skills":        2,
	"Some experience":     2,
	"Basic campaigns":     2,
	"Some knowledge":      2,

	// Rung 3: practical experience.
	"Built several projects":      3,
	"Comfortable with branching":  3,
	"Implemented several models":  3,
	"Advanced visualizations":     3,
	"Conducted user studies":      3,
	"Experienced practitioner":    3,
	"Proficient user":             3,
	"Created site maps":           3,
	"Managed campaigns":           3,
	"Optimized ads":               3,
	"Analyzed threats":            3,
	"Conducted assessments":       3,
	"Practical experience":        3,

	// Rung 4: expert.
	"Expert level":             5,
	"Advanced workflows":       5,
	"Expert in ML":             5,
	"Expert in multiple tools": 5,
	"Expert researcher":        5,
	"Certified expert":         5,
	"Advanced expert":          5,
	"Expert in IA":             5,
	"Expert strategist":        5,
	"Advanced strategist":      5,
	"Expert analyst":           5,
	"Expert evaluator":         5,
}

// ChoiceLevel looks up the level for an option label. The match is case
// sensitive. The second return value is false when the label is unknown
// and the default level was used.
func ChoiceLevel(label string) (Level, bool) {
	if l, ok := choiceLevels[label]; ok {
		return l, true
	}
	return DefaultChoiceLevel, false
}

// Normalize converts a response into a proficiency level for the given
// answer kind.
//
//   - scale: the value is clamped to [1,5]
//   - multiple-choice: label lookup, DefaultChoiceLevel when unmatched
//   - text: LevelUnscored; free text is only interpreted by the analyzer
//
// A response variant that does not belong to kind yields a
// *TypeMismatchError.
func Normalize(resp Response, kind Kind) (Level, error) {
	switch kind {
	case KindScale:
		r, ok := resp.(ScaleResponse)
		if !ok {
			return LevelUnscored, mismatch(kind, resp)
		}
		return Clamp(Level(r.Value)), nil

	case KindMultipleChoice:
		r, ok := resp.(ChoiceResponse)
		if !ok {
			return LevelUnscored, mismatch(kind, resp)
		}
		l, _ := ChoiceLevel(r.Label)
		return l, nil

	case KindText:
		if _, ok := resp.(TextResponse); !ok {
			return LevelUnscored, mismatch(kind, resp)
		}
		return LevelUnscored, nil
	}
	return LevelUnscored, mismatch(kind, resp)
}

// Clamp bounds l to [MinLevel, MaxLevel].
func Clamp(l Level) Level {
	if l < MinLevel {
		return MinLevel
	}
	if l > MaxLevel {
		return MaxLevel
	}
	return l
}

func mismatch(kind Kind, resp Response) error {
	got := "nil"
	if resp != nil {
		got = string(resp.Kind()) + " response"
	}
	return &TypeMismatchError{Kind: kind, Got: got}
}
