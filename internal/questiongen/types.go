package questiongen

import (
	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/question"
)

// Input holds all context needed to generate the next question.
type Input struct {
	// Career is the profile being assessed.
	Career catalog.CareerProfile

	// Answers are the responses collected so far, in submission order.
	// Empty for the first question.
	Answers []question.Answer

	// SkillLevel is the level hint for the model: beginner for the first
	// question, intermediate afterwards.
	SkillLevel question.Difficulty

	// FocusSkills are the skills the next question should probe, most
	// important first.
	FocusSkills []string

	// Index is the 1-based position of the requested question within the
	// session. It becomes part of the question ID.
	Index int
}

// priorQuestions returns the text of every question already asked.
func (in Input) priorQuestions() []string {
	out := make([]string, 0, len(in.Answers))
	for _, a := range in.Answers {
		out = append(out, a.Question.Text)
	}
	return out
}
