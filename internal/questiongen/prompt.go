package questiongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/question"
)

const systemPrompt = `You are a career assessment expert. You write one adaptive question at a time to measure a candidate's readiness for a career.

Rules:
- Ask about exactly one skill, chosen from the focus skills when possible. Use the skill name exactly as given.
- Adapt to the previous responses: probe deeper where the candidate claims experience, and check fundamentals where they do not.
- Focus on practical skills and realistic scenarios. Keep the question clear and unambiguous.
- Use "scale" for a 1-5 self rating, "multiple-choice" for experience ladders, and "text" or "scenario" for open answers.
- For multiple-choice, give 4 options ordered from least to most experienced. Prefer: "No experience", "Some knowledge", "Practical experience", "Expert level".
- For every other type, return an empty options array.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from Input and Config limits.
func buildUserMessage(input Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Career: %s\n", input.Career.Title)
	fmt.Fprintf(&b, "Category: %s\n", input.Career.Category)
	fmt.Fprintf(&b, "Required skills: %s\n", strings.Join(input.Career.Skills, ", "))
	fmt.Fprintf(&b, "Current skill level: %s\n", skillLevelLabel(input.SkillLevel))
	fmt.Fprintf(&b, "Focus skills: %s\n", joinOrNone(input.FocusSkills))

	b.WriteString("\nPrevious responses:\n")
	b.WriteString(buildResponses(input.Answers, cfg.MaxPriorAnswers))

	b.WriteString("\n\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.priorQuestions(), cfg.MaxPriorAnswers))

	return b.String()
}

func skillLevelLabel(d question.Difficulty) string {
	if d == "" {
		return string(question.DifficultyBeginner)
	}
	return string(d)
}

// buildResponses formats previous answers for the prompt, keeping the
// most recent max entries.
func buildResponses(answers []question.Answer, max int) string {
	if len(answers) == 0 {
		return "None"
	}
	if max > 0 && len(answers) > max {
		answers = answers[len(answers)-max:]
	}

	var b strings.Builder
	for i, a := range answers {
		fmt.Fprintf(&b, "%d. [%s] %s\n   Answer: %s", i+1, a.Question.Skill, a.Question.Text, a.Response)
		if a.Level.Scored() {
			fmt.Fprintf(&b, " (level %d/5)", a.Level)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// buildDedup formats prior questions for the prompt, respecting the max limit.
// Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
