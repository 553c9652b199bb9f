package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/question"
	"github.com/abhisek/pathwise/internal/questiongen"
)

// previewFocusSkills is how many skills each preview question probes.
const previewFocusSkills = 3

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated questions for a career (no database)",
	Long: `Generate and interactively answer adaptive questions for a career.

This is a stateless developer tool: no database, no saved results, no events.
Useful for evaluating question quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("career", "", "Career ID (required)")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	_ = previewCmd.MarkFlagRequired("career")
}

func runPreview(cmd *cobra.Command, args []string) error {
	careerID, _ := cmd.Flags().GetString("career")
	count, _ := cmd.Flags().GetInt("count")

	profile, err := catalog.GetProfile(careerID)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// No EventRepo, so requests are not recorded.
	ctx := context.Background()
	provider, err := llm.NewProvider(ctx, cfg.LLMConfig(), nil, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	if provider == nil {
		return fmt.Errorf("no LLM provider configured; set llm.provider or a vendor API key")
	}

	gen := questiongen.New(provider, questiongen.DefaultConfig())
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Career: %s (%s)\n", profile.Title, provider.ModelID())
	fmt.Printf("Generating %d questions...\n\n", count)

	var answers []question.Answer
	for i := 1; i <= count; i++ {
		level := question.DifficultyBeginner
		if i > 1 {
			level = question.DifficultyIntermediate
		}
		input := questiongen.Input{
			Career:      profile,
			Answers:     answers,
			SkillLevel:  level,
			FocusSkills: rotateSkills(profile.Skills, i-1, previewFocusSkills),
			Index:       i,
		}

		q, err := gen.Generate(ctx, input)
		if err != nil {
			fmt.Printf("Question %d: generation failed: %v\n\n", i, err)
			continue
		}

		fmt.Printf("── Question %d/%d ── %s, skill: %s\n", i, count, q.Kind, q.Skill)
		fmt.Println(q.Text)
		if q.Rationale != "" {
			fmt.Printf("(%s)\n", q.Rationale)
		}
		switch q.Kind {
		case question.KindScale:
			fmt.Println("  1 = no experience ... 5 = expert")
		case question.KindMultipleChoice:
			for j, o := range q.Options {
				fmt.Printf("  %d) %s\n", j+1, o)
			}
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		resp, err := question.FromRaw(q.Kind, previewRaw(*q, text))
		if err != nil {
			fmt.Printf("Invalid answer: %v\n\n", err)
			continue
		}
		lvl, err := question.Normalize(resp, q.Kind)
		if err != nil {
			fmt.Printf("Invalid answer: %v\n\n", err)
			continue
		}
		answers = append(answers, question.Answer{Question: *q, Response: resp, Level: lvl})

		if lvl == question.LevelUnscored {
			fmt.Print("Recorded (free text is not scored).\n\n")
		} else {
			fmt.Printf("Recorded level %d for %s.\n\n", lvl, q.Skill)
		}
	}

	fmt.Printf("── Summary: %d/%d answered ──\n", len(answers), count)
	return nil
}

// previewRaw converts typed input into the raw value FromRaw expects.
// Option numbers select the option label.
func previewRaw(q question.Question, text string) any {
	n, err := strconv.Atoi(text)
	switch q.Kind {
	case question.KindScale:
		if err == nil {
			return n
		}
	case question.KindMultipleChoice:
		if err == nil && n >= 1 && n <= len(q.Options) {
			return q.Options[n-1]
		}
	}
	return text
}

// rotateSkills returns up to n skills starting at offset, wrapping around.
func rotateSkills(skills []string, offset, n int) []string {
	if len(skills) == 0 {
		return nil
	}
	n = min(n, len(skills))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, skills[(offset+i)%len(skills)])
	}
	return out
}
