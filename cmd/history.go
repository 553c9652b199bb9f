package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/gap"
	"github.com/abhisek/pathwise/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Review past assessments",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		career, _ := cmd.Flags().GetString("career")

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		list, err := s.AssessmentRepo().ListAssessments(ctx, store.AssessmentQuery{
			Limit:    limit,
			CareerID: career,
		})
		if err != nil {
			return fmt.Errorf("list assessments: %w", err)
		}

		if len(list) == 0 {
			fmt.Println("No assessments found.")
			return nil
		}

		fmt.Printf("%-8s  %-16s  %-24s  %-8s  %5s  %-9s  %3s  %s\n",
			"Session", "Taken", "Career", "Mode", "Score", "Readiness", "Qs", "Time")
		fmt.Println(strings.Repeat("─", 96))

		for _, a := range list {
			fmt.Printf("%-8s  %-16s  %-24s  %-8s  %5d  %-9s  %3d  %s\n",
				truncate(a.SessionID, 8),
				a.Timestamp.Local().Format("2006-01-02 15:04"),
				truncate(careerTitle(a.CareerID), 24),
				a.Mode,
				a.OverallScore,
				a.ReadinessLevel,
				a.QuestionCount,
				formatDuration(a.DurationSecs),
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <session-id>",
	Short: "Show the full result of an assessment",
	Long:  "Show the full result of an assessment. A unique prefix of the session ID is enough.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		a, err := s.AssessmentRepo().GetAssessment(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get assessment: %w", err)
		}
		if a == nil {
			return fmt.Errorf("assessment %q not found", args[0])
		}

		var res analysis.Result
		if err := json.Unmarshal(a.Result, &res); err != nil {
			return fmt.Errorf("decode result: %w", err)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("Session:   %s\n", a.SessionID)
		fmt.Printf("Taken:     %s\n", a.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Career:    %s\n", careerTitle(a.CareerID))
		fmt.Printf("Mode:      %s\n", a.Mode)
		fmt.Printf("Answered:  %d in %s\n", a.QuestionCount, formatDuration(a.DurationSecs))
		fmt.Printf("Score:     %d/100 (%s readiness)\n", res.OverallScore, res.ReadinessLevel)
		fmt.Printf("Analysis:  %s\n", res.Source)
		if res.ConfidenceScore > 0 {
			fmt.Printf("Confidence: %d%%\n", res.ConfidenceScore)
		}
		if res.Notice != "" {
			fmt.Printf("Notice:    %s\n", res.Notice)
		}
		if res.Summary != "" {
			fmt.Println()
			fmt.Println(res.Summary)
		}

		fmt.Println()
		fmt.Println("Skill gaps")
		fmt.Println(sep)
		for _, e := range res.SkillGaps {
			fmt.Printf("  %-28s  %d/%d  gap %d  %-6s", truncate(e.Skill, 28),
				e.CurrentLevel, e.RequiredLevel, e.Gap, e.Priority)
			if e.Gap > 0 {
				fmt.Printf("  ~%s", e.EstimatedTime)
			}
			fmt.Println()
		}

		printList("Recommendations", res.Recommendations, sep)
		printList("Strengths", res.Strengths, sep)
		printList("Areas to improve", res.ImprovementAreas, sep)
		printList("Next steps", res.NextSteps, sep)

		if len(res.LearningPath) > 0 {
			fmt.Println()
			fmt.Println("Learning path")
			fmt.Println(sep)
			for i, p := range res.LearningPath {
				fmt.Printf("  %d. %s (%s)\n", i+1, p.Phase, p.Duration)
				if len(p.Skills) > 0 {
					fmt.Printf("     skills: %s\n", strings.Join(p.Skills, ", "))
				}
				for _, r := range p.Resources {
					fmt.Printf("     - %s\n", r)
				}
			}
		}

		if resources := catalog.RecommendResources(gap.SkillsWithGap(res.SkillGaps), 3); len(resources) > 0 {
			titles := make([]string, 0, len(resources))
			for _, r := range resources {
				titles = append(titles, fmt.Sprintf("%s (%s)", r.Title, r.Provider))
			}
			printList("Suggested resources", titles, sep)
		}
		return nil
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the average gap per skill across assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		career, _ := cmd.Flags().GetString("career")

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		stats, err := s.AssessmentRepo().SkillGapStats(ctx, career)
		if err != nil {
			return fmt.Errorf("query skill gaps: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No assessments recorded yet.")
			return nil
		}

		fmt.Printf("%-24s  %-28s  %5s  %9s  %7s\n", "Career", "Skill", "Taken", "Avg Level", "Avg Gap")
		fmt.Println(strings.Repeat("─", 80))
		for _, st := range stats {
			fmt.Printf("%-24s  %-28s  %5d  %9.1f  %7.1f\n",
				truncate(careerTitle(st.CareerID), 24),
				truncate(st.Skill, 28),
				st.Assessments,
				st.AvgLevel,
				st.AvgGap,
			)
		}
		return nil
	},
}

func printList(title string, items []string, sep string) {
	if len(items) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(title)
	fmt.Println(sep)
	for _, item := range items {
		fmt.Printf("  • %s\n", item)
	}
}

// careerTitle returns the display title of a career, or the ID when the
// career is no longer in the catalog.
func careerTitle(id string) string {
	if p, err := catalog.GetProfile(id); err == nil {
		return p.Title
	}
	return id
}

func formatDuration(secs int) string {
	return (time.Duration(secs) * time.Second).String()
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of assessments to show")
	historyListCmd.Flags().String("career", "", "Only show assessments for this career ID")
	historyStatsCmd.Flags().String("career", "", "Only show skills of this career ID")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
	historyCmd.AddCommand(historyStatsCmd)
}
