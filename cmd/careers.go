package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathwise/internal/catalog"
)

var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "Browse the career catalog",
}

var careersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all careers",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		fmt.Printf("%-22s  %-26s  %-14s  %6s  %s\n", "ID", "Title", "Category", "Skills", "Growth")
		fmt.Println(strings.Repeat("─", 86))

		n := 0
		for _, p := range catalog.AllProfiles() {
			if category != "" && !strings.EqualFold(p.Category, category) {
				continue
			}
			fmt.Printf("%-22s  %-26s  %-14s  %6d  %s\n",
				p.ID, truncate(p.Title, 26), truncate(p.Category, 14), len(p.Skills), p.GrowthRate)
			n++
		}
		if n == 0 {
			fmt.Printf("No careers in category %q.\n", category)
		}
		return nil
	},
}

var careersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a career's skills, questions and learning resources",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := catalog.GetProfile(args[0])
		if err != nil {
			return err
		}
		questions, err := catalog.Questions(p.ID)
		if err != nil {
			return err
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("%s %s\n", p.Icon, p.Title)
		fmt.Println(p.Description)
		fmt.Println()
		fmt.Printf("Category:  %s\n", p.Category)
		fmt.Printf("Salary:    %s\n", p.AverageSalary)
		fmt.Printf("Growth:    %s\n", p.GrowthRate)
		fmt.Printf("Target:    level %d of 5 in every skill\n", p.TargetLevel)

		fmt.Println()
		fmt.Println("Assessed skills")
		fmt.Println(sep)
		for i, s := range p.Skills {
			fmt.Printf("  %d. %s\n", i+1, s)
		}
		if len(p.RelatedSkills) > 0 {
			fmt.Printf("\nRelated: %s\n", strings.Join(p.RelatedSkills, ", "))
		}

		fmt.Println()
		fmt.Println("Questions")
		fmt.Println(sep)
		for _, q := range questions {
			fmt.Printf("  [%s] %s\n", q.ID, q.Text)
			fmt.Printf("      %s, skill: %s\n", q.Kind, q.Skill)
			for j, o := range q.Options {
				fmt.Printf("      %d) %s\n", j+1, o)
			}
		}

		if resources := catalog.RecommendResources(p.Skills, 0); len(resources) > 0 {
			fmt.Println()
			fmt.Println("Learning resources")
			fmt.Println(sep)
			for _, r := range resources {
				fmt.Printf("  %s (%s, %s)\n", r.Title, r.Type, r.Provider)
				fmt.Printf("      %s, %s, %.1f★  covers %s\n",
					r.Duration, r.Difficulty, r.Rating, strings.Join(r.Skills, ", "))
			}
		}
		return nil
	},
}

var careersResourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List learning resources, optionally filtered by skill or type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		skill, _ := cmd.Flags().GetString("skill")
		typ, _ := cmd.Flags().GetString("type")

		resources := filterResources(catalog.Resources(), catalog.ResourceType(typ), skill)
		if len(resources) == 0 {
			fmt.Println("No matching resources.")
			return nil
		}

		fmt.Printf("%-36s  %-13s  %-24s  %-10s  %-12s  %s\n",
			"Title", "Type", "Provider", "Duration", "Level", "Rating")
		fmt.Println(strings.Repeat("─", 112))
		for _, r := range resources {
			fmt.Printf("%-36s  %-13s  %-24s  %-10s  %-12s  %.1f★\n",
				truncate(r.Title, 36), r.Type, truncate(r.Provider, 24),
				truncate(r.Duration, 10), r.Difficulty, r.Rating)
			fmt.Printf("  covers %s\n", strings.Join(r.Skills, ", "))
		}
		return nil
	},
}

var careersCompareCmd = &cobra.Command{
	Use:   "compare <id> <id> [id...]",
	Short: "Compare careers side by side",
	Args:  cobra.RangeArgs(2, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles := make([]catalog.CareerProfile, 0, len(args))
		for _, id := range args {
			p, err := catalog.GetProfile(id)
			if err != nil {
				return err
			}
			profiles = append(profiles, p)
		}

		const col = 24
		row := func(label string, cell func(catalog.CareerProfile) string) {
			fmt.Printf("%-10s", label)
			for _, p := range profiles {
				fmt.Printf("  %-*s", col, truncate(cell(p), col))
			}
			fmt.Println()
		}

		bestSalary := slices.MaxFunc(profiles, func(a, b catalog.CareerProfile) int {
			return salaryFloor(a.AverageSalary) - salaryFloor(b.AverageSalary)
		})
		bestGrowth := slices.MaxFunc(profiles, func(a, b catalog.CareerProfile) int {
			return growthPercent(a.GrowthRate) - growthPercent(b.GrowthRate)
		})
		mark := func(s string, best bool) string {
			if best {
				return s + " ★"
			}
			return s
		}

		row("", func(p catalog.CareerProfile) string { return p.Title })
		fmt.Println(strings.Repeat("─", 10+len(profiles)*(col+2)))
		row("Category", func(p catalog.CareerProfile) string { return p.Category })
		row("Salary", func(p catalog.CareerProfile) string {
			return mark(p.AverageSalary, p.ID == bestSalary.ID)
		})
		row("Growth", func(p catalog.CareerProfile) string {
			return mark(p.GrowthRate, p.ID == bestGrowth.ID)
		})
		row("Skills", func(p catalog.CareerProfile) string { return strconv.Itoa(len(p.Skills)) })

		if shared := sharedSkills(profiles); len(shared) > 0 {
			fmt.Printf("\nShared skills: %s\n", strings.Join(shared, ", "))
		} else {
			fmt.Println("\nNo assessed skills in common.")
		}
		return nil
	},
}

// filterResources keeps resources of the given type that cover skill.
// Empty filters match everything. Skill matching ignores case.
func filterResources(resources []catalog.Resource, typ catalog.ResourceType, skill string) []catalog.Resource {
	var out []catalog.Resource
	for _, r := range resources {
		if typ != "" && r.Type != typ {
			continue
		}
		if skill != "" && !slices.ContainsFunc(r.Skills, func(s string) bool { return strings.EqualFold(s, skill) }) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// salaryFloor returns the first dollar amount in a salary range such as
// "$95,000 - $150,000", or 0 when there is none.
func salaryFloor(s string) int {
	i := strings.IndexByte(s, '$')
	if i < 0 {
		return 0
	}
	var digits strings.Builder
	for _, r := range s[i+1:] {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == ',':
		default:
			n, _ := strconv.Atoi(digits.String())
			return n
		}
	}
	n, _ := strconv.Atoi(digits.String())
	return n
}

// growthPercent parses a growth rate such as "22%". Unparsable rates
// count as 0.
func growthPercent(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%")))
	if err != nil {
		return 0
	}
	return n
}

// sharedSkills returns the assessed skills every profile has, in the
// first profile's order.
func sharedSkills(profiles []catalog.CareerProfile) []string {
	if len(profiles) == 0 {
		return nil
	}
	var out []string
	for _, s := range profiles[0].Skills {
		if !slices.ContainsFunc(profiles[1:], func(p catalog.CareerProfile) bool { return !p.HasSkill(s) }) {
			out = append(out, s)
		}
	}
	return out
}

func init() {
	careersListCmd.Flags().String("category", "", "Only list careers in this category")
	careersResourcesCmd.Flags().String("skill", "", "Only list resources covering this skill")
	careersResourcesCmd.Flags().String("type", "", "Only list resources of this type (course, book or certification)")

	careersCmd.AddCommand(careersListCmd, careersShowCmd, careersResourcesCmd, careersCompareCmd)
}
