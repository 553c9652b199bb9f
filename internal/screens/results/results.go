package results

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/gap"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/layout"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

// maxResources is how many learning resources the results suggest.
const maxResources = 3

// Report is everything the results screen shows about one assessment.
type Report struct {
	SessionID string
	Career    catalog.CareerProfile
	Mode      string
	Result    *analysis.Result
	Warnings  []string
	Answered  int
	Duration  time.Duration
	Taken     time.Time
	SaveErr   error
}

// ResultsScreen displays the outcome of an assessment. The content can be
// taller than the terminal, so it scrolls.
type ResultsScreen struct {
	report Report
	offset int
	height int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen.
func New(report Report) *ResultsScreen {
	return &ResultsScreen{report: report}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Done"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		case "pgup":
			s.offset = max(0, s.offset-10)
		case "pgdown", " ":
			s.offset += 10
		case "home", "g":
			s.offset = 0
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if s.report.Result == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  No result available.")
	}

	lines := strings.Split(s.render(width), "\n")
	if height <= 0 || len(lines) <= height {
		s.offset = 0
		return strings.Join(lines, "\n")
	}
	s.offset = min(s.offset, len(lines)-height)
	return strings.Join(lines[s.offset:s.offset+height], "\n")
}

func (s *ResultsScreen) render(width int) string {
	res := s.report.Result
	cw := components.ContentWidth(width)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString("\n")

	// Title.
	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("%s readiness", s.report.Career.Title)))
	b.WriteString("\n")

	b.WriteString(theme.Subtitle.Width(width).Render(s.meta()))
	b.WriteString("\n\n")

	// Score card.
	readiness := lipgloss.NewStyle().
		Foreground(theme.ReadinessColor(res.ReadinessLevel)).
		Bold(true).
		Render(res.ReadinessLevel + " readiness")
	bar := components.NewProgressBar(fmt.Sprintf("Score %3d", res.OverallScore),
		float64(res.OverallScore)/100, true, cw-6).
		WithFill(theme.ReadinessColor(res.ReadinessLevel)).
		View()
	card := bar + "\n" + readiness
	if res.ConfidenceScore > 0 {
		card += lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("   confidence %d%%", res.ConfidenceScore))
	}
	b.WriteString(center(components.Card(card, cw)))
	b.WriteString("\n")

	if res.Notice != "" {
		b.WriteString(center(theme.Notice.Render("! " + res.Notice)))
		b.WriteString("\n")
	}
	if s.report.SaveErr != nil {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error).
			Render("Could not save this assessment: " + s.report.SaveErr.Error())))
		b.WriteString("\n")
	}

	if res.Summary != "" {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(res.Summary)))
		b.WriteString("\n")
	}

	// Skill gaps.
	b.WriteString(section("Skill gaps", cw, center))
	for _, e := range res.SkillGaps {
		b.WriteString(center(renderGap(e, cw)))
		b.WriteString("\n")
	}

	b.WriteString(renderList("Recommendations", res.Recommendations, cw, center))
	b.WriteString(renderList("Strengths", res.Strengths, cw, center))
	b.WriteString(renderList("Areas to improve", res.ImprovementAreas, cw, center))
	b.WriteString(renderList("Next steps", res.NextSteps, cw, center))

	if len(res.LearningPath) > 0 {
		b.WriteString(section("Learning path", cw, center))
		for i, p := range res.LearningPath {
			head := fmt.Sprintf("%d. %s", i+1, p.Phase)
			if p.Duration != "" {
				head += " (" + p.Duration + ")"
			}
			body := theme.Heading.Render(head)
			if len(p.Skills) > 0 {
				body += "\n   " + strings.Join(p.Skills, ", ")
			}
			for _, r := range p.Resources {
				body += "\n   - " + r
			}
			b.WriteString(center(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(body)))
			b.WriteString("\n")
		}
	}

	if resources := catalog.RecommendResources(gap.SkillsWithGap(res.SkillGaps), maxResources); len(resources) > 0 {
		b.WriteString(section("Suggested resources", cw, center))
		for _, r := range resources {
			line := fmt.Sprintf("%s  %s, %s, %.1f★",
				r.Title, r.Provider, r.Duration, r.Rating)
			b.WriteString(center(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	}

	var notes []string
	for _, w := range s.report.Warnings {
		if w != res.Notice {
			notes = append(notes, w)
		}
	}
	if len(notes) > 0 {
		b.WriteString("\n")
		for _, w := range notes {
			b.WriteString(center(theme.Notice.Render("! " + w)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// meta returns the one-line description of the session.
func (s *ResultsScreen) meta() string {
	parts := []string{}
	if s.report.Mode != "" {
		parts = append(parts, s.report.Mode+" mode")
	}
	parts = append(parts, fmt.Sprintf("%d answered", s.report.Answered))
	if s.report.Duration > 0 {
		mins := int(s.report.Duration.Minutes())
		secs := int(s.report.Duration.Seconds()) % 60
		parts = append(parts, fmt.Sprintf("%d:%02d", mins, secs))
	}
	if !s.report.Taken.IsZero() {
		parts = append(parts, s.report.Taken.Format("Jan 02, 2006"))
	}
	if s.report.Result.Source == analysis.SourceAI {
		parts = append(parts, "AI analysis")
	}
	return strings.Join(parts, "  ·  ")
}

// renderGap renders one skill-gap row with its level bar.
func renderGap(e gap.Entry, cw int) string {
	priority := lipgloss.NewStyle().
		Foreground(theme.PriorityColor(string(e.Priority))).
		Bold(true).
		Render(fmt.Sprintf("%-6s", e.Priority))

	label := fmt.Sprintf("%-18s", truncate(e.Skill, 18))
	levels := fmt.Sprintf(" %d/%d", e.CurrentLevel, e.RequiredLevel)

	barWidth := cw - lipgloss.Width(label) - lipgloss.Width(levels) - 8 - 4
	var pct float64
	if e.RequiredLevel > 0 {
		pct = float64(e.CurrentLevel) / float64(e.RequiredLevel)
	}
	bar := components.NewProgressBar("", pct, false, max(barWidth, 4)).
		WithFill(theme.PriorityColor(string(e.Priority))).
		View()

	line := lipgloss.NewStyle().Foreground(theme.Text).Render(label) + bar + levels + "  " + priority
	if e.Gap > 0 {
		line += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  about %s to close", e.EstimatedTime))
	}
	return lipgloss.NewStyle().Width(cw).Render(line)
}

func renderList(title string, items []string, cw int, center func(string) string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(section(title, cw, center))
	for _, item := range items {
		b.WriteString(center(lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render("• " + item)))
		b.WriteString("\n")
	}
	return b.String()
}

func section(title string, cw int, center func(string) string) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
	return "\n" + center(theme.Heading.Width(cw).Render(title)) + "\n" + center(divider) + "\n"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
