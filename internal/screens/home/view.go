package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/screens/welcome"
	sess "github.com/abhisek/pathwise/internal/session"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 34

// renderTitle returns the banner, or a one-line title in compact mode.
func renderTitle(cw int, compact bool) string {
	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(welcome.RenderBanner(0))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(welcome.RenderBanner(cw))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(careers, taken int, mode sess.Mode, aiEnabled bool, cw int) string {
	countStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	modeStyle := lipgloss.NewStyle().Foreground(theme.Info).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	ai := dimStyle.Render("AI OFF")
	if aiEnabled {
		ai = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("AI ON")
	}

	stats := fmt.Sprintf("%s  %s  %s  %s",
		countStyle.Render(fmt.Sprintf("%d CAREERS", careers)),
		countStyle.Render(fmt.Sprintf("%d TAKEN", taken)),
		modeStyle.Render(strings.ToUpper(string(mode))+" MODE"),
		ai,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Info).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	buttons := make([]string, len(items))
	for i, label := range items {
		buttons[i] = components.MenuButton(label, i == selected, buttonWidth)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Highlight).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderLLMBanner renders a note when no LLM provider is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key for adaptive questions and AI analysis (see pathwise --help)")
}
