package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/analysis"
	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/screens/results"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/abhisek/pathwise/internal/ui/layout"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

const historyLimit = 50

type historyLoadedMsg struct {
	Assessments []store.Assessment
	Err         error
}

// HistoryScreen lists past assessments, newest first.
type HistoryScreen struct {
	repo        store.AssessmentRepo
	assessments []store.Assessment
	selected    int
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo store.AssessmentRepo) *HistoryScreen {
	return &HistoryScreen{repo: repo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{Err: fmt.Errorf("history is unavailable without a database")}
		}
		list, err := repo.ListAssessments(context.Background(), store.AssessmentQuery{Limit: historyLimit})
		return historyLoadedMsg{Assessments: list, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.assessments = msg.Assessments
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.assessments)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected < len(s.assessments) {
				report, err := Report(s.assessments[s.selected])
				if err != nil {
					s.errMsg = err.Error()
					return s, nil
				}
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: results.New(report)}
				}
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.assessments) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No assessments yet. Pick a career to get started!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.assessments {
		dateStr := a.Timestamp.Format("Jan 02, 2006")
		mins := a.DurationSecs / 60
		secs := a.DurationSecs % 60

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-24s  %3d  %-6s  %d questions  %d:%02d",
			prefix, dateStr, careerTitle(a.CareerID), a.OverallScore,
			a.ReadinessLevel, a.QuestionCount, mins, secs)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// Report rebuilds the results report of a stored assessment.
func Report(a store.Assessment) (results.Report, error) {
	var res analysis.Result
	if err := json.Unmarshal(a.Result, &res); err != nil {
		return results.Report{}, fmt.Errorf("decode assessment %s: %w", a.SessionID, err)
	}
	career, err := catalog.GetProfile(a.CareerID)
	if err != nil {
		career = catalog.CareerProfile{ID: a.CareerID, Title: a.CareerID}
	}
	return results.Report{
		SessionID: a.SessionID,
		Career:    career,
		Mode:      a.Mode,
		Result:    &res,
		Answered:  a.QuestionCount,
		Duration:  time.Duration(a.DurationSecs) * time.Second,
		Taken:     a.Timestamp,
	}, nil
}

func careerTitle(id string) string {
	if p, err := catalog.GetProfile(id); err == nil {
		return p.Title
	}
	return id
}
