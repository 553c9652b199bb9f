package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/screens/assessment"
	"github.com/abhisek/pathwise/internal/screens/history"
	sess "github.com/abhisek/pathwise/internal/session"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/abhisek/pathwise/internal/ui/components"
	"github.com/abhisek/pathwise/internal/ui/layout"
)

type statsLoadedMsg struct {
	Taken int
}

// HomeScreen is the career picker the app opens on.
type HomeScreen struct {
	deps      assessment.Deps
	menu      components.Menu
	mode      sess.Mode
	taken     int
	aiEnabled bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen. mode is the preselected assessment mode.
func New(deps assessment.Deps, mode sess.Mode) *HomeScreen {
	if mode == "" {
		mode = sess.ModeFixed
	}
	h := &HomeScreen{deps: deps, mode: mode}
	if deps.Engine != nil {
		h.aiEnabled = deps.Engine.AdaptiveAvailable() || deps.Engine.AnalysisAvailable()
	}

	var items []components.MenuItem
	for _, p := range catalog.AllProfiles() {
		careerID := p.ID
		items = append(items, components.MenuItem{Label: p.Title, Action: func() tea.Cmd {
			next := assessment.New(h.deps, careerID, h.mode)
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: next}
			}
		}})
	}

	items = append(items,
		components.MenuItem{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.deps.Repo)}
			}
		}},
		components.MenuItem{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	repo := h.deps.Repo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		list, err := repo.ListAssessments(context.Background(), store.AssessmentQuery{})
		if err != nil {
			return statsLoadedMsg{}
		}
		return statsLoadedMsg{Taken: len(list)}
	}
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Tab", Description: "Switch mode"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		h.taken = msg.Taken
		return h, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "m":
			h.toggleMode()
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 40 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	labels := h.menu.Labels()
	sections = append(sections, renderStatsBar(len(labels)-2, h.taken, h.mode, h.aiEnabled, cw))
	if !h.aiEnabled {
		sections = append(sections, renderLLMBanner(cw))
	}
	if compact {
		sections = append(sections, renderMenuCompact(labels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(labels, h.menu.Selected, cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Choose a career"
}

// Mode returns the mode new assessments start in.
func (h *HomeScreen) Mode() sess.Mode {
	return h.mode
}

func (h *HomeScreen) toggleMode() {
	if h.mode == sess.ModeAdaptive {
		h.mode = sess.ModeFixed
	} else {
		h.mode = sess.ModeAdaptive
	}
}
