package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/ui/theme"
)

func keyText(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func testMenu(disabled ...int) Menu {
	items := []MenuItem{{Label: "A"}, {Label: "B"}, {Label: "C"}, {Label: "D"}}
	for _, i := range disabled {
		items[i].Disabled = true
	}
	return NewMenu(items)
}

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name     string
		disabled []int
		keys     []tea.Msg
		want     int
	}{
		{"starts on first", nil, nil, 0},
		{"starts on first enabled", []int{0}, nil, 1},
		{"down", nil, []tea.Msg{tea.KeyPressMsg{Code: tea.KeyDown}}, 1},
		{"up wraps to last", nil, []tea.Msg{tea.KeyPressMsg{Code: tea.KeyUp}}, 3},
		{"down wraps to first", nil, []tea.Msg{keyText("G"), keyText("j")}, 0},
		{"skips disabled", []int{1, 2}, []tea.Msg{keyText("j")}, 3},
		{"end skips disabled", []int{3}, []tea.Msg{keyText("G")}, 2},
		{"home", nil, []tea.Msg{keyText("j"), keyText("j"), keyText("g")}, 0},
		{"ignores other messages", nil, []tea.Msg{tea.WindowSizeMsg{Width: 10}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testMenu(tt.disabled...)
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			if m.Selected != tt.want {
				t.Errorf("Selected = %d, want %d", m.Selected, tt.want)
			}
		})
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := ""
	action := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			ran = label
			return func() tea.Msg { return nil }
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "Start", Action: action("Start")},
		{Label: "Quit", Action: action("Quit")},
	})
	m, _ = m.Update(keyText("j"))
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd == nil {
		t.Fatal("enter should return the action's command")
	}
	if ran != "Quit" {
		t.Errorf("ran %q, want Quit", ran)
	}
	if got := strings.Join(m.Labels(), ","); got != "Start,Quit" {
		t.Errorf("Labels = %q", got)
	}
}

func TestMenuAllDisabled(t *testing.T) {
	m := testMenu(0, 1, 2, 3)
	m, cmd := m.Update(keyText("j"))
	if m.Selected != 0 || cmd != nil {
		t.Errorf("Selected = %d, cmd = %v", m.Selected, cmd)
	}
}

func TestProgressBarWidth(t *testing.T) {
	tests := []struct {
		name    string
		bar     ProgressBar
		width   int
		percent string
	}{
		{"bare", NewProgressBar("", 0.5, false, 20), 20, ""},
		{"overfull", NewProgressBar("", 1.7, false, 12), 12, ""},
		{"labelled", NewProgressBar("Score", 0.42, true, 40), 40, "42%"},
		{"colored", NewProgressBar("", 0.3, false, 16).WithFill(theme.Error), 16, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.bar.View()
			if got := lipgloss.Width(out); got != tt.width {
				t.Errorf("width = %d, want %d", got, tt.width)
			}
			if tt.percent != "" && !strings.Contains(out, tt.percent) {
				t.Errorf("missing %q in %q", tt.percent, out)
			}
		})
	}
}
