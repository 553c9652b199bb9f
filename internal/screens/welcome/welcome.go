package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond

	// Offsets into the animation at which each stage begins. The clock
	// stops at settleAt; sparkles keep cycling after that.
	sparkleAt = 500 * time.Millisecond
	bannerAt  = 1500 * time.Millisecond
	settleAt  = 4500 * time.Millisecond
)

type stage int

const (
	stageCompass stage = iota
	stageSparkle
	stageBanner
)

// The needle swings through these while the compass settles, then rests on
// the last one.
var needleFrames = []string{"╲", "│", "╱", "─", "╲", "│", "╱"}

var sparkleFrames = []string{"★", "✦"}

func compass(needle string) []string {
	return []string{
		"      N      ",
		"      │      ",
		"  ╭───┼───╮  ",
		"  │   │   │  ",
		"W ┼───◉───┼ E",
		"  │   " + needle + "   │  ",
		"  ╰───┼───╯  ",
		"      │      ",
		"      S      ",
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// WelcomeScreen is the splash shown before the career picker. It waits for
// a key press.
type WelcomeScreen struct {
	next    func() screen.Screen
	elapsed time.Duration
	frames  int
	done    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that hands over to the screen built by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.elapsed = min(w.elapsed+tickInterval, settleAt)
		w.frames++
		return w, tick()
	case tea.KeyPressMsg:
		return w, w.handOver()
	}
	return w, nil
}

func (w *WelcomeScreen) stage() stage {
	switch {
	case w.elapsed >= bannerAt:
		return stageBanner
	case w.elapsed >= sparkleAt:
		return stageSparkle
	}
	return stageCompass
}

// handOver replaces the splash with the next screen. Only the first call
// does anything.
func (w *WelcomeScreen) handOver() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	next := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (w *WelcomeScreen) View(width, height int) string {
	needle := needleFrames[len(needleFrames)-1]
	if w.stage() == stageCompass {
		needle = needleFrames[w.frames%len(needleFrames)]
	}
	lines := compass(needle)
	for i := range lines {
		lines[i] = lipgloss.NewStyle().Foreground(theme.Primary).Render(lines[i])
	}

	if w.stage() >= stageSparkle {
		s := sparkleFrames[w.frames%len(sparkleFrames)]
		a := lipgloss.NewStyle().Foreground(theme.Accent).Render(s)
		b := lipgloss.NewStyle().Foreground(theme.Secondary).Render(s)
		for i, pair := range map[int][2]string{0: {a, b}, 4: {b, a}, 8: {a, b}} {
			lines[i] = pair[0] + "  " + lines[i] + "  " + pair[1]
		}
	}

	content := strings.Join(lines, "\n")
	if w.stage() == stageBanner {
		tagline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Find the gaps between you and your next role.")
		content = strings.Join([]string{
			content, "",
			RenderBanner(width), "",
			tagline, "",
			theme.Hint.Render("press any key to continue"),
		}, "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
