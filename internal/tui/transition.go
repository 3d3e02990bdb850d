package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/julianstephens/surprise/internal/constants"
	"github.com/julianstephens/surprise/internal/models"
	"github.com/julianstephens/surprise/internal/tui/theme"
)

// transition cross-fades between stage views. The outgoing view fades out
// while sliding up, then the incoming view fades in while settling down
// from below. Each half lasts constants.TransitionPhase.
type transition struct {
	active   bool
	entering bool
	to       models.Stage
	start    time.Time
}

func newTransition(to models.Stage, now time.Time) transition {
	return transition{active: true, to: to, start: now}
}

func (t transition) progress(now time.Time) float64 {
	if t.start.IsZero() {
		return 0
	}
	p := float64(now.Sub(t.start)) / float64(constants.TransitionPhase)
	return math.Max(0, math.Min(p, 1))
}

func (t transition) phaseDone(now time.Time) bool {
	return !t.start.IsZero() && now.Sub(t.start) >= constants.TransitionPhase
}

// offset is the vertical displacement in rows, negative meaning up.
func (t transition) offset(now time.Time) int {
	e := easeInOut(t.progress(now))
	if t.entering {
		return int(math.Round(constants.TransitionRows * (1 - e)))
	}
	return -int(math.Round(constants.TransitionRows * e))
}

func (t transition) opacity(now time.Time) float64 {
	e := easeInOut(t.progress(now))
	if t.entering {
		return e
	}
	return 1 - e
}

func easeInOut(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 3)/2
}

var (
	fadeFrom = mustHex(theme.Night)
	fadeTo   = mustHex(string(theme.RoseGold))
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// fade renders view as plain text in a colour between the night sky and
// rose gold.
func fade(view string, opacity float64) string {
	c := fadeFrom.BlendLab(fadeTo, opacity).Clamped()
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))

	lines := strings.Split(ansi.Strip(view), "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// shift moves view by rows, keeping its line count.
func shift(view string, rows int) string {
	if rows == 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	n := len(lines)
	if rows >= n || -rows >= n {
		return strings.Repeat("\n", n-1)
	}

	blank := make([]string, abs(rows))
	if rows > 0 {
		lines = append(blank, lines[:n-rows]...)
	} else {
		lines = append(lines[-rows:], blank...)
	}
	return strings.Join(lines, "\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (t transition) render(view string, now time.Time) string {
	return shift(fade(view, t.opacity(now)), t.offset(now))
}
