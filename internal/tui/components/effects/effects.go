// Package effects implements the ambient animations drawn over the stage
// views: floating hearts, confetti and fireworks.
package effects

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/julianstephens/surprise/internal/constants"
)

// FrameMsg drives every animation. The root model emits one per frame and
// forwards it to whatever is on screen.
type FrameMsg time.Time

// Frame schedules the next FrameMsg.
func Frame() tea.Cmd {
	return tea.Tick(constants.FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

var lastID atomic.Int64

// NextID returns a process-unique id for a view instance. Tick messages
// carry it so that a view can drop ticks scheduled by an earlier instance.
func NextID() int {
	return int(lastID.Add(1))
}

// Sprite is a single glyph placed at a cell.
type Sprite struct {
	X, Y  int
	Glyph string
	Color string
}

// Overlay draws sprites on top of base, padding base to height rows.
// Sprites outside the width x height area are skipped.
func Overlay(base string, width, height int, sprites []Sprite) string {
	if len(sprites) == 0 {
		return base
	}

	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	for _, s := range sprites {
		if s.X < 0 || s.Y < 0 || s.Y >= len(lines) {
			continue
		}
		w := ansi.StringWidth(s.Glyph)
		if width > 0 && s.X+w > width {
			continue
		}
		glyph := s.Glyph
		if s.Color != "" {
			glyph = lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(glyph)
		}
		lines[s.Y] = splice(lines[s.Y], s.X, w, glyph)
	}
	return strings.Join(lines, "\n")
}

func splice(line string, x, w int, glyph string) string {
	left := ansi.Truncate(line, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(line, x+w, "")
	return left + glyph + right
}
