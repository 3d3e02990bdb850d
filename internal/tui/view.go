package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/surprise/internal/tui/components/effects"
	"github.com/julianstephens/surprise/internal/tui/theme"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.viewStage()
	if m.trans.active {
		body = m.trans.render(body, m.now)
	}
	if m.confirm != nil {
		body = theme.Center(m.width, m.bodyHeight(), theme.Card.Render(m.confirm.View()))
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		body,
		m.help.View(m),
	)

	sprites := m.hearts.Sprites(m.now)
	if m.mouseSeen {
		sprites = append(sprites, effects.Sprite{X: m.mouseX, Y: m.mouseY, Glyph: cursorHeart})
	}
	return effects.Overlay(ui, m.width, m.height, sprites)
}

// bodyHeight is what is left for the stage view after the header and help.
func (m Model) bodyHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-1-lipgloss.Height(m.help.View(m)), 0)
}

func (m Model) viewHeader() string {
	var indicator string
	switch {
	case m.opts.Mute:
		indicator = musicOffStyle.Render("🔇 muted")
	case m.music.Degraded():
		indicator = warningStyle.Render("🔇 no audio device")
	case m.music.Enabled():
		pct := int(math.Round(m.music.Volume() * 100))
		indicator = musicOnStyle.Render(fmt.Sprintf("🔊 %d%%", pct))
	default:
		indicator = musicOffStyle.Render("🔈 press m for music")
	}

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, indicator)
	}
	return indicator
}
