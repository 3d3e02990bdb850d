package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/surprise/internal/tui/theme"
)

var (
	musicOnStyle = lipgloss.NewStyle().
			Foreground(theme.RoseGold).
			Bold(true).
			Padding(0, 1)

	musicOffStyle = lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true).
			Padding(0, 1)

	cursorHeart = "💖"
)
