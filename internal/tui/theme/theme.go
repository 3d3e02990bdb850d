// Package theme holds the colours and shared styles of the greeting.
package theme

import "github.com/charmbracelet/lipgloss"

const (
	RoseGold   = lipgloss.Color("#E8B4CB")
	Blush      = lipgloss.Color("#F7CAC9")
	DeepPurple = lipgloss.Color("#6B4C7A")
	Lavender   = lipgloss.Color("#C3AED6")
	Gold       = lipgloss.Color("#F5C26B")
	Muted      = lipgloss.Color("240")
	Night      = "#1C172E"
)

var (
	Title = lipgloss.NewStyle().
		Foreground(RoseGold).
		Bold(true).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(Lavender).
			Italic(true)

	Body = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(RoseGold).
		Padding(1, 3)

	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#D48FB0")).
		Bold(true).
		Padding(0, 3)

	Hint = lipgloss.NewStyle().
		Foreground(Muted)
)

// Center places content in the middle of a width x height area when the
// size is known.
func Center(width, height int, content string) string {
	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
