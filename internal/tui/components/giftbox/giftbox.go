// Package giftbox reveals a random gift, with one chance to swap it.
package giftbox

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/surprise/internal/constants"
	"github.com/julianstephens/surprise/internal/models"
	"github.com/julianstephens/surprise/internal/tui/components/effects"
	"github.com/julianstephens/surprise/internal/tui/keys"
	"github.com/julianstephens/surprise/internal/tui/theme"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.RoseGold).
			Padding(1, 6)

	giftTitleStyle = lipgloss.NewStyle().
			Foreground(theme.Gold).
			Bold(true)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(50).
			Align(lipgloss.Center)

	secondaryButton = theme.Button.
			Background(theme.DeepPurple)
)

type Model struct {
	keys    keys.KeyMap
	gifts   []models.Gift
	rng     *rand.Rand
	current int
	swapped bool
	done    bool
	sparkle int
	width   int
	height  int
}

// New expects at least two gifts with distinct titles.
func New(gifts []models.Gift, rng *rand.Rand) Model {
	return Model{
		keys:    keys.Default(),
		gifts:   gifts,
		rng:     rng,
		current: -1,
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Revealed returns the gift on display, if the box has been opened.
func (m Model) Revealed() (models.Gift, bool) {
	if m.current < 0 {
		return models.Gift{}, false
	}
	return m.gifts[m.current], true
}

// Swapped reports whether the one "try another" has been used.
func (m Model) Swapped() bool { return m.swapped }

func (m Model) Init() tea.Cmd {
	return nil
}

// Open reveals a uniformly random gift. Opening twice does nothing.
func (m Model) Open() Model {
	if m.current >= 0 {
		return m
	}
	m.current = m.rng.IntN(len(m.gifts))
	return m
}

// TryAnother swaps the gift for a different one, uniformly from the rest.
// It works once, and only after the box is open.
func (m Model) TryAnother() Model {
	if m.current < 0 || m.swapped {
		return m
	}
	pick := m.rng.IntN(len(m.gifts) - 1)
	if pick >= m.current {
		pick++
	}
	m.current = pick
	m.swapped = true
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case effects.FrameMsg:
		m.sparkle = int(time.Time(msg).UnixMilli()/300) % 4

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Enter):
			if m.current < 0 {
				return m.Open(), nil
			}
			if !m.done {
				m.done = true
				return m, func() tea.Msg {
					return constants.AdvanceMsg{Next: models.StageLoveMessage}
				}
			}
		case key.Matches(msg, m.keys.Another):
			return m.TryAnother(), nil
		}
	}
	return m, nil
}

func (m Model) View() string {
	title := theme.Title.Render("Your Gift Awaits! 🎁")

	gift, open := m.Revealed()
	if !open {
		sparkles := []string{"✨   ", " ✨  ", "  ✨ ", "   ✨"}
		content := lipgloss.JoinVertical(lipgloss.Center,
			title,
			"",
			sparkles[m.sparkle],
			boxStyle.Render("🎁"),
			sparkles[(m.sparkle+2)%4],
			"",
			theme.Hint.Render("Press enter to reveal your surprise! ✨"),
		)
		return theme.Center(m.width, m.height, content)
	}

	buttons := []string{}
	if !m.swapped {
		buttons = append(buttons, secondaryButton.Render("✨ Try Another Gift (t)"), "  ")
	}
	buttons = append(buttons, theme.Button.Render("💌 Continue to Love Message"))

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		theme.Card.Render(lipgloss.JoinVertical(lipgloss.Center,
			gift.Emoji,
			"",
			giftTitleStyle.Render(gift.Title),
			"",
			descStyle.Render(gift.Description),
		)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	)
	return theme.Center(m.width, m.height, content)
}
