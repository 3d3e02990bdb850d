// Package intro greets the recipient and opens the surprise.
package intro

import (
	"math"
	"strings"
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

var tributes = []string{"🌹", "💖", "✨"}

var nameStyle = lipgloss.NewStyle().
	Foreground(theme.Gold).
	Bold(true)

type Model struct {
	keys      keys.KeyMap
	recipient string
	sender    string
	started   time.Time
	now       time.Time
	done      bool
	width     int
	height    int
}

func New(recipient, sender string) Model {
	return Model{
		keys:      keys.Default(),
		recipient: recipient,
		sender:    sender,
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case effects.FrameMsg:
		m.now = time.Time(msg)
		if m.started.IsZero() {
			m.started = m.now
		}
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Enter) && !m.done {
			m.done = true
			return m, func() tea.Msg {
				return constants.AdvanceMsg{Next: models.StageQuiz}
			}
		}
	}
	return m, nil
}

// bob returns how many rows tribute i floats above its baseline.
func (m Model) bob(i int) int {
	t := m.now.Sub(m.started).Seconds()
	return int(math.Round((math.Sin(t*2+float64(i)*2*math.Pi/3) + 1) / 2))
}

func (m Model) View() string {
	floats := make([]string, len(tributes))
	for i, glyph := range tributes {
		lift := m.bob(i)
		floats[i] = strings.Repeat("\n", 1-lift) + glyph + strings.Repeat("\n", lift)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		floats[0], "    ", floats[1], "    ", floats[2],
	)

	content := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Happy Birthday"),
		nameStyle.Render(m.recipient+" 🎉"),
		"",
		theme.Subtitle.Render("From "+m.sender+" with all my love 💕"),
		"",
		row,
		"",
		theme.Button.Render("💝 Begin Your Surprise"),
	)
	return theme.Center(m.width, m.height, content)
}
