// Package lovemessage types out the letter one line at a time.
package lovemessage

import (
	"math/rand/v2"
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

var (
	letterStyle = lipgloss.NewStyle().
			Foreground(theme.DeepPurple).
			Background(lipgloss.Color("#FFF5F8")).
			Padding(1, 4).
			Width(60)

	cursorStyle = lipgloss.NewStyle().Foreground(theme.RoseGold)

	closingStyle = lipgloss.NewStyle().
			Foreground(theme.RoseGold).
			Italic(true).
			Bold(true)
)

// BurstHearts is how many hearts scatter over the letter once it is finished.
const BurstHearts = 20

// stepMsg reveals the next line.
type stepMsg struct {
	ID   int
	Step int
}

type Model struct {
	id      int
	keys    keys.KeyMap
	lines   []string
	closing string
	step    int
	typing  time.Time
	now     time.Time
	done    bool
	burst   *effects.HeartBurst
	width   int
	height  int
}

func New(lines []string, closing string, rng *rand.Rand) Model {
	return Model{
		id:      effects.NextID(),
		keys:    keys.Default(),
		lines:   lines,
		closing: closing,
		burst:   effects.NewHeartBurst(rng),
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Step is the index of the line being typed. It equals the number of lines
// once the letter is finished.
func (m Model) Step() int { return m.step }

// Finished reports whether every line is on screen.
func (m Model) Finished() bool { return m.step >= len(m.lines) }

// delay is how long line step stays alone before the next one starts.
func delay(step int) time.Duration {
	if step == 0 {
		return constants.LetterFirstLine
	}
	return constants.LetterNextLine
}

func (m Model) schedule() tea.Cmd {
	id, step := m.id, m.step
	return tea.Tick(delay(step), func(time.Time) tea.Msg {
		return stepMsg{ID: id, Step: step}
	})
}

func (m Model) Init() tea.Cmd {
	if m.Finished() {
		return nil
	}
	return m.schedule()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case effects.FrameMsg:
		m.now = time.Time(msg)
		if m.typing.IsZero() {
			m.typing = m.now
		}

	case stepMsg:
		if msg.ID != m.id || msg.Step != m.step || m.Finished() {
			return m, nil
		}
		m.step++
		m.typing = m.now
		if m.Finished() {
			m.burst.Start(m.now, BurstHearts)
			return m, nil
		}
		return m, m.schedule()

	case tea.KeyMsg:
		if m.Finished() && !m.done && key.Matches(msg, m.keys.Enter) {
			m.done = true
			return m, func() tea.Msg {
				return constants.AdvanceMsg{Next: models.StageFinal}
			}
		}
	}
	return m, nil
}

// typed returns the visible prefix of the line being typed.
func (m Model) typed(line string) string {
	if m.now.IsZero() || m.typing.IsZero() {
		return line
	}
	frac := float64(m.now.Sub(m.typing)) / float64(constants.LetterTypingTime)
	runes := []rune(line)
	n := int(frac * float64(len(runes)))
	if n >= len(runes) {
		return line
	}
	return string(runes[:max(n, 0)]) + cursorStyle.Render("▌")
}

func (m Model) View() string {
	var b strings.Builder
	for i, line := range m.lines {
		if i > m.step {
			break
		}
		if i == m.step {
			line = m.typed(line)
		}
		b.WriteString(line)
		if i < len(m.lines)-1 {
			b.WriteString("\n")
		}
	}

	parts := []string{
		theme.Title.Render("💌 A Letter For You"),
		"",
		letterStyle.Render(b.String()),
	}
	if m.Finished() {
		parts = append(parts,
			"",
			closingStyle.Render(m.closing),
			"",
			theme.Button.Render("🎇 One More Surprise!"),
		)
	}
	view := theme.Center(m.width, m.height, lipgloss.JoinVertical(lipgloss.Center, parts...))
	return effects.Overlay(view, m.width, m.height, m.burst.Sprites(m.now, m.width, m.height))
}

// Hearts is the number of hearts in the closing burst.
func (m Model) Hearts() int { return m.burst.Len() }
