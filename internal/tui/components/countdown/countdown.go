// Package countdown renders the clock that runs until the big day.
package countdown

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/surprise/internal/constants"
	"github.com/julianstephens/surprise/internal/models"
	"github.com/julianstephens/surprise/internal/tui/components/effects"
	"github.com/julianstephens/surprise/internal/tui/keys"
	"github.com/julianstephens/surprise/internal/tui/theme"
	"github.com/julianstephens/surprise/internal/utils"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.RoseGold).
			Foreground(theme.Gold).
			Bold(true).
			Width(8).
			Align(lipgloss.Center)

	labelStyle = lipgloss.NewStyle().
			Foreground(theme.Lavender).
			Width(10).
			Align(lipgloss.Center)
)

// TickMsg recomputes the time left.
type TickMsg struct {
	ID   int
	Time time.Time
}

// autoAdvanceMsg fires once, a short while after the clock hits zero.
type autoAdvanceMsg struct {
	ID int
}

type Model struct {
	id        int
	keys      keys.KeyMap
	recipient string
	target    time.Time
	now       func() time.Time
	left      utils.Remaining
	complete  bool
	advanced  bool
	width     int
	height    int
}

// New builds a countdown to target. now defaults to time.Now.
func New(target time.Time, recipient string, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	m := Model{
		id:        effects.NextID(),
		keys:      keys.Default(),
		recipient: recipient,
		target:    target,
		now:       now,
	}
	m.refresh(now())
	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) ID() int { return m.id }

func (m Model) Remaining() utils.Remaining { return m.left }

func (m Model) Complete() bool { return m.complete }

func (m Model) tick() tea.Cmd {
	id := m.id
	return tea.Tick(constants.CountdownTick, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

func (m Model) autoAdvance() tea.Cmd {
	id := m.id
	return tea.Tick(constants.CountdownAutoAdvance, func(time.Time) tea.Msg {
		return autoAdvanceMsg{ID: id}
	})
}

func (m Model) Init() tea.Cmd {
	if m.complete {
		return m.autoAdvance()
	}
	return m.tick()
}

func (m *Model) refresh(now time.Time) {
	m.left = utils.Until(now, m.target)
	if !now.Before(m.target) {
		m.complete = true
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.ID != m.id || m.complete {
			return m, nil
		}
		m.refresh(m.now())
		if m.complete {
			return m, m.autoAdvance()
		}
		return m, m.tick()

	case autoAdvanceMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.advance()

	case tea.KeyMsg:
		if m.complete && key.Matches(msg, m.keys.Enter) {
			return m.advance()
		}
	}
	return m, nil
}

// advance emits the move to the intro at most once per instance.
func (m Model) advance() (Model, tea.Cmd) {
	if m.advanced {
		return m, nil
	}
	m.advanced = true
	return m, func() tea.Msg {
		return constants.AdvanceMsg{Next: models.StageIntro}
	}
}

func (m Model) View() string {
	title := "Counting Down..."
	subtitle := fmt.Sprintf("Until %s's Special Day ✨", m.recipient)
	if m.complete {
		title = "It's Time! 🎉"
		subtitle = fmt.Sprintf("%s's Special Day Has Arrived! ✨", m.recipient)
	}

	units := []struct {
		value int
		label string
	}{
		{m.left.Days, "Days"},
		{m.left.Hours, "Hours"},
		{m.left.Minutes, "Minutes"},
		{m.left.Seconds, "Seconds"},
	}
	boxes := make([]string, 0, len(units))
	for _, u := range units {
		boxes = append(boxes, lipgloss.JoinVertical(lipgloss.Center,
			boxStyle.Render(fmt.Sprintf("%02d", u.value)),
			labelStyle.Render(u.label),
		))
	}

	parts := []string{
		theme.Title.Render(title),
		theme.Subtitle.Render(subtitle),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, boxes...),
		"",
		theme.Hint.Render(m.target.Format(constants.TargetDisplayFormat) + " 🌙"),
	}
	if m.complete {
		parts = append(parts, "", theme.Button.Render("🎉 It's Time! Start the Magic"))
	}

	return theme.Center(m.width, m.height, lipgloss.JoinVertical(lipgloss.Center, parts...))
}
