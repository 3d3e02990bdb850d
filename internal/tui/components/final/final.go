// Package final is the closing screen: thanks, score and what to do next.
package final

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/surprise/internal/constants"
	"github.com/julianstephens/surprise/internal/tui/components/effects"
	"github.com/julianstephens/surprise/internal/tui/keys"
	"github.com/julianstephens/surprise/internal/tui/theme"
)

// ExitPrompt is asked before leaving.
const ExitPrompt = "You are leaving this website, not my love! 💕"

var (
	scoreStyle = lipgloss.NewStyle().
			Foreground(theme.Gold).
			Bold(true)

	signatureStyle = lipgloss.NewStyle().
			Foreground(theme.RoseGold).
			Italic(true)
)

type Model struct {
	keys      keys.KeyMap
	score     int
	total     int
	recipient string
	sender    string
	farewell  string
	keepsake  string
	confetti  *effects.Confetti
	fireworks *effects.Fireworks
	started   bool
	calm      bool
	now       time.Time
	width     int
	height    int
}

// Copy is the text of the closing screen.
type Copy struct {
	Recipient string
	Sender    string
	Farewell  string
	Keepsake  string
}

func New(score, total int, c Copy, rng *rand.Rand) Model {
	return Model{
		keys:      keys.Default(),
		score:     score,
		total:     total,
		recipient: c.Recipient,
		sender:    c.Sender,
		farewell:  c.Farewell,
		keepsake:  c.Keepsake,
		confetti:  effects.NewConfetti(rng),
		fireworks: effects.NewFireworks(rng),
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.confetti.SetSize(width, height)
	m.fireworks.SetSize(width, height)
}

// ScoreLine is "Quiz Score: s/n", with a flourish for a perfect run.
func ScoreLine(score, total int) string {
	line := fmt.Sprintf("Quiz Score: %d/%d", score, total)
	if score == total {
		line += " - Perfect! 🌟"
	}
	return line
}

// Calm reports whether the celebration has been quieted.
func (m Model) Calm() bool { return m.calm }

// Celebrating reports whether confetti is still being thrown.
func (m Model) Celebrating() bool {
	return !m.calm && (!m.started || m.confetti.Active(m.now))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case effects.FrameMsg:
		m.now = time.Time(msg)
		if !m.started && !m.calm {
			m.started = true
			m.confetti.Start(m.now, constants.ConfettiDuration)
		}
		m.confetti.Tick(m.now)
		m.fireworks.Tick(m.now)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Replay):
			return m, func() tea.Msg { return constants.ReplayMsg{} }
		case key.Matches(msg, m.keys.Stay):
			m = m.SitWithMusic()
			return m, func() tea.Msg { return constants.SitWithMusicMsg{} }
		case key.Matches(msg, m.keys.Exit):
			return m, func() tea.Msg {
				return constants.ConfirmationMsg{
					Message: ExitPrompt,
					Action:  func() tea.Cmd { return tea.Quit },
				}
			}
		}
	}
	return m, nil
}

// SitWithMusic quiets the screen so only the melody remains.
func (m Model) SitWithMusic() Model {
	m.calm = true
	m.started = true
	m.confetti.Stop()
	m.fireworks.SetEnabled(false)
	return m
}

func (m Model) View() string {
	actions := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Button.Render("💕 Repeat My Love Again (r)"),
		"  ",
		theme.Button.Background(theme.DeepPurple).Render("🚪 Exit (x)"),
	)

	stay := theme.Hint.Render("🎵 Just sit with the music... (s)")
	if m.calm {
		stay = theme.Subtitle.Render("🎵 ...")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		"🎆",
		theme.Title.Render("Thank You! 🎉"),
		"",
		theme.Body.Render("Thanks for sharing this moment with me, "+m.recipient),
		theme.Subtitle.Render(m.farewell),
		signatureStyle.Render("– "+m.sender),
		"",
		actions,
		"",
		stay,
		"",
		theme.Card.Render(m.keepsake),
		"",
		scoreStyle.Render(ScoreLine(m.score, m.total)),
	)

	view := theme.Center(m.width, m.height, content)
	sprites := append(m.fireworks.Sprites(), m.confetti.Sprites()...)
	return effects.Overlay(view, m.width, m.height, sprites)
}
