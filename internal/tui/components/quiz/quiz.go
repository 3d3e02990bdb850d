// Package quiz asks the flirty questions and keeps score.
package quiz

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/surprise/internal/constants"
	"github.com/julianstephens/surprise/internal/models"
	"github.com/julianstephens/surprise/internal/tui/components/effects"
	"github.com/julianstephens/surprise/internal/tui/theme"
)

type phase int

const (
	phaseAsking phase = iota
	phaseFeedback
	phaseScore
)

const (
	correctFeedback = "Correct! You know us so well!"
	sweetFeedback   = "Aww, that's sweet too! 💕"
)

type feedbackDoneMsg struct {
	ID       int
	Question int
}

type scoreDoneMsg struct {
	ID int
}

var scoreStyle = lipgloss.NewStyle().
	Foreground(theme.Gold).
	Bold(true).
	Padding(1, 4).
	Border(lipgloss.DoubleBorder()).
	BorderForeground(theme.RoseGold)

type Model struct {
	id        int
	questions []models.QuizQuestion
	index     int
	answers   []int
	score     int
	phase     phase
	choice    *int
	form      *huh.Form
	progress  progress.Model
	confetti  *effects.Confetti
	now       time.Time
	completed bool
	width     int
	height    int
}

func New(questions []models.QuizQuestion, rng *rand.Rand) Model {
	m := Model{
		id:        effects.NextID(),
		questions: questions,
		choice:    new(int),
		progress: progress.New(
			progress.WithGradient(string(theme.Blush), string(theme.RoseGold)),
			progress.WithoutPercentage(),
			progress.WithWidth(40),
		),
		confetti: effects.NewConfetti(rng),
	}
	m.form = m.newForm()
	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.confetti.SetSize(width, height)
}

func (m Model) Score() int { return m.score }

// Index is the zero-based question currently asked.
func (m Model) Index() int { return m.index }

func (m Model) Answers() []int { return m.answers }

func (m Model) newForm() *huh.Form {
	q := m.questions[m.index]
	opts := make([]huh.Option[int], len(q.Options))
	for i, o := range q.Options {
		opts[i] = huh.NewOption(o, i)
	}
	*m.choice = 0
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(q.Question).
				Options(opts...).
				Value(m.choice),
		),
	).WithTheme(huh.ThemeCatppuccin()).WithShowHelp(false)
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case effects.FrameMsg:
		m.now = time.Time(msg)
		m.confetti.Tick(m.now)
		return m, nil

	case feedbackDoneMsg:
		if msg.ID != m.id || msg.Question != m.index || m.phase != phaseFeedback {
			return m, nil
		}
		return m.next()

	case scoreDoneMsg:
		if msg.ID != m.id || m.phase != phaseScore || m.completed {
			return m, nil
		}
		m.completed = true
		score := m.score
		return m, func() tea.Msg {
			return constants.QuizCompleteMsg{Score: score}
		}
	}

	// Answers are locked outside the asking phase.
	if m.phase != phaseAsking {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		var answer tea.Cmd
		m, answer = m.Answer(*m.choice)
		return m, tea.Batch(cmd, answer)
	case huh.StateAborted:
		m.form = m.newForm()
		return m, m.form.Init()
	}
	return m, cmd
}

// Answer locks in option i for the current question and shows feedback.
func (m Model) Answer(i int) (Model, tea.Cmd) {
	if m.phase != phaseAsking {
		return m, nil
	}
	m.answers = append(m.answers, i)
	if m.questions[m.index].IsCorrect(i) {
		m.score++
	}
	m.phase = phaseFeedback

	id, question := m.id, m.index
	return m, tea.Tick(constants.QuizFeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{ID: id, Question: question}
	})
}

func (m Model) next() (Model, tea.Cmd) {
	if m.index < len(m.questions)-1 {
		m.index++
		m.phase = phaseAsking
		m.form = m.newForm()
		return m, m.form.Init()
	}

	m.phase = phaseScore
	start := m.now
	if start.IsZero() {
		start = time.Now()
	}
	m.confetti.Start(start, constants.QuizScoreDelay)

	id := m.id
	return m, tea.Tick(constants.QuizScoreDelay, func(time.Time) tea.Msg {
		return scoreDoneMsg{ID: id}
	})
}

func (m Model) header() string {
	n := len(m.questions)
	return lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Flirty Quiz Time 💘"),
		theme.Hint.Render(fmt.Sprintf("Question %d of %d", m.index+1, n)),
		m.progress.ViewAs(float64(m.index+1)/float64(n)),
		"",
	)
}

func (m Model) View() string {
	var content string

	switch m.phase {
	case phaseAsking:
		content = lipgloss.JoinVertical(lipgloss.Center, m.header(), m.form.View())

	case phaseFeedback:
		q := m.questions[m.index]
		glyph, text := "💕", sweetFeedback
		if q.IsCorrect(m.answers[len(m.answers)-1]) {
			glyph, text = "💖", correctFeedback
		}
		content = lipgloss.JoinVertical(lipgloss.Center,
			m.header(),
			theme.Body.Render(q.Question),
			"",
			glyph,
			theme.Subtitle.Render(text),
		)

	case phaseScore:
		title := "Quiz Complete! 🎉"
		if m.score == len(m.questions) {
			title = "Perfect Score! 🎉"
		}
		content = lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render(title),
			"",
			scoreStyle.Render(fmt.Sprintf("%d/%d", m.score, len(m.questions))),
			"",
			theme.Subtitle.Render("You know our love story by heart! 💕"),
			"🎁✨💖✨🎁",
		)
	}

	view := theme.Center(m.width, m.height, content)
	return effects.Overlay(view, m.width, m.height, m.confetti.Sprites())
}
