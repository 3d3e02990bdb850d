package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/surprise/internal/models"
	"github.com/julianstephens/surprise/internal/tui/components/countdown"
	"github.com/julianstephens/surprise/internal/tui/components/final"
	"github.com/julianstephens/surprise/internal/tui/components/giftbox"
	"github.com/julianstephens/surprise/internal/tui/components/intro"
	"github.com/julianstephens/surprise/internal/tui/components/lovemessage"
	"github.com/julianstephens/surprise/internal/tui/components/quiz"
)

// The switches below are exhaustive over models.Stages(). A stage without a
// case is a programming error.

// enterStage builds a fresh view for stage. Timers of the previous instance
// carry its id and are dropped by the new one.
func (m *Model) enterStage(stage models.Stage) {
	m.shown = stage
	switch stage {
	case models.StageCountdown:
		m.countdown = countdown.New(m.opts.Target, m.opts.Recipient, m.opts.Now)
	case models.StageIntro:
		m.intro = intro.New(m.opts.Recipient, m.opts.Sender)
	case models.StageQuiz:
		m.quiz = quiz.New(m.content.Quiz, m.rng)
	case models.StageGiftBox:
		m.giftbox = giftbox.New(m.content.Gifts, m.rng)
	case models.StageLoveMessage:
		m.letter = lovemessage.New(m.content.Letter, m.content.Closing, m.rng)
	case models.StageFinal:
		m.final = final.New(m.seq.Score(), len(m.content.Quiz), final.Copy{
			Recipient: m.opts.Recipient,
			Sender:    m.opts.Sender,
			Farewell:  m.content.Farewell,
			Keepsake:  m.content.Keepsake,
		}, m.rng)
	default:
		panic(fmt.Sprintf("tui: unhandled stage %v", stage))
	}
	m.sizeStage()
}

func (m Model) initStage() tea.Cmd {
	switch m.shown {
	case models.StageCountdown:
		return m.countdown.Init()
	case models.StageIntro:
		return m.intro.Init()
	case models.StageQuiz:
		return m.quiz.Init()
	case models.StageGiftBox:
		return m.giftbox.Init()
	case models.StageLoveMessage:
		return m.letter.Init()
	case models.StageFinal:
		return m.final.Init()
	default:
		panic(fmt.Sprintf("tui: unhandled stage %v", m.shown))
	}
}

func (m *Model) updateStage(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.shown {
	case models.StageCountdown:
		m.countdown, cmd = m.countdown.Update(msg)
	case models.StageIntro:
		m.intro, cmd = m.intro.Update(msg)
	case models.StageQuiz:
		m.quiz, cmd = m.quiz.Update(msg)
	case models.StageGiftBox:
		m.giftbox, cmd = m.giftbox.Update(msg)
	case models.StageLoveMessage:
		m.letter, cmd = m.letter.Update(msg)
	case models.StageFinal:
		m.final, cmd = m.final.Update(msg)
	default:
		panic(fmt.Sprintf("tui: unhandled stage %v", m.shown))
	}
	return cmd
}

func (m Model) viewStage() string {
	switch m.shown {
	case models.StageCountdown:
		return m.countdown.View()
	case models.StageIntro:
		return m.intro.View()
	case models.StageQuiz:
		return m.quiz.View()
	case models.StageGiftBox:
		return m.giftbox.View()
	case models.StageLoveMessage:
		return m.letter.View()
	case models.StageFinal:
		return m.final.View()
	default:
		panic(fmt.Sprintf("tui: unhandled stage %v", m.shown))
	}
}

func (m *Model) sizeStage() {
	w, h := m.width, m.bodyHeight()
	switch m.shown {
	case models.StageCountdown:
		m.countdown.SetSize(w, h)
	case models.StageIntro:
		m.intro.SetSize(w, h)
	case models.StageQuiz:
		m.quiz.SetSize(w, h)
	case models.StageGiftBox:
		m.giftbox.SetSize(w, h)
	case models.StageLoveMessage:
		m.letter.SetSize(w, h)
	case models.StageFinal:
		m.final.SetSize(w, h)
	default:
		panic(fmt.Sprintf("tui: unhandled stage %v", m.shown))
	}
}
