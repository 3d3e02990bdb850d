package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/surprise/internal/constants"
	"github.com/julianstephens/surprise/internal/logger"
	"github.com/julianstephens/surprise/internal/models"
	"github.com/julianstephens/surprise/internal/tui/components/effects"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.hearts.SetSize(msg.Width, msg.Height)
		m.sizeStage()
		return m, nil

	case effects.FrameMsg:
		return m, m.frame(time.Time(msg))

	case autoplayMsg:
		m.startMusic()
		return m, nil
	}

	// Handle Confirmation State
	if m.confirm != nil {
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.mouseX, m.mouseY = msg.X, msg.Y
		m.mouseSeen = true
		m.firstInteraction()
		return m, nil

	case tea.KeyMsg:
		m.firstInteraction()
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			m.sizeStage()
			return m, nil
		case key.Matches(msg, m.keys.Music):
			if !m.opts.Mute {
				on := m.music.Toggle()
				logger.Debug("music toggled", "enabled", on)
			}
			return m, nil
		case key.Matches(msg, m.keys.VolumeUp):
			m.music.SetVolume(m.music.Volume() + constants.VolumeStep)
			return m, nil
		case key.Matches(msg, m.keys.VolumeDown):
			m.music.SetVolume(m.music.Volume() - constants.VolumeStep)
			return m, nil
		}
		// Views do not take input while fading.
		if m.trans.active {
			return m, nil
		}

	case constants.AdvanceMsg:
		if err := m.seq.Advance(msg.Next); err != nil {
			logger.Warn("advance rejected", "next", msg.Next, "error", err)
			return m, nil
		}
		m.beginTransition(msg.Next)
		return m, nil

	case constants.QuizCompleteMsg:
		if err := m.seq.RecordScoreAndAdvance(msg.Score, models.StageGiftBox); err != nil {
			logger.Warn("quiz result rejected", "score", msg.Score, "error", err)
			return m, nil
		}
		m.beginTransition(models.StageGiftBox)
		return m, nil

	case constants.ReplayMsg:
		m.seq.Reset()
		logger.Info("replay", "run", m.seq.RunID())
		m.beginTransition(models.StageCountdown)
		return m, nil

	case constants.SitWithMusicMsg:
		m.startMusic()
		return m, nil

	case constants.ConfirmationMsg:
		return m, m.openConfirm(msg)
	}

	cmds = append(cmds, m.updateStage(msg))
	return m, tea.Batch(cmds...)
}

// frame advances every animation and the running transition.
func (m *Model) frame(now time.Time) tea.Cmd {
	m.now = now
	m.hearts.Tick(now)

	cmds := []tea.Cmd{effects.Frame()}

	if m.trans.active {
		if m.trans.start.IsZero() {
			m.trans.start = now
		}
		if m.trans.phaseDone(now) {
			if !m.trans.entering {
				m.enterStage(m.trans.to)
				m.trans.entering = true
				m.trans.start = now
				cmds = append(cmds, m.initStage())
			} else {
				m.trans = transition{}
			}
		}
	}

	cmds = append(cmds, m.updateStage(effects.FrameMsg(now)))
	return tea.Batch(cmds...)
}

func (m *Model) beginTransition(to models.Stage) {
	logger.Debug("stage transition", "from", m.shown, "to", to, "run", m.seq.RunID())
	m.trans = newTransition(to, m.now)
}

// firstInteraction enables the melody on the first key or mouse event,
// the way a browser unlocks audio after a user gesture.
func (m *Model) firstInteraction() {
	if m.interacted {
		return
	}
	m.interacted = true
	m.startMusic()
}

func (m *Model) startMusic() {
	m.interacted = true
	if m.opts.Mute || m.music.Enabled() {
		return
	}
	m.music.SetEnabled(true)
	if m.music.Degraded() {
		logger.Warn("audio unavailable, continuing silently")
	}
}

func (m *Model) openConfirm(msg constants.ConfirmationMsg) tea.Cmd {
	m.confirmed = new(bool)
	m.confirmAction = msg.Action
	m.confirm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(msg.Message).
				Description("Are you sure you want to close this magical experience?").
				Affirmative("Leave").
				Negative("Stay").
				Value(m.confirmed),
		),
	).WithTheme(huh.ThemeCatppuccin()).WithShowHelp(false)
	return m.confirm.Init()
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case msg.Type == tea.KeyEsc:
			m.closeConfirm()
			return m, nil
		}
	}

	form, cmd := m.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirm = f
	}

	switch m.confirm.State {
	case huh.StateCompleted:
		return m.resolveConfirm(*m.confirmed)
	case huh.StateAborted:
		m.closeConfirm()
		return m, nil
	}
	return m, cmd
}

// resolveConfirm closes the dialog and runs its action when accepted.
func (m Model) resolveConfirm(yes bool) (tea.Model, tea.Cmd) {
	action := m.confirmAction
	m.closeConfirm()
	if !yes || action == nil {
		return m, nil
	}
	return m, action()
}

func (m *Model) closeConfirm() {
	m.confirm = nil
	m.confirmed = nil
	m.confirmAction = nil
}
