package tui

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/surprise/internal/content"
	"github.com/julianstephens/surprise/internal/models"
	"github.com/julianstephens/surprise/internal/sequencer"
	"github.com/julianstephens/surprise/internal/tui/components/countdown"
	"github.com/julianstephens/surprise/internal/tui/components/effects"
	"github.com/julianstephens/surprise/internal/tui/components/final"
	"github.com/julianstephens/surprise/internal/tui/components/giftbox"
	"github.com/julianstephens/surprise/internal/tui/components/intro"
	"github.com/julianstephens/surprise/internal/tui/components/lovemessage"
	"github.com/julianstephens/surprise/internal/tui/components/quiz"
	"github.com/julianstephens/surprise/internal/tui/keys"
)

// Music is the melody control the model drives. *audio.Player implements it.
type Music interface {
	SetEnabled(on bool)
	Toggle() bool
	SetVolume(v float64)
	Volume() float64
	Enabled() bool
	Degraded() bool
}

type Options struct {
	Recipient string
	Sender    string
	Target    time.Time
	// Autoplay starts the melody without waiting for the first key press.
	Autoplay bool
	// Mute keeps the melody off for the whole run.
	Mute bool
	// Now and Rand default to the wall clock and a random seed.
	Now  func() time.Time
	Rand *rand.Rand
}

// autoplayMsg turns the melody on at startup.
type autoplayMsg struct{}

type Model struct {
	seq     *sequencer.Sequencer
	music   Music
	content *content.Content
	opts    Options
	rng     *rand.Rand

	keys     keys.KeyMap
	help     help.Model
	showHelp bool

	shown models.Stage
	trans transition

	countdown countdown.Model
	intro     intro.Model
	quiz      quiz.Model
	giftbox   giftbox.Model
	letter    lovemessage.Model
	final     final.Model

	hearts     *effects.Hearts
	mouseX     int
	mouseY     int
	mouseSeen  bool
	interacted bool

	confirm       *huh.Form
	confirmed     *bool
	confirmAction func() tea.Cmd

	now      time.Time
	width    int
	height   int
	quitting bool
}

// NewModel builds the greeting around a sequencer, which it resets, and a
// personalized content set.
func NewModel(seq *sequencer.Sequencer, music Music, c *content.Content, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	seq.Reset()
	m := Model{
		seq:     seq,
		music:   music,
		content: c,
		opts:    opts,
		rng:     rng,
		keys:    keys.Default(),
		help:    help.New(),
		shown:   seq.Current(),
		hearts:  effects.NewHearts(rng),
	}
	m.enterStage(m.shown)
	return m
}

// Stage is the stage whose view is on screen. It trails the sequencer
// while a transition is fading out the previous view.
func (m Model) Stage() models.Stage { return m.shown }

func (m Model) Sequencer() *sequencer.Sequencer { return m.seq }

func (m Model) Transitioning() bool { return m.trans.active }

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{effects.Frame(), m.initStage()}
	if m.opts.Autoplay && !m.opts.Mute {
		cmds = append(cmds, func() tea.Msg { return autoplayMsg{} })
	}
	return tea.Batch(cmds...)
}

func (m Model) ShortHelp() []key.Binding {
	bindings := []key.Binding{m.keys.Music, m.keys.Help, m.keys.Quit}
	switch m.shown {
	case models.StageGiftBox:
		bindings = append([]key.Binding{m.keys.Enter, m.keys.Another}, bindings...)
	case models.StageFinal:
		bindings = append([]key.Binding{m.keys.Replay, m.keys.Stay, m.keys.Exit}, bindings...)
	default:
		bindings = append([]key.Binding{m.keys.Enter}, bindings...)
	}
	return bindings
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Music, m.keys.VolumeUp, m.keys.VolumeDown, m.keys.Help, m.keys.Quit}

	var actions []key.Binding
	switch m.shown {
	case models.StageGiftBox:
		actions = []key.Binding{m.keys.Enter, m.keys.Another}
	case models.StageFinal:
		actions = []key.Binding{m.keys.Replay, m.keys.Stay, m.keys.Exit}
	default:
		actions = []key.Binding{m.keys.Enter}
	}

	return [][]key.Binding{actions, global}
}
