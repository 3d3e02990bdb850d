package tui

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/julianstephens/surprise/internal/constants"
	"github.com/julianstephens/surprise/internal/content"
	"github.com/julianstephens/surprise/internal/models"
	"github.com/julianstephens/surprise/internal/sequencer"
	"github.com/julianstephens/surprise/internal/tui/components/effects"
)

type fakeMusic struct {
	enabled  bool
	degraded bool
	volume   float64
	toggles  int
}

func (f *fakeMusic) SetEnabled(on bool) { f.enabled = on }
func (f *fakeMusic) Toggle() bool {
	f.toggles++
	f.enabled = !f.enabled
	return f.enabled
}
func (f *fakeMusic) SetVolume(v float64) { f.volume = max(0, min(v, 1)) }
func (f *fakeMusic) Volume() float64     { return f.volume }
func (f *fakeMusic) Enabled() bool       { return f.enabled }
func (f *fakeMusic) Degraded() bool      { return f.degraded }

var epoch = time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, opts Options) (Model, *fakeMusic) {
	t.Helper()
	c, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	if opts.Recipient == "" {
		opts.Recipient, opts.Sender = "Mansi", "Hari"
	}
	if opts.Target.IsZero() {
		opts.Target = epoch.Add(-time.Hour)
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return epoch }
	}
	opts.Rand = rand.New(rand.NewPCG(3, 4))

	music := &fakeMusic{volume: constants.DefaultVolume}
	m := NewModel(sequencer.New(), music, c.Personalize(opts.Recipient, opts.Sender), opts)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, music
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// settle plays frames until the running transition has finished.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	at := m.now
	if at.IsZero() {
		at = epoch
	}
	for i := 0; m.Transitioning(); i++ {
		if i > 200 {
			t.Fatal("transition never finished")
		}
		at = at.Add(100 * time.Millisecond)
		m = send(t, m, effects.FrameMsg(at))
	}
	return m
}

func advance(t *testing.T, m Model, next models.Stage) Model {
	t.Helper()
	return settle(t, send(t, m, constants.AdvanceMsg{Next: next}))
}

func TestStartsAtCountdown(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	if m.Stage() != models.StageCountdown {
		t.Errorf("Stage() = %v, want countdown", m.Stage())
	}
	if m.Sequencer().Score() != 0 {
		t.Errorf("Score() = %d, want 0", m.Sequencer().Score())
	}
	if !strings.Contains(m.View(), "It's Time! 🎉") {
		t.Error("past target should show the completed countdown")
	}
}

func TestTransitionPhases(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = send(t, m, effects.FrameMsg(epoch))

	m = send(t, m, constants.AdvanceMsg{Next: models.StageIntro})
	if m.Sequencer().Current() != models.StageIntro {
		t.Fatal("sequencer should move immediately")
	}
	if m.Stage() != models.StageCountdown || !m.Transitioning() {
		t.Fatal("old view should stay on screen while fading out")
	}

	m = send(t, m, effects.FrameMsg(epoch.Add(constants.TransitionPhase/2)))
	if m.Stage() != models.StageCountdown {
		t.Error("swapped views before the exit phase ended")
	}

	m = send(t, m, effects.FrameMsg(epoch.Add(constants.TransitionPhase)))
	if m.Stage() != models.StageIntro {
		t.Error("new view should appear after the exit phase")
	}
	if !m.Transitioning() {
		t.Error("enter phase should still be running")
	}

	m = send(t, m, effects.FrameMsg(epoch.Add(2*constants.TransitionPhase)))
	if m.Transitioning() {
		t.Error("transition should be over after both phases")
	}
	if !strings.Contains(m.viewStage(), "Begin Your Surprise") {
		t.Error("intro should be on screen")
	}
}

func TestKeysIgnoredWhileFading(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = send(t, m, constants.AdvanceMsg{Next: models.StageIntro})
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("enter during a fade leaked into a view")
	}
	m = settle(t, m)
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Error("enter should reach the view once the fade is over")
	}
}

// The full run with four of five answers right ends on a 4/5 score line.
func TestFullRunScoreFour(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m = advance(t, m, models.StageIntro)
	m = advance(t, m, models.StageQuiz)

	m = settle(t, send(t, m, constants.QuizCompleteMsg{Score: 4}))
	if m.Stage() != models.StageGiftBox {
		t.Fatalf("Stage() = %v, want giftbox", m.Stage())
	}
	if got := m.Sequencer().State(); got != (models.Session{CurrentStage: models.StageGiftBox, QuizScore: 4}) {
		t.Errorf("session = %+v", got)
	}

	m = advance(t, m, models.StageLoveMessage)
	m = advance(t, m, models.StageFinal)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})

	view := ansi.Strip(m.viewStage())
	if !strings.Contains(view, "Quiz Score: 4/5") {
		t.Errorf("final view should show 4/5:\n%s", view)
	}
	if strings.Contains(view, "Perfect! 🌟") {
		t.Error("4/5 must not be called perfect")
	}
}

func TestPerfectRun(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = advance(t, m, models.StageIntro)
	m = advance(t, m, models.StageQuiz)
	m = settle(t, send(t, m, constants.QuizCompleteMsg{Score: 5}))
	m = advance(t, m, models.StageLoveMessage)
	m = advance(t, m, models.StageFinal)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if !strings.Contains(ansi.Strip(m.viewStage()), "Quiz Score: 5/5 - Perfect! 🌟") {
		t.Error("5/5 should be perfect")
	}
}

func TestReplayResets(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m = advance(t, m, models.StageIntro)
	m = advance(t, m, models.StageQuiz)
	m = settle(t, send(t, m, constants.QuizCompleteMsg{Score: 3}))
	run := m.Sequencer().RunID()

	m = settle(t, send(t, m, constants.ReplayMsg{}))
	if m.Stage() != models.StageCountdown {
		t.Errorf("Stage() = %v, want countdown", m.Stage())
	}
	if m.Sequencer().Score() != 0 {
		t.Errorf("Score() = %d, want 0 after replay", m.Sequencer().Score())
	}
	if m.Sequencer().RunID() == run {
		t.Error("replay should start a new run")
	}
}

func TestStrictRejectsSkips(t *testing.T) {
	c, err := content.Default()
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(sequencer.New(sequencer.WithStrictTransitions()), &fakeMusic{}, c, Options{
		Recipient: "Mansi",
		Target:    epoch,
		Now:       func() time.Time { return epoch },
	})
	m = send(t, m, constants.AdvanceMsg{Next: models.StageFinal})
	if m.Transitioning() || m.Sequencer().Current() != models.StageCountdown {
		t.Error("an illegal jump must be ignored in strict mode")
	}
}

func TestFirstInteractionStartsMusic(t *testing.T) {
	m, music := newTestModel(t, Options{})
	if music.enabled {
		t.Fatal("music must wait for a gesture")
	}
	m = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})
	if !music.enabled {
		t.Error("first mouse event should start the music")
	}
	if !strings.Contains(m.View(), "💖") {
		t.Error("mouse heart should be drawn")
	}
	if !strings.Contains(m.View(), "🔊 40%") {
		t.Error("header should show the playing indicator")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	if music.enabled {
		t.Error("m should toggle the music off")
	}
	send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if music.enabled {
		t.Error("later keys must not re-enable the music")
	}
}

func TestMuteNeverStarts(t *testing.T) {
	m, music := newTestModel(t, Options{Mute: true, Autoplay: true})
	m = send(t, m, autoplayMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	if music.enabled || music.toggles != 0 {
		t.Error("muted runs never play")
	}
	if !strings.Contains(m.View(), "🔇 muted") {
		t.Error("header should show muted")
	}
}

func TestAutoplay(t *testing.T) {
	m, music := newTestModel(t, Options{Autoplay: true})
	if m.Init() == nil {
		t.Fatal("Init should return commands")
	}
	send(t, m, autoplayMsg{})
	if !music.enabled {
		t.Error("autoplay should start the music")
	}
}

func TestVolumeKeys(t *testing.T) {
	m, music := newTestModel(t, Options{})
	plus := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")}
	minus := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")}

	m = send(t, m, plus)
	if music.volume < 0.49 || music.volume > 0.51 {
		t.Errorf("volume = %v, want 0.5", music.volume)
	}
	for range 10 {
		m = send(t, m, minus)
	}
	if music.volume != 0 {
		t.Errorf("volume = %v, want clamped to 0", music.volume)
	}
}

func TestDegradedIndicator(t *testing.T) {
	m, music := newTestModel(t, Options{})
	music.degraded = true
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "no audio device") {
		t.Error("header should report the missing device")
	}
}

func TestExitConfirmation(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	quitAction := func() tea.Cmd { return tea.Quit }

	m = send(t, m, constants.ConfirmationMsg{Message: "leaving?", Action: quitAction})
	if m.confirm == nil {
		t.Fatal("confirmation dialog should open")
	}
	if !strings.Contains(m.View(), "leaving?") {
		t.Error("dialog should show its message")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.confirm != nil {
		t.Error("esc should close the dialog")
	}

	m = send(t, m, constants.ConfirmationMsg{Message: "leaving?", Action: quitAction})
	next, cmd := m.resolveConfirm(false)
	if cmd != nil || next.(Model).confirm != nil {
		t.Error("declining should just close the dialog")
	}

	_, cmd = m.resolveConfirm(true)
	if cmd == nil {
		t.Fatal("accepting should run the action")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("got %T, want tea.QuitMsg", cmd())
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model renders nothing")
	}
}

func TestEveryStageRenders(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	for _, stage := range models.Stages() {
		m.enterStage(stage)
		if m.Stage() != stage {
			t.Errorf("enterStage(%v) left %v on screen", stage, m.Stage())
		}
		if strings.TrimSpace(ansi.Strip(m.viewStage())) == "" {
			t.Errorf("stage %v rendered nothing", stage)
		}
		_ = m.initStage()
	}
}

func TestUnknownStagePanics(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	defer func() {
		if recover() == nil {
			t.Error("an unknown stage must panic")
		}
	}()
	m.enterStage(models.Stage(99))
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	short := m.bodyHeight()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !m.showHelp {
		t.Fatal("? should show full help")
	}
	if m.bodyHeight() >= short {
		t.Errorf("full help should take more rows: %d vs %d", m.bodyHeight(), short)
	}
}
