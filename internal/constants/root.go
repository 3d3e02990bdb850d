package constants

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/surprise/internal/models"
)

// AdvanceMsg is emitted by a stage view when it is done and names the stage
// that follows it.
type AdvanceMsg struct {
	Next models.Stage
}

// QuizCompleteMsg is emitted by the quiz once the score screen has been shown.
type QuizCompleteMsg struct {
	Score int
}

// ReplayMsg asks the sequencer to start over from the countdown.
type ReplayMsg struct{}

// SitWithMusicMsg asks for the melody to keep playing.
type SitWithMusicMsg struct{}

// ConfirmationMsg is a message to trigger a confirmation dialog
type ConfirmationMsg struct {
	Message string
	Action  func() tea.Cmd
}

const (
	AppName           = "surprise"
	Version           = "v0.1.0"
	DefaultConfigDir  = "~/.config/surprise"
	DefaultConfigFile = "surprise.yaml"
	EnvPrefix         = "SURPRISE"

	DefaultRecipient = "Mansi"
	DefaultSender    = "Hari"
	// DefaultTarget is midnight IST on the big day.
	DefaultTarget   = "2025-08-12T00:00:00+05:30"
	DefaultTimezone = "Asia/Kolkata"
	DefaultVolume   = 0.4

	// TargetDisplayFormat is how the countdown target is shown under the clock
	TargetDisplayFormat = "January 2, 2006 at 15:04"
)

// Stage timings
const (
	CountdownTick        = time.Second
	CountdownAutoAdvance = 2 * time.Second
	QuizFeedbackDelay    = 2 * time.Second
	QuizScoreDelay       = 3 * time.Second
	LetterFirstLine      = 2 * time.Second
	LetterNextLine       = 3 * time.Second
	LetterTypingTime     = 2 * time.Second
	ConfettiDuration     = 8 * time.Second
	HeartSpawnInterval   = 2 * time.Second
	HeartLifetime        = 9 * time.Second

	// FrameInterval drives every animation tick (~30fps).
	FrameInterval = time.Second / 30

	// TransitionPhase is the length of each half of a stage cross-fade.
	TransitionPhase = 800 * time.Millisecond
	// TransitionRows is the vertical travel of a cross-fade, 50px in rows.
	TransitionRows = 3

	VolumeStep = 0.1
)
