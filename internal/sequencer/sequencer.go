// Package sequencer owns which stage of the greeting is showing and the quiz
// score carried to the finale.
package sequencer

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/surprise/internal/logger"
	"github.com/julianstephens/surprise/internal/models"
)

var (
	ErrUnknownStage      = errors.New("unknown stage")
	ErrIllegalTransition = errors.New("illegal stage transition")
	ErrNegativeScore     = errors.New("quiz score must not be negative")
)

// Sequencer is the single writer of the session state. It is not safe for
// concurrent use; the TUI event loop is its only caller.
type Sequencer struct {
	session models.Session
	strict  bool
	runID   string
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithStrictTransitions rejects any request that is not the current stage's
// successor. By default every advance is trusted.
func WithStrictTransitions() Option {
	return func(s *Sequencer) { s.strict = true }
}

// New returns a sequencer at the countdown with a zero score.
func New(opts ...Option) *Sequencer {
	s := &Sequencer{}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// State returns a snapshot of the session.
func (s *Sequencer) State() models.Session {
	return s.session
}

func (s *Sequencer) Current() models.Stage {
	return s.session.CurrentStage
}

func (s *Sequencer) Score() int {
	return s.session.QuizScore
}

// RunID identifies the current play-through in logs.
func (s *Sequencer) RunID() string {
	return s.runID
}

func (s *Sequencer) Strict() bool {
	return s.strict
}

// Advance moves to next.
func (s *Sequencer) Advance(next models.Stage) error {
	if err := s.check(next); err != nil {
		return err
	}
	logger.Debug("Stage transition", "run", s.runID, "from", s.session.CurrentStage, "to", next)
	s.session.CurrentStage = next
	return nil
}

// RecordScoreAndAdvance stores the quiz score and then advances to next.
// Nothing changes when the request is rejected.
func (s *Sequencer) RecordScoreAndAdvance(score int, next models.Stage) error {
	if score < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeScore, score)
	}
	if err := s.check(next); err != nil {
		return err
	}
	if s.strict && next != models.StageGiftBox {
		return fmt.Errorf("%w: score recorded on %s -> %s", ErrIllegalTransition, s.session.CurrentStage, next)
	}
	s.session.QuizScore = score
	logger.Debug("Quiz score recorded", "run", s.runID, "score", score)
	return s.Advance(next)
}

// Reset starts a fresh play-through from the countdown.
func (s *Sequencer) Reset() {
	s.session = models.Session{CurrentStage: models.StageCountdown}
	s.runID = uuid.New().String()
	logger.Debug("Session reset", "run", s.runID)
}

func (s *Sequencer) check(next models.Stage) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownStage, int(next))
	}
	if !s.strict {
		return nil
	}
	want, ok := s.session.CurrentStage.Successor()
	if !ok || want != next {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s.session.CurrentStage, next)
	}
	return nil
}
