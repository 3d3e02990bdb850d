package audio

import (
	"fmt"
	"sync"

	"github.com/julianstephens/surprise/internal/logger"
	"github.com/julianstephens/surprise/internal/synth"
)

// State is the playback state of a Player.
type State int

const (
	StateIdle State = iota
	StatePlaying
)

func (s State) String() string {
	if s == StatePlaying {
		return "playing"
	}
	return "idle"
}

// DefaultLeadIn delays the first note of each pass past whatever the device
// has already buffered.
const DefaultLeadIn = 0.1

// Player loops a melody on a lazily opened Backend while enabled.
//
// The backend is opened on the first enable only. If that fails the player is
// degraded: it stays silent and keeps accepting every call as a no-op. Each
// pass arms a single timer for the next one; the timer re-checks the enable
// flag and a generation counter, so a disable always wins over a pending pass.
type Player struct {
	mu sync.Mutex

	open     Opener
	clock    Clock
	melody   synth.Melody
	envelope synth.Envelope
	gap      float64
	pause    float64
	leadIn   float64

	backend  Backend
	degraded bool
	enabled  bool
	closed   bool
	volume   float64
	voices   []liveVoice
	timer    Timer
	gen      uint64
	passes   int
}

// liveVoice is a started tone and the backend time at which it ends.
type liveVoice struct {
	Voice
	end float64
}

// Option configures a Player.
type Option func(*Player)

func WithClock(c Clock) Option {
	return func(p *Player) { p.clock = c }
}

func WithMelody(m synth.Melody) Option {
	return func(p *Player) { p.melody = m }
}

func WithVolume(v float64) Option {
	return func(p *Player) { p.volume = clamp01(v) }
}

// WithTimeline overrides the inter-note gap, the pause between passes and the
// lead-in, all in seconds.
func WithTimeline(gap, pause, leadIn float64) Option {
	return func(p *Player) {
		p.gap = gap
		p.pause = pause
		p.leadIn = leadIn
	}
}

// NewPlayer returns an idle player. Nothing is opened until the first enable.
func NewPlayer(open Opener, opts ...Option) *Player {
	p := &Player{
		open:     open,
		clock:    RealClock{},
		melody:   synth.HappyBirthday(),
		envelope: synth.DefaultEnvelope(),
		gap:      synth.DefaultGap,
		pause:    synth.DefaultPause,
		leadIn:   DefaultLeadIn,
		volume:   1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetEnabled starts or stops the melody loop. Re-enabling always restarts
// from the first note.
func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || on == p.enabled {
		return
	}
	p.enabled = on

	if !on {
		p.stopLocked()
		logger.Debug("Melody stopped", "passes", p.passes)
		return
	}
	if !p.ensureBackendLocked() {
		return
	}
	p.playPassLocked()
}

// Toggle flips the enable flag and returns the new value.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	on := !p.enabled
	p.mu.Unlock()
	p.SetEnabled(on)
	return on
}

// SetVolume sets the master volume, clamped to [0, 1]. It applies
// immediately whether or not the melody is playing.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.volume = clamp01(v)
	if p.backend != nil {
		p.backend.SetVolume(p.volume)
	}
}

func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// State is Playing only while enabled with a working backend.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enabled && p.backend != nil {
		return StatePlaying
	}
	return StateIdle
}

// Degraded reports whether opening the backend failed.
func (p *Player) Degraded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.degraded
}

// Passes is the number of passes scheduled since the player was created.
func (p *Player) Passes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.passes
}

// Close stops playback and releases the backend. The player ignores all
// further calls.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.enabled = false
	p.stopLocked()
	p.closed = true

	if p.backend == nil {
		return nil
	}
	err := p.backend.Close()
	p.backend = nil
	return err
}

func (p *Player) ensureBackendLocked() bool {
	if p.backend != nil {
		return true
	}
	if p.degraded || p.open == nil {
		p.degraded = true
		return false
	}

	b, err := p.openSafely()
	if err != nil {
		p.degraded = true
		logger.Warn("Audio unavailable, continuing without music", "error", err)
		return false
	}
	b.SetVolume(p.volume)
	p.backend = b
	return true
}

func (p *Player) openSafely() (b Backend, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("%w: %v", ErrNoDevice, r)
		}
	}()
	b, err = p.open()
	if err == nil && b == nil {
		err = ErrNoDevice
	}
	return b, err
}

func (p *Player) playPassLocked() {
	base := p.backend.Now() + p.leadIn
	for _, ev := range synth.Schedule(p.melody, p.gap) {
		at := base + ev.Start
		for _, tone := range synth.Voice(ev, p.envelope) {
			p.voices = append(p.voices, liveVoice{
				Voice: p.backend.Start(tone, at),
				end:   at + tone.Duration,
			})
		}
	}
	p.passes++

	gen := p.gen
	next := p.leadIn + synth.NextPassOffset(p.melody, p.gap, p.pause)
	p.timer = p.clock.AfterFunc(seconds(next), func() { p.nextPass(gen) })

	logger.Debug("Melody pass scheduled", "pass", p.passes, "notes", len(p.melody), "next_in", next)
}

func (p *Player) nextPass(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.closed || gen != p.gen || p.backend == nil {
		return
	}
	p.pruneLocked()
	p.playPassLocked()
}

// pruneLocked forgets voices that have ended on the backend clock. The timer
// runs on wall time, so a stalled device can still owe tones from earlier
// passes; those stay tracked until they end or are stopped.
func (p *Player) pruneLocked() {
	now := p.backend.Now()
	live := p.voices[:0]
	for _, v := range p.voices {
		if v.end > now {
			live = append(live, v)
		}
	}
	clear(p.voices[len(live):])
	p.voices = live
}

func (p *Player) stopLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	for _, v := range p.voices {
		v.Stop()
	}
	p.voices = nil
	p.gen++
}
