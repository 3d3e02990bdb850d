// Package audio plays synthesized melodies on the local sound device.
package audio

import (
	"errors"

	"github.com/julianstephens/surprise/internal/synth"
)

// Output format shared by the mixer and the device.
const (
	DefaultSampleRate = 44100
	Channels          = 2
	BytesPerSample    = 4 // float32
	BytesPerFrame     = Channels * BytesPerSample
)

// ErrNoDevice is returned when the platform cannot open an audio output.
var ErrNoDevice = errors.New("audio output unavailable")

// Voice is a tone that has been handed to a backend. Stop silences it
// immediately and may be called any number of times, including after the
// tone has finished on its own.
type Voice interface {
	Stop()
}

// Backend is a tone generation context with a master volume.
type Backend interface {
	// Now is the backend's clock in seconds.
	Now() float64
	// Start schedules t to begin at the given backend time.
	Start(t synth.Tone, at float64) Voice
	SetVolume(v float64)
	Close() error
}

// Opener lazily constructs a Backend. It may fail when the platform lacks
// audio support.
type Opener func() (Backend, error)

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
