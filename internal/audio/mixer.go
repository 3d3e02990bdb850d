package audio

import (
	"encoding/binary"
	"math"
	"sync"
	"sync/atomic"

	"github.com/julianstephens/surprise/internal/synth"
)

// Mixer is a software Backend. It renders every live voice into interleaved
// stereo float32 little-endian PCM on demand and never runs dry: with nothing
// scheduled it produces silence. Its clock advances by the frames read.
type Mixer struct {
	mu         sync.Mutex
	sampleRate int
	frame      int64
	volume     float64
	voices     []*mixVoice
	closed     bool
}

type mixVoice struct {
	tone    synth.Tone
	start   int64
	length  int64
	stopped atomic.Bool
}

func (v *mixVoice) Stop() {
	v.stopped.Store(true)
}

func (v *mixVoice) done(frame int64) bool {
	return v.stopped.Load() || frame >= v.start+v.length
}

// NewMixer returns a silent mixer at full master volume.
func NewMixer(sampleRate int) *Mixer {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Mixer{sampleRate: sampleRate, volume: 1}
}

func (m *Mixer) SampleRate() int {
	return m.sampleRate
}

func (m *Mixer) Now() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return float64(m.frame) / float64(m.sampleRate)
}

// Start schedules t at backend time at. A start time already in the past is
// moved up to the next rendered frame.
func (m *Mixer) Start(t synth.Tone, at float64) Voice {
	v := &mixVoice{
		tone:   t,
		start:  int64(math.Round(at * float64(m.sampleRate))),
		length: int64(math.Round(t.Duration * float64(m.sampleRate))),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		v.Stop()
		return v
	}
	if v.start < m.frame {
		v.start = m.frame
	}
	m.voices = append(m.voices, v)
	return v
}

func (m *Mixer) SetVolume(v float64) {
	m.mu.Lock()
	m.volume = clamp01(v)
	m.mu.Unlock()
}

// Active is the number of voices that are scheduled or sounding.
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, v := range m.voices {
		if !v.done(m.frame) {
			n++
		}
	}
	return n
}

// Read implements io.Reader. Only whole frames are written.
func (m *Mixer) Read(p []byte) (int, error) {
	frames := len(p) / BytesPerFrame

	m.mu.Lock()
	defer m.mu.Unlock()

	rate := float64(m.sampleRate)
	for i := 0; i < frames; i++ {
		f := m.frame + int64(i)
		var s float64
		for _, v := range m.voices {
			if f < v.start || v.done(f) {
				continue
			}
			s += v.tone.Sample(float64(f-v.start) / rate)
		}
		s *= m.volume
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		bits := math.Float32bits(float32(s))
		off := i * BytesPerFrame
		for c := 0; c < Channels; c++ {
			binary.LittleEndian.PutUint32(p[off+c*BytesPerSample:], bits)
		}
	}
	m.frame += int64(frames)

	live := m.voices[:0]
	for _, v := range m.voices {
		if !v.done(m.frame) {
			live = append(live, v)
		}
	}
	for i := len(live); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = live

	return frames * BytesPerFrame, nil
}

// Close stops every voice. Reads keep producing silence.
func (m *Mixer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.voices {
		v.Stop()
	}
	m.voices = nil
	m.closed = true
	return nil
}
