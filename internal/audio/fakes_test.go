package audio

import (
	"sort"
	"time"

	"github.com/julianstephens/surprise/internal/synth"
)

type fakeClock struct {
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	due     time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{due: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward, firing due timers in order. Callbacks may arm
// new timers.
func (c *fakeClock) Advance(d time.Duration) {
	end := c.now + d
	for {
		var due []*fakeTimer
		for _, t := range c.timers {
			if !t.stopped && !t.fired && t.due <= end {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			break
		}
		sort.Slice(due, func(i, j int) bool { return due[i].due < due[j].due })
		t := due[0]
		c.now = t.due
		t.fired = true
		t.f()
	}
	c.now = end
}

func (c *fakeClock) pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type startedTone struct {
	tone  synth.Tone
	at    float64
	voice *fakeVoice
}

type fakeVoice struct {
	stops int
}

func (v *fakeVoice) Stop() {
	v.stops++
}

type fakeBackend struct {
	now     float64
	started []startedTone
	volume  float64
	closed  bool
}

func (b *fakeBackend) Now() float64 { return b.now }

func (b *fakeBackend) Start(t synth.Tone, at float64) Voice {
	v := &fakeVoice{}
	b.started = append(b.started, startedTone{tone: t, at: at, voice: v})
	return v
}

func (b *fakeBackend) SetVolume(v float64) { b.volume = v }

func (b *fakeBackend) Close() error {
	b.closed = true
	return nil
}
