package effects

import (
	"math/rand/v2"
	"time"
)

const fireworkInterval = 1200 * time.Millisecond

// Fireworks bursts at a random spot in the upper half of the screen at a
// fixed interval while enabled.
type Fireworks struct {
	*Particles
	rng     *rand.Rand
	next    time.Time
	enabled bool
	width   int
	height  int
}

func NewFireworks(rng *rand.Rand) *Fireworks {
	return &Fireworks{Particles: NewParticles(rng), rng: rng, enabled: true}
}

func (f *Fireworks) SetSize(width, height int) {
	f.width = width
	f.height = height
}

func (f *Fireworks) SetEnabled(on bool) {
	f.enabled = on
	if !on {
		f.Clear()
	}
}

func (f *Fireworks) Tick(now time.Time) {
	if f.enabled && f.width > 4 && f.height > 4 && !now.Before(f.next) {
		x := 2 + f.rng.Float64()*float64(f.width-4)
		y := 1 + f.rng.Float64()*float64(f.height/2)
		f.Burst(x, y, 14, 4, 1500*time.Millisecond, now)
		f.next = now.Add(fireworkInterval)
	}
	f.Particles.Tick(now)
}
