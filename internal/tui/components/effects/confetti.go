package effects

import (
	"math/rand/v2"
	"time"
)

// Confetti rains from the top edge until its deadline passes. Pieces
// already in the air finish falling.
type Confetti struct {
	*Particles
	rng    *rand.Rand
	until  time.Time
	width  int
	height int
}

func NewConfetti(rng *rand.Rand) *Confetti {
	return &Confetti{Particles: NewParticles(rng), rng: rng}
}

func (c *Confetti) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Start rains confetti for d from now.
func (c *Confetti) Start(now time.Time, d time.Duration) {
	c.until = now.Add(d)
}

// Stop ends the rain and clears the screen.
func (c *Confetti) Stop() {
	c.until = time.Time{}
	c.Clear()
}

// Active reports whether new confetti is still being emitted.
func (c *Confetti) Active(now time.Time) bool {
	return now.Before(c.until)
}

func (c *Confetti) Tick(now time.Time) {
	if c.Active(now) && c.width > 0 {
		for range 1 + c.width/40 {
			c.Drop(c.rng.Float64()*float64(c.width), 0, 2+c.rng.Float64()*3, c.lifetime(), now)
		}
	}
	c.Particles.Tick(now)
}

func (c *Confetti) lifetime() time.Duration {
	if c.height <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.height/4+2) * time.Second
}
