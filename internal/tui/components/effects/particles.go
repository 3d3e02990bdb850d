package effects

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Gravity is the downward acceleration in rows per second squared.
const Gravity = 6.0

var (
	confettiGlyphs = []string{"*", "•", "✦", "▪", "◆", "~"}
	sparkGlyphs    = []string{"*", "+", "·", "✧"}

	// fade target for aging sparks
	nightSky = colorful.Color{R: 0.11, G: 0.09, B: 0.18}
)

type particle struct {
	x, y   float64
	vx, vy float64
	glyph  string
	color  colorful.Color
	born   time.Time
	life   time.Duration
	fades  bool
}

// Particles is a tiny ballistic particle system measured in cells.
type Particles struct {
	rng     *rand.Rand
	ps      []particle
	last    time.Time
	palette []colorful.Color
}

func NewParticles(rng *rand.Rand) *Particles {
	return &Particles{
		rng:     rng,
		palette: colorful.FastHappyPalette(8),
	}
}

// Burst emits n particles from (cx, cy) in random directions.
func (p *Particles) Burst(cx, cy float64, n int, speed float64, life time.Duration, now time.Time) {
	base := p.palette[p.rng.IntN(len(p.palette))]
	for range n {
		angle := p.rng.Float64() * 2 * math.Pi
		v := speed * (0.5 + p.rng.Float64()/2)
		p.ps = append(p.ps, particle{
			x:     cx,
			y:     cy,
			vx:    math.Cos(angle) * v * 2,
			vy:    math.Sin(angle) * v,
			glyph: sparkGlyphs[p.rng.IntN(len(sparkGlyphs))],
			color: base,
			born:  now,
			life:  life,
			fades: true,
		})
	}
}

// Drop emits one particle at (x, y) falling with the given speed.
func (p *Particles) Drop(x, y, speed float64, life time.Duration, now time.Time) {
	p.ps = append(p.ps, particle{
		x:     x,
		y:     y,
		vx:    (p.rng.Float64() - 0.5) * 4,
		vy:    speed,
		glyph: confettiGlyphs[p.rng.IntN(len(confettiGlyphs))],
		color: p.palette[p.rng.IntN(len(p.palette))],
		born:  now,
		life:  life,
	})
}

// Tick advances every particle to now and drops expired ones.
func (p *Particles) Tick(now time.Time) {
	if p.last.IsZero() {
		p.last = now
	}
	dt := now.Sub(p.last).Seconds()
	p.last = now

	live := p.ps[:0]
	for _, pt := range p.ps {
		if now.Sub(pt.born) >= pt.life {
			continue
		}
		pt.vy += Gravity * dt
		pt.x += pt.vx * dt
		pt.y += pt.vy * dt
		live = append(live, pt)
	}
	p.ps = live
}

// Clear removes every particle.
func (p *Particles) Clear() {
	p.ps = nil
}

func (p *Particles) Len() int {
	return len(p.ps)
}

// Sprites renders the particles as of the last Tick.
func (p *Particles) Sprites() []Sprite {
	sprites := make([]Sprite, 0, len(p.ps))
	for _, pt := range p.ps {
		c := pt.color
		if pt.fades && pt.life > 0 {
			age := float64(p.last.Sub(pt.born)) / float64(pt.life)
			c = c.BlendLab(nightSky, math.Max(0, math.Min(age, 1))).Clamped()
		}
		sprites = append(sprites, Sprite{
			X:     int(math.Round(pt.x)),
			Y:     int(math.Round(pt.y)),
			Glyph: pt.glyph,
			Color: c.Hex(),
		})
	}
	return sprites
}
