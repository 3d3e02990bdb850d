package effects

import (
	"math"
	"math/rand/v2"
	"time"
)

// burstStagger separates the pop-in of consecutive hearts in a HeartBurst.
const burstStagger = 100 * time.Millisecond

type burstHeart struct {
	fx, fy float64 // position as a fraction of the area
	delay  time.Duration
	glyph  string
	phase  float64
}

// HeartBurst scatters hearts across the whole area. They pop in one after
// another and then bob in place until cleared.
type HeartBurst struct {
	rng     *rand.Rand
	hearts  []burstHeart
	started time.Time
}

func NewHeartBurst(rng *rand.Rand) *HeartBurst {
	return &HeartBurst{rng: rng}
}

// Start replaces any running burst with n hearts appearing from now on.
func (b *HeartBurst) Start(now time.Time, n int) {
	b.started = now
	b.hearts = b.hearts[:0]
	for i := range n {
		b.hearts = append(b.hearts, burstHeart{
			fx:    b.rng.Float64(),
			fy:    b.rng.Float64(),
			delay: time.Duration(i) * burstStagger,
			glyph: heartGlyphs[b.rng.IntN(len(heartGlyphs))],
			phase: b.rng.Float64() * 2 * math.Pi,
		})
	}
}

func (b *HeartBurst) Clear() {
	b.hearts = b.hearts[:0]
}

// Len is the number of hearts in the burst, visible or not yet.
func (b *HeartBurst) Len() int {
	return len(b.hearts)
}

// Sprites places the hearts that have popped in by now inside width x height.
func (b *HeartBurst) Sprites(now time.Time, width, height int) []Sprite {
	if width <= 2 || height <= 0 {
		return nil
	}
	age := now.Sub(b.started)
	sprites := make([]Sprite, 0, len(b.hearts))
	for _, h := range b.hearts {
		if age < h.delay {
			continue
		}
		bob := int(math.Round(math.Sin((age-h.delay).Seconds()*2 + h.phase)))
		y := int(h.fy*float64(height-1)) + bob
		sprites = append(sprites, Sprite{
			X:     int(h.fx * float64(width-2)),
			Y:     max(0, min(y, height-1)),
			Glyph: h.glyph,
		})
	}
	return sprites
}
