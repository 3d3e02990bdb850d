package effects

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/julianstephens/surprise/internal/constants"
)

var heartGlyphs = []string{"💕", "💖", "💗", "💝", "💞"}

type heart struct {
	x     int
	born  time.Time
	rise  time.Duration
	glyph string
	phase float64
}

// Hearts spawns a heart every constants.HeartSpawnInterval at a random
// column. Each rises for six to nine seconds and is removed after
// constants.HeartLifetime.
type Hearts struct {
	rng       *rand.Rand
	hearts    []heart
	lastSpawn time.Time
	width     int
	height    int
}

func NewHearts(rng *rand.Rand) *Hearts {
	return &Hearts{rng: rng}
}

func (h *Hearts) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Tick spawns and expires hearts for the given instant.
func (h *Hearts) Tick(now time.Time) {
	live := h.hearts[:0]
	for _, ht := range h.hearts {
		if now.Sub(ht.born) < constants.HeartLifetime {
			live = append(live, ht)
		}
	}
	h.hearts = live

	if h.width <= 2 {
		return
	}
	if !h.lastSpawn.IsZero() && now.Sub(h.lastSpawn) < constants.HeartSpawnInterval {
		return
	}
	h.lastSpawn = now
	h.hearts = append(h.hearts, heart{
		x:     h.rng.IntN(h.width - 2),
		born:  now,
		rise:  6*time.Second + time.Duration(h.rng.Int64N(int64(3*time.Second))),
		glyph: heartGlyphs[h.rng.IntN(len(heartGlyphs))],
		phase: h.rng.Float64() * 2 * math.Pi,
	})
}

// Len reports how many hearts are alive.
func (h *Hearts) Len() int {
	return len(h.hearts)
}

// Sprites places every heart for the given instant. Hearts start at the
// bottom row and drift upward with a slight sway.
func (h *Hearts) Sprites(now time.Time) []Sprite {
	sprites := make([]Sprite, 0, len(h.hearts))
	for _, ht := range h.hearts {
		age := now.Sub(ht.born)
		p := min(float64(age)/float64(ht.rise), 1)
		y := h.height - 1 - int(p*float64(h.height))
		sway := int(math.Round(math.Sin(age.Seconds()*1.5+ht.phase) * 2))
		sprites = append(sprites, Sprite{
			X:     max(0, min(ht.x+sway, h.width-2)),
			Y:     y,
			Glyph: ht.glyph,
		})
	}
	return sprites
}
