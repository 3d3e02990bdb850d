package effects

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/julianstephens/surprise/internal/constants"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNextIDUnique(t *testing.T) {
	a, b := NextID(), NextID()
	if a == b {
		t.Errorf("NextID() returned %d twice", a)
	}
}

func TestOverlay(t *testing.T) {
	base := "abcdef\nghijkl"

	tests := []struct {
		name    string
		sprites []Sprite
		want    string
	}{
		{
			name:    "no sprites",
			sprites: nil,
			want:    base,
		},
		{
			name:    "inside",
			sprites: []Sprite{{X: 2, Y: 1, Glyph: "*"}},
			want:    "abcdef\ngh*jkl\n",
		},
		{
			name:    "past the end of a line pads",
			sprites: []Sprite{{X: 8, Y: 0, Glyph: "*"}},
			want:    "abcdef  *\nghijkl\n",
		},
		{
			name:    "padded row",
			sprites: []Sprite{{X: 0, Y: 2, Glyph: "*"}},
			want:    "abcdef\nghijkl\n*",
		},
		{
			name:    "outside is skipped",
			sprites: []Sprite{{X: -1, Y: 0, Glyph: "*"}, {X: 0, Y: 9, Glyph: "*"}, {X: 10, Y: 0, Glyph: "*"}},
			want:    "abcdef\nghijkl\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(Overlay(base, 10, 3, tt.sprites))
			if got != tt.want {
				t.Errorf("Overlay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOverlayWideGlyph(t *testing.T) {
	got := ansi.Strip(Overlay("abcdef", 10, 1, []Sprite{{X: 1, Y: 0, Glyph: "💖"}}))
	if got != "a💖def" {
		t.Errorf("Overlay() = %q, want %q", got, "a💖def")
	}
	if w := ansi.StringWidth(got); w != 6 {
		t.Errorf("width = %d, want 6", w)
	}
}

func TestHeartsSpawnAndExpire(t *testing.T) {
	h := NewHearts(testRand())
	h.SetSize(40, 20)

	start := time.Unix(0, 0)
	h.Tick(start)
	if h.Len() != 1 {
		t.Fatalf("first tick should spawn a heart, got %d", h.Len())
	}

	h.Tick(start.Add(time.Second))
	if h.Len() != 1 {
		t.Errorf("no spawn before the interval, got %d", h.Len())
	}

	h.Tick(start.Add(constants.HeartSpawnInterval))
	if h.Len() != 2 {
		t.Errorf("expected a second heart, got %d", h.Len())
	}

	// The first heart dies at its lifetime while spawning continues.
	for at := constants.HeartSpawnInterval; at <= constants.HeartLifetime; at += constants.HeartSpawnInterval {
		h.Tick(start.Add(at))
	}
	h.Tick(start.Add(constants.HeartLifetime))
	for _, s := range h.Sprites(start.Add(constants.HeartLifetime)) {
		if s.Y < -1 || s.Y >= 20 {
			t.Errorf("sprite row %d out of range", s.Y)
		}
		if s.X < 0 || s.X > 38 {
			t.Errorf("sprite column %d out of range", s.X)
		}
	}
	if h.Len() > int(constants.HeartLifetime/constants.HeartSpawnInterval)+1 {
		t.Errorf("hearts are not expiring: %d alive", h.Len())
	}
}

func TestHeartsRise(t *testing.T) {
	h := NewHearts(testRand())
	h.SetSize(40, 20)
	start := time.Unix(0, 0)
	h.Tick(start)

	y0 := h.Sprites(start)[0].Y
	y1 := h.Sprites(start.Add(3 * time.Second))[0].Y
	if y0 != 19 {
		t.Errorf("heart starts at row %d, want bottom row 19", y0)
	}
	if y1 >= y0 {
		t.Errorf("heart did not rise: %d -> %d", y0, y1)
	}
}

func TestHeartsNoSpaceNoSpawn(t *testing.T) {
	h := NewHearts(testRand())
	h.Tick(time.Unix(0, 0))
	if h.Len() != 0 {
		t.Error("hearts should not spawn before the size is known")
	}
}

func TestParticlesFall(t *testing.T) {
	p := NewParticles(testRand())
	now := time.Unix(0, 0)
	p.Drop(10, 0, 0, 5*time.Second, now)
	p.Tick(now)

	p.Tick(now.Add(time.Second))
	sp := p.Sprites()
	if len(sp) != 1 {
		t.Fatalf("expected one particle, got %d", len(sp))
	}
	if sp[0].Y <= 0 {
		t.Errorf("particle should fall under gravity, row = %d", sp[0].Y)
	}
	if sp[0].Color == "" {
		t.Error("particle should carry a colour")
	}

	p.Tick(now.Add(6 * time.Second))
	if p.Len() != 0 {
		t.Errorf("expired particle kept: %d", p.Len())
	}
}

func TestConfettiWindow(t *testing.T) {
	c := NewConfetti(testRand())
	c.SetSize(80, 24)
	now := time.Unix(0, 0)

	c.Start(now, constants.ConfettiDuration)
	c.Tick(now)
	if !c.Active(now) || c.Len() == 0 {
		t.Fatal("confetti should be falling right after Start")
	}
	if c.Active(now.Add(constants.ConfettiDuration)) {
		t.Error("confetti should stop emitting at its deadline")
	}

	c.Stop()
	if c.Active(now) || c.Len() != 0 {
		t.Error("Stop should end emission and clear pieces")
	}
}

func TestFireworks(t *testing.T) {
	f := NewFireworks(testRand())
	f.SetSize(80, 24)
	now := time.Unix(0, 0)

	f.Tick(now)
	n := f.Len()
	if n == 0 {
		t.Fatal("expected a burst on the first tick")
	}
	f.Tick(now.Add(100 * time.Millisecond))
	if f.Len() != n {
		t.Errorf("no new burst before the interval: %d -> %d", n, f.Len())
	}

	f.SetEnabled(false)
	f.Tick(now.Add(5 * time.Second))
	if f.Len() != 0 {
		t.Errorf("disabled fireworks should be empty, got %d", f.Len())
	}
	for _, s := range f.Sprites() {
		if !strings.HasPrefix(s.Color, "#") {
			t.Errorf("colour %q is not hex", s.Color)
		}
	}
}

func TestHeartBurstStaggersIn(t *testing.T) {
	b := NewHeartBurst(testRand())
	start := time.Unix(0, 0)
	b.Start(start, 20)

	tests := []struct {
		name string
		at   time.Duration
		want int
	}{
		{"first heart only", 0, 1},
		{"half way", 950 * time.Millisecond, 10},
		{"all in", 3 * time.Second, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sprites := b.Sprites(start.Add(tt.at), 40, 10)
			if len(sprites) != tt.want {
				t.Fatalf("visible = %d, want %d", len(sprites), tt.want)
			}
			for _, s := range sprites {
				if s.X < 0 || s.X > 38 || s.Y < 0 || s.Y > 9 {
					t.Errorf("heart out of bounds: %+v", s)
				}
			}
		})
	}

	if got := b.Sprites(start.Add(time.Second), 0, 0); got != nil {
		t.Errorf("expected no sprites without a size, got %d", len(got))
	}

	b.Clear()
	if b.Len() != 0 {
		t.Errorf("Len() after Clear = %d", b.Len())
	}
}
