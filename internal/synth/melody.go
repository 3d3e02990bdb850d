// Package synth holds the pure, clock-free half of the tone scheduler: the
// melody table, the pass timeline and the per-note voice shaping.
package synth

// Note is a single pitch held for Duration seconds.
type Note struct {
	Frequency float64 // Hz
	Duration  float64 // seconds
}

// Melody is an ordered, immutable sequence of notes.
type Melody []Note

// Pitches used by the birthday tune.
const (
	C4  = 261.63
	D4  = 293.66
	E4  = 329.63
	F4  = 349.23
	G4  = 392.00
	A4  = 440.00
	Bb4 = 466.16
	C5  = 523.25
)

var happyBirthday = Melody{
	// Happy birthday to you
	{C4, 0.5}, {C4, 0.5}, {D4, 1.0}, {C4, 1.0}, {F4, 1.0}, {E4, 2.0},
	// Happy birthday to you
	{C4, 0.5}, {C4, 0.5}, {D4, 1.0}, {C4, 1.0}, {G4, 1.0}, {F4, 2.0},
	// Happy birthday dear ...
	{C4, 0.5}, {C4, 0.5}, {C5, 1.0}, {A4, 1.0}, {F4, 1.0}, {E4, 1.0}, {D4, 2.0},
	// Happy birthday to you
	{Bb4, 0.5}, {Bb4, 0.5}, {A4, 1.0}, {F4, 1.0}, {G4, 1.0}, {F4, 3.0},
}

// HappyBirthday returns a copy of the looping birthday tune.
func HappyBirthday() Melody {
	out := make(Melody, len(happyBirthday))
	copy(out, happyBirthday)
	return out
}

var noteNames = map[float64]string{
	C4: "C4", D4: "D4", E4: "E4", F4: "F4", G4: "G4", A4: "A4", Bb4: "Bb4", C5: "C5",
}

// Name returns the scientific pitch name of n, or "" for pitches outside the
// birthday tune.
func (n Note) Name() string {
	return noteNames[n.Frequency]
}
