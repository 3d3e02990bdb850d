package synth

// Envelope timing, in seconds.
const (
	DefaultAttack  = 0.1
	DefaultRelease = 0.2
)

// Envelope is a linear attack-sustain-release shape with a peak of 1.
type Envelope struct {
	Attack  float64
	Release float64
}

// DefaultEnvelope is the shape applied to every melody tone.
func DefaultEnvelope() Envelope {
	return Envelope{Attack: DefaultAttack, Release: DefaultRelease}
}

// Sustain is the hold segment for a tone of duration d. It is clamped at
// zero; attack and release are never shortened to fit.
func (e Envelope) Sustain(d float64) float64 {
	s := d - e.Attack - e.Release
	if s < 0 {
		return 0
	}
	return s
}

// Gain returns the envelope level at t seconds into a tone of duration d.
// Outside [0, d] the tone is silent.
func (e Envelope) Gain(t, d float64) float64 {
	if t <= 0 || t >= d {
		return 0
	}
	if t < e.Attack {
		return t / e.Attack
	}
	releaseStart := e.Attack + e.Sustain(d)
	if t < releaseStart {
		return 1
	}
	if e.Release <= 0 {
		return 0
	}
	g := 1 - (t-releaseStart)/e.Release
	if g < 0 {
		return 0
	}
	return g
}
