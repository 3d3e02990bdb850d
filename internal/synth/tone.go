package synth

import "math"

// Partial is one sine component of a voice, as a multiple of the note's
// frequency and a mix weight.
type Partial struct {
	Multiple float64
	Weight   float64
}

// Partials gives the flute-like timbre: a dominant fundamental with two
// quiet overtones.
var Partials = []Partial{
	{Multiple: 1, Weight: 0.6},
	{Multiple: 2, Weight: 0.2},
	{Multiple: 3, Weight: 0.1},
}

// Tone is a single enveloped sine wave.
type Tone struct {
	Frequency float64
	Duration  float64
	Weight    float64
	Envelope  Envelope
}

// Sample returns the tone's value t seconds after it starts.
func (t Tone) Sample(at float64) float64 {
	g := t.Envelope.Gain(at, t.Duration)
	if g == 0 {
		return 0
	}
	return t.Weight * g * math.Sin(2*math.Pi*t.Frequency*at)
}

// Voice expands a scheduled note into its partial tones.
func Voice(ev ToneEvent, env Envelope) []Tone {
	tones := make([]Tone, 0, len(Partials))
	for _, p := range Partials {
		tones = append(tones, Tone{
			Frequency: ev.Frequency * p.Multiple,
			Duration:  ev.Duration,
			Weight:    p.Weight,
			Envelope:  env,
		})
	}
	return tones
}
