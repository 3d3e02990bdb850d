package synth

// Timeline constants, in seconds.
const (
	DefaultGap   = 0.1 // silence between consecutive notes
	DefaultPause = 2.0 // silence after a pass before the next one starts
)

// ToneEvent is a note placed on a pass timeline.
type ToneEvent struct {
	Index     int
	Start     float64 // seconds from the start of the pass
	Frequency float64
	Duration  float64
}

// End is the offset at which the event stops sounding.
func (e ToneEvent) End() float64 {
	return e.Start + e.Duration
}

// Schedule lays m out on a timeline. Event i starts at the sum of every
// earlier duration plus one gap per earlier note.
func Schedule(m Melody, gap float64) []ToneEvent {
	events := make([]ToneEvent, 0, len(m))
	var at float64
	for i, n := range m {
		events = append(events, ToneEvent{
			Index:     i,
			Start:     at,
			Frequency: n.Frequency,
			Duration:  n.Duration,
		})
		at += n.Duration + gap
	}
	return events
}

// PassDuration is the audible length of one pass: every duration plus the
// gaps between notes, with no trailing gap.
func PassDuration(m Melody, gap float64) float64 {
	if len(m) == 0 {
		return 0
	}
	var total float64
	for _, n := range m {
		total += n.Duration
	}
	return total + float64(len(m)-1)*gap
}

// NextPassOffset is when the following pass begins, measured from the start
// of the current one.
func NextPassOffset(m Melody, gap, pause float64) float64 {
	return PassDuration(m, gap) + pause
}
