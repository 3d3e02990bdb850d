package audio

import "time"

// Timer is a pending one-shot callback. Stop reports whether it prevented the
// callback from running; stopping a fired or stopped timer is harmless.
type Timer interface {
	Stop() bool
}

// Clock schedules deferred callbacks so tests can drive the pass loop
// without sleeping.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock schedules callbacks with the runtime timer wheel.
type RealClock struct{}

func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// seconds converts a timeline offset into a time.Duration.
func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
