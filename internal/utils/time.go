package utils

import (
	"fmt"
	"time"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ParseTarget parses an RFC 3339 instant and expresses it in timezone.
func ParseTarget(target, timezone string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, target)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid target %q: %w", target, err)
	}
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return t.In(loc), nil
}

// Remaining is a countdown broken into display units.
type Remaining struct {
	Days, Hours, Minutes, Seconds int
}

// Zero reports whether nothing is left on the clock.
func (r Remaining) Zero() bool {
	return r == Remaining{}
}

// Until splits the time left before target into whole units, truncating
// partial seconds. Instants at or after target yield the zero value.
func Until(now, target time.Time) Remaining {
	d := target.Sub(now)
	if d <= 0 {
		return Remaining{}
	}
	secs := int(d / time.Second)
	return Remaining{
		Days:    secs / 86400,
		Hours:   secs % 86400 / 3600,
		Minutes: secs % 3600 / 60,
		Seconds: secs % 60,
	}
}
