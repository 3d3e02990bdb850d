package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{"empty", "", false},
		{"local", "Local", false},
		{"utc", "UTC", false},
		{"kolkata", "Asia/Kolkata", false},
		{"bogus", "Mars/Olympus", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadLocation(%q) error = %v, wantErr %v", tt.timezone, err, tt.wantErr)
			}
			if !tt.wantErr && loc == nil {
				t.Error("expected a location")
			}
		})
	}
}

func TestNowInTimezone(t *testing.T) {
	now, err := NowInTimezone("UTC")
	if err != nil {
		t.Fatalf("NowInTimezone() error = %v", err)
	}
	if now.Location().String() != "UTC" {
		t.Errorf("location = %s, want UTC", now.Location())
	}
	if _, err := NowInTimezone("Not/AZone"); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestParseTarget(t *testing.T) {
	got, err := ParseTarget("2025-08-12T00:00:00+05:30", "UTC")
	if err != nil {
		t.Fatalf("ParseTarget() error = %v", err)
	}
	want := time.Date(2025, 8, 11, 18, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseTarget() = %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Errorf("location = %v, want UTC", got.Location())
	}

	if _, err := ParseTarget("tomorrow", "UTC"); err == nil {
		t.Error("expected error for malformed target")
	}
	if _, err := ParseTarget("2025-08-12T00:00:00Z", "Nowhere/Land"); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestUntil(t *testing.T) {
	target := time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want Remaining
	}{
		{"past", target.Add(time.Hour), Remaining{}},
		{"exact", target, Remaining{}},
		{"sub-second", target.Add(-500 * time.Millisecond), Remaining{}},
		{"one second", target.Add(-time.Second), Remaining{Seconds: 1}},
		{
			"mixed",
			target.Add(-(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second + 900*time.Millisecond)),
			Remaining{Days: 2, Hours: 3, Minutes: 4, Seconds: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Until(tt.now, target); got != tt.want {
				t.Errorf("Until() = %+v, want %+v", got, tt.want)
			}
		})
	}

	if !Until(target, target).Zero() {
		t.Error("Zero() should be true at the target")
	}
}
