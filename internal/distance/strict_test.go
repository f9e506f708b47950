package distance

import (
	"testing"
	"time"
)

func TestBetweenStrictAutoUnit(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"one second", time.Second, "1 second"},
		{"forty-five seconds", 45 * time.Second, "45 seconds"},
		{"sub-minute stays seconds", 59 * time.Second, "59 seconds"},
		{"one minute", time.Minute, "1 minute"},
		{"thirty minutes", 30 * time.Minute, "30 minutes"},
		{"partial hour truncates", 90 * time.Minute, "1 hour"},
		{"five hours", 5 * time.Hour, "5 hours"},
		{"one day", 24 * time.Hour, "1 day"},
		{"partial day truncates", 47 * time.Hour, "1 day"},
		{"twenty-nine days", 29 * 24 * time.Hour, "29 days"},
		{"thirty days", 30 * 24 * time.Hour, "1 month"},
		{"eleven months", 11 * 30 * 24 * time.Hour, "11 months"},
		{"one year", 365 * 24 * time.Hour, "1 year"},
		{"two years", 2 * 365 * 24 * time.Hour, "2 years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := between(t, base, base.Add(tt.d), Options{Strict: true})
			if got != tt.want {
				t.Fatalf("strict Between(+%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestBetweenStrictTwelveMonths(t *testing.T) {
	// 360 days rounds to twelve months; the auto-selected unit promotes that
	// to a year, a forced month unit does not.
	b := base.Add(360 * 24 * time.Hour)

	if got := between(t, base, b, Options{Strict: true}); got != "1 year" {
		t.Fatalf("auto unit = %q, want %q", got, "1 year")
	}
	got := between(t, base, b, Options{Strict: true, Unit: UnitMonth})
	if got != "12 months" {
		t.Fatalf("forced month unit = %q, want %q", got, "12 months")
	}
}

func TestBetweenStrictForcedUnits(t *testing.T) {
	b := base.Add(5 * time.Hour)

	tests := []struct {
		unit Unit
		want string
	}{
		{UnitSecond, "18000 seconds"},
		{UnitMinute, "300 minutes"},
		{UnitHour, "5 hours"},
		{UnitDay, "0 days"},
	}
	for _, tt := range tests {
		got := between(t, base, b, Options{Strict: true, Unit: tt.unit})
		if got != tt.want {
			t.Fatalf("forced %s = %q, want %q", tt.unit, got, tt.want)
		}
	}
}

func TestBetweenStrictRounding(t *testing.T) {
	b := base.Add(90 * time.Minute)

	tests := []struct {
		rounding Rounding
		want     string
	}{
		{RoundingUnset, "1 hour"},
		{RoundingFloor, "1 hour"},
		{RoundingCeil, "2 hours"},
		{RoundingRound, "2 hours"},
	}
	for _, tt := range tests {
		got := between(t, base, b, Options{Strict: true, Rounding: tt.rounding})
		if got != tt.want {
			t.Fatalf("rounding %q = %q, want %q", tt.rounding, got, tt.want)
		}
	}
}

func TestBetweenStrictSuffix(t *testing.T) {
	b := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)

	if got := between(t, base, b, Options{Strict: true, AddSuffix: true}); got != "in 1 year" {
		t.Fatalf("future strict = %q, want %q", got, "in 1 year")
	}
	if got := between(t, b, base, Options{Strict: true, AddSuffix: true}); got != "1 year ago" {
		t.Fatalf("past strict = %q, want %q", got, "1 year ago")
	}
}

func TestBetweenStrictDST(t *testing.T) {
	std := time.FixedZone("STD", 0)
	dst := time.FixedZone("DST", 3600)

	// Hour magnitudes read the raw delta: three absolute hours stay three
	// even across the transition.
	a := time.Date(2015, 3, 29, 0, 30, 0, 0, std)
	b := time.Date(2015, 3, 29, 4, 30, 0, 0, dst)
	if got := between(t, a, b, Options{Strict: true}); got != "3 hours" {
		t.Fatalf("strict hours across transition = %q, want %q", got, "3 hours")
	}

	// Day-and-larger unit selection uses the corrected delta: thirty wall
	// days that lost an hour still read as a month, not 29 days.
	c := time.Date(2015, 3, 1, 0, 0, 0, 0, std)
	d := time.Date(2015, 3, 31, 0, 0, 0, 0, dst)
	if got := between(t, c, d, Options{Strict: true}); got != "1 month" {
		t.Fatalf("strict corrected month = %q, want %q", got, "1 month")
	}
}
