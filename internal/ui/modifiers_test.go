package ui

import (
	"testing"

	"timeago/internal/distance"
)

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		raw  string
		want Modifiers
	}{
		{"", Modifiers{}},
		{"pure", Modifiers{Pure: true}},
		{"seconds", Modifiers{Seconds: true}},
		{"strict", Modifiers{Strict: true}},
		{"pure.seconds.strict", Modifiers{Pure: true, Seconds: true, Strict: true}},
		{"strict.unit.month.rounding.ceil", Modifiers{
			Strict:   true,
			Unit:     distance.UnitMonth,
			Rounding: distance.RoundingCeil,
		}},
		{"seconds.strict.unit.year", Modifiers{
			Seconds: true,
			Strict:  true,
			Unit:    distance.UnitYear,
		}},
		{"STRICT.Unit.Hour", Modifiers{Strict: true, Unit: distance.UnitHour}},
		{" pure . strict ", Modifiers{Pure: true, Strict: true}},
		// A junk value token leaves the field unset without consuming flags.
		{"strict.unit.fortnight", Modifiers{Strict: true}},
		{"strict.rounding.banker", Modifiers{Strict: true}},
		// The value token is consumed even when it names a flag, and the
		// plural is not a valid unit name.
		{"unit.seconds", Modifiers{}},
		{"unit.second", Modifiers{Unit: distance.UnitSecond}},
		// Unknown names are skipped.
		{"bogus.strict.whatever", Modifiers{Strict: true}},
		// Trailing name with no value token.
		{"strict.unit", Modifiers{Strict: true}},
	}
	for _, tt := range tests {
		if got := ParseModifiers(tt.raw); got != tt.want {
			t.Errorf("ParseModifiers(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}
}

func TestModifiersOptions(t *testing.T) {
	opts := Modifiers{}.Options()
	if !opts.AddSuffix {
		t.Error("expected the suffix on by default")
	}
	if opts.Strict || opts.IncludeSeconds {
		t.Error("expected strict and seconds off by default")
	}

	opts = Modifiers{Pure: true, Seconds: true, Strict: true, Unit: distance.UnitDay, Rounding: distance.RoundingFloor}.Options()
	if opts.AddSuffix {
		t.Error("expected pure to drop the suffix")
	}
	if !opts.IncludeSeconds || !opts.Strict {
		t.Error("expected seconds and strict to carry over")
	}
	if opts.Unit != distance.UnitDay || opts.Rounding != distance.RoundingFloor {
		t.Errorf("expected unit/rounding to carry over, got %+v", opts)
	}
}

func TestModifiersStringRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"pure",
		"seconds.strict",
		"strict.unit.month.rounding.ceil",
		"pure.seconds.strict.unit.year.rounding.round",
	}
	for _, canonical := range tests {
		mods := ParseModifiers(canonical)
		if got := mods.String(); got != canonical {
			t.Errorf("ParseModifiers(%q).String() = %q", canonical, got)
		}
	}
}

func TestUnitSecondsDoesNotSetSecondsFlag(t *testing.T) {
	mods := ParseModifiers("unit.seconds")
	if mods.Seconds {
		t.Fatal("the unit value token must not double as the seconds flag")
	}
	if mods.Unit != distance.UnitUnset {
		t.Fatalf("expected no unit from the plural name, got %q", mods.Unit)
	}
}
