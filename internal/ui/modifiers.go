package ui

import (
	"strings"

	"timeago/internal/distance"
)

// Modifiers is the static directive configuration parsed once at attach
// time. Flags combine freely; Unit and Rounding only matter in strict mode.
type Modifiers struct {
	// Pure suppresses the ago/in suffix.
	Pure bool
	// Seconds asks for sub-minute granularity and the fast tick cadence.
	Seconds bool
	// Strict renders a single exact unit.
	Strict bool
	// Unit forces the strict-mode unit.
	Unit distance.Unit
	// Rounding picks the strict-mode partial-unit method.
	Rounding distance.Rounding
}

// ParseModifiers reads a dot-separated directive list such as
// "seconds.strict.unit.month.rounding.ceil". The unit and rounding names
// consume the token that follows them; a missing or unrecognised value token
// leaves the field unset. Unknown names are skipped. Parsing never fails.
func ParseModifiers(raw string) Modifiers {
	var mods Modifiers

	parts := strings.Split(raw, ".")
	for i := 0; i < len(parts); i++ {
		switch strings.ToLower(strings.TrimSpace(parts[i])) {
		case "pure":
			mods.Pure = true
		case "seconds":
			mods.Seconds = true
		case "strict":
			mods.Strict = true
		case "unit":
			if i+1 < len(parts) {
				i++
				mods.Unit = distance.ParseUnit(parts[i])
			}
		case "rounding":
			if i+1 < len(parts) {
				i++
				mods.Rounding = distance.ParseRounding(parts[i])
			}
		}
	}
	return mods
}

// Options derives the formatter options: the suffix is on unless pure asked
// it off.
func (m Modifiers) Options() distance.Options {
	return distance.Options{
		AddSuffix:      !m.Pure,
		IncludeSeconds: m.Seconds,
		Strict:         m.Strict,
		Unit:           m.Unit,
		Rounding:       m.Rounding,
	}
}

// String renders the canonical dot-separated form, empty for the zero value.
func (m Modifiers) String() string {
	var parts []string
	if m.Pure {
		parts = append(parts, "pure")
	}
	if m.Seconds {
		parts = append(parts, "seconds")
	}
	if m.Strict {
		parts = append(parts, "strict")
	}
	if m.Unit != distance.UnitUnset {
		parts = append(parts, "unit", string(m.Unit))
	}
	if m.Rounding != distance.RoundingUnset {
		parts = append(parts, "rounding", string(m.Rounding))
	}
	return strings.Join(parts, ".")
}
