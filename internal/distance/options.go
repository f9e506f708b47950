package distance

import (
	"math"
	"strings"
)

// Unit forces a strict-mode distance into a single unit instead of letting
// the ladder choose one.
type Unit string

const (
	UnitUnset  Unit = ""
	UnitSecond Unit = "second"
	UnitMinute Unit = "minute"
	UnitHour   Unit = "hour"
	UnitDay    Unit = "day"
	UnitMonth  Unit = "month"
	UnitYear   Unit = "year"
)

var validUnits = map[Unit]struct{}{
	UnitSecond: {},
	UnitMinute: {},
	UnitHour:   {},
	UnitDay:    {},
	UnitMonth:  {},
	UnitYear:   {},
}

// ParseUnit normalises an incoming unit name. Unrecognised names fall back to
// UnitUnset rather than erroring; directive parsing treats junk as absent.
func ParseUnit(raw string) Unit {
	unit := Unit(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := validUnits[unit]; !ok {
		return UnitUnset
	}
	return unit
}

// Rounding selects how strict mode turns a fractional unit count into a
// whole one. The zero value truncates toward zero.
type Rounding string

const (
	RoundingUnset Rounding = ""
	RoundingFloor Rounding = "floor"
	RoundingCeil  Rounding = "ceil"
	RoundingRound Rounding = "round"
)

var validRoundings = map[Rounding]struct{}{
	RoundingFloor: {},
	RoundingCeil:  {},
	RoundingRound: {},
}

// ParseRounding normalises an incoming rounding name, falling back to
// RoundingUnset on anything unrecognised.
func ParseRounding(raw string) Rounding {
	rounding := Rounding(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := validRoundings[rounding]; !ok {
		return RoundingUnset
	}
	return rounding
}

func (r Rounding) apply(f float64) int {
	switch r {
	case RoundingFloor:
		return int(math.Floor(f))
	case RoundingCeil:
		return int(math.Ceil(f))
	case RoundingRound:
		return int(math.Round(f))
	default:
		return int(math.Trunc(f))
	}
}

// Options controls one formatting call.
//
// IncludeSeconds only affects the approximate mode; Unit and Rounding only
// affect strict mode.
type Options struct {
	// AddSuffix wraps the distance in the locale's direction template
	// ("3 months ago", "in 3 months").
	AddSuffix bool
	// IncludeSeconds switches the sub-minute band of the approximate ladder
	// from "less than a minute" to second-granular phrasing.
	IncludeSeconds bool
	// Strict renders a single exact unit with no "about"/"over"/"almost"
	// qualifiers.
	Strict bool
	// Unit forces the strict-mode unit.
	Unit Unit
	// Rounding picks the strict-mode partial-unit method; unset truncates.
	Rounding Rounding
}
