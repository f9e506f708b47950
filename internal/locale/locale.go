// Package locale holds the message catalog used to render time distances.
// A catalog maps the fourteen distance tokens to pluralizable templates,
// carries the ago/in suffix templates, and formats ordinal numbers. Exactly
// one catalog is active process-wide; it defaults to English and can be
// replaced wholesale via Configure or loaded from a JSON/YAML file.
package locale

import (
	"strconv"
	"strings"

	appErrors "timeago/internal/errors"
)

// Token identifies one distance message in a catalog.
type Token string

const (
	LessThanXSeconds Token = "lessThanXSeconds"
	XSeconds         Token = "xSeconds"
	HalfAMinute      Token = "halfAMinute"
	LessThanXMinutes Token = "lessThanXMinutes"
	XMinutes         Token = "xMinutes"
	AboutXHours      Token = "aboutXHours"
	XHours           Token = "xHours"
	XDays            Token = "xDays"
	AboutXMonths     Token = "aboutXMonths"
	XMonths          Token = "xMonths"
	AboutXYears      Token = "aboutXYears"
	XYears           Token = "xYears"
	OverXYears       Token = "overXYears"
	AlmostXYears     Token = "almostXYears"
)

// Tokens lists every distance token a complete catalog must define.
func Tokens() []Token {
	return []Token{
		LessThanXSeconds, XSeconds, HalfAMinute, LessThanXMinutes, XMinutes,
		AboutXHours, XHours, XDays, AboutXMonths, XMonths,
		AboutXYears, XYears, OverXYears, AlmostXYears,
	}
}

// Plural is a pluralizable message template. One is used when the magnitude
// is exactly 1; Other is used for every other count, with {{count}}
// substituted. An empty One falls back to Other.
type Plural struct {
	One   string `json:"one" mapstructure:"one"`
	Other string `json:"other" mapstructure:"other"`
}

func (p Plural) empty() bool {
	return p.Other == "" && p.One == ""
}

func (p Plural) render(count int) string {
	if count == 1 && p.One != "" {
		return strings.ReplaceAll(p.One, "{{count}}", "1")
	}
	return strings.ReplaceAll(p.Other, "{{count}}", strconv.Itoa(count))
}

// Catalog is one locale's complete message set. Field names and tags mirror
// the conventional distance_in_words layout so translation files can be
// dropped in as-is.
type Catalog struct {
	Name string `json:"locale" mapstructure:"locale"`

	LessThanXSeconds Plural `json:"less_than_x_seconds" mapstructure:"less_than_x_seconds"`
	XSeconds         Plural `json:"x_seconds" mapstructure:"x_seconds"`
	HalfAMinute      string `json:"half_a_minute" mapstructure:"half_a_minute"`
	LessThanXMinutes Plural `json:"less_than_x_minutes" mapstructure:"less_than_x_minutes"`
	XMinutes         Plural `json:"x_minutes" mapstructure:"x_minutes"`
	AboutXHours      Plural `json:"about_x_hours" mapstructure:"about_x_hours"`
	XHours           Plural `json:"x_hours" mapstructure:"x_hours"`
	XDays            Plural `json:"x_days" mapstructure:"x_days"`
	AboutXMonths     Plural `json:"about_x_months" mapstructure:"about_x_months"`
	XMonths          Plural `json:"x_months" mapstructure:"x_months"`
	AboutXYears      Plural `json:"about_x_years" mapstructure:"about_x_years"`
	XYears           Plural `json:"x_years" mapstructure:"x_years"`
	OverXYears       Plural `json:"over_x_years" mapstructure:"over_x_years"`
	AlmostXYears     Plural `json:"almost_x_years" mapstructure:"almost_x_years"`

	// SuffixPast and SuffixFuture wrap a rendered distance when the caller
	// asks for direction, substituting {{distance}}.
	SuffixPast   string `json:"suffix_past" mapstructure:"suffix_past"`
	SuffixFuture string `json:"suffix_future" mapstructure:"suffix_future"`

	// Ordinalize formats an ordinal number ("3rd"). Not representable in a
	// translation file; catalogs loaded from disk fall back to plain digits
	// unless the host assigns one.
	Ordinalize func(int) string `json:"-" mapstructure:"-"`
}

// Distance renders the message for tok with the given magnitude. Unknown
// tokens render empty; Validate guarantees every known token is present in
// an accepted catalog.
func (c Catalog) Distance(tok Token, count int) string {
	switch tok {
	case LessThanXSeconds:
		return c.LessThanXSeconds.render(count)
	case XSeconds:
		return c.XSeconds.render(count)
	case HalfAMinute:
		return c.HalfAMinute
	case LessThanXMinutes:
		return c.LessThanXMinutes.render(count)
	case XMinutes:
		return c.XMinutes.render(count)
	case AboutXHours:
		return c.AboutXHours.render(count)
	case XHours:
		return c.XHours.render(count)
	case XDays:
		return c.XDays.render(count)
	case AboutXMonths:
		return c.AboutXMonths.render(count)
	case XMonths:
		return c.XMonths.render(count)
	case AboutXYears:
		return c.AboutXYears.render(count)
	case XYears:
		return c.XYears.render(count)
	case OverXYears:
		return c.OverXYears.render(count)
	case AlmostXYears:
		return c.AlmostXYears.render(count)
	}
	return ""
}

// WithSuffix wraps an already-rendered distance in the direction template:
// the future form when future is true, otherwise the past form.
func (c Catalog) WithSuffix(distance string, future bool) string {
	tmpl := c.SuffixPast
	if future {
		tmpl = c.SuffixFuture
	}
	if tmpl == "" {
		return distance
	}
	return strings.ReplaceAll(tmpl, "{{distance}}", distance)
}

// Ordinal formats n as an ordinal number, falling back to plain digits when
// the catalog carries no formatter.
func (c Catalog) Ordinal(n int) string {
	if c.Ordinalize != nil {
		return c.Ordinalize(n)
	}
	return strconv.Itoa(n)
}

// Validate reports whether the catalog defines every distance token and both
// suffix templates. Partial catalogs are rejected outright rather than merged
// over the active one.
func (c Catalog) Validate() error {
	missing := func(tok Token) error {
		return appErrors.New(appErrors.CodeInvalidLocale,
			"catalog is missing the "+string(tok)+" token", nil)
	}
	for _, tok := range Tokens() {
		switch tok {
		case HalfAMinute:
			if c.HalfAMinute == "" {
				return missing(tok)
			}
		default:
			if c.plural(tok).empty() {
				return missing(tok)
			}
		}
	}
	if c.SuffixPast == "" || c.SuffixFuture == "" {
		return appErrors.New(appErrors.CodeInvalidLocale,
			"catalog is missing a suffix template", nil)
	}
	return nil
}

func (c Catalog) plural(tok Token) Plural {
	switch tok {
	case LessThanXSeconds:
		return c.LessThanXSeconds
	case XSeconds:
		return c.XSeconds
	case LessThanXMinutes:
		return c.LessThanXMinutes
	case XMinutes:
		return c.XMinutes
	case AboutXHours:
		return c.AboutXHours
	case XHours:
		return c.XHours
	case XDays:
		return c.XDays
	case AboutXMonths:
		return c.AboutXMonths
	case XMonths:
		return c.XMonths
	case AboutXYears:
		return c.AboutXYears
	case XYears:
		return c.XYears
	case OverXYears:
		return c.OverXYears
	case AlmostXYears:
		return c.AlmostXYears
	}
	return Plural{}
}
