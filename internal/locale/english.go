package locale

import (
	"github.com/dustin/go-humanize"
)

// English returns the built-in default catalog.
func English() Catalog {
	return Catalog{
		Name: "en",

		LessThanXSeconds: Plural{One: "less than a second", Other: "less than {{count}} seconds"},
		XSeconds:         Plural{One: "1 second", Other: "{{count}} seconds"},
		HalfAMinute:      "half a minute",
		LessThanXMinutes: Plural{One: "less than a minute", Other: "less than {{count}} minutes"},
		XMinutes:         Plural{One: "1 minute", Other: "{{count}} minutes"},
		AboutXHours:      Plural{One: "about 1 hour", Other: "about {{count}} hours"},
		XHours:           Plural{One: "1 hour", Other: "{{count}} hours"},
		XDays:            Plural{One: "1 day", Other: "{{count}} days"},
		AboutXMonths:     Plural{One: "about 1 month", Other: "about {{count}} months"},
		XMonths:          Plural{One: "1 month", Other: "{{count}} months"},
		AboutXYears:      Plural{One: "about 1 year", Other: "about {{count}} years"},
		XYears:           Plural{One: "1 year", Other: "{{count}} years"},
		OverXYears:       Plural{One: "over 1 year", Other: "over {{count}} years"},
		AlmostXYears:     Plural{One: "almost 1 year", Other: "almost {{count}} years"},

		SuffixPast:   "{{distance}} ago",
		SuffixFuture: "in {{distance}}",

		Ordinalize: humanize.Ordinal,
	}
}
