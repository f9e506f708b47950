// Package distance renders the gap between two instants as a human-readable
// label ("3 months ago", "in about 5 hours"). The approximate mode walks a
// threshold ladder with about/over/almost qualifiers; strict mode renders a
// single exact unit. Both modes resolve messages through the process-wide
// locale catalog and correct for DST so a span crossing a transition reads as
// its wall-clock length.
package distance

import (
	"math"
	"time"

	appErrors "timeago/internal/errors"
	"timeago/internal/locale"
)

// Ladder thresholds, in minutes.
const (
	minutesInDay           = 1440
	minutesInAlmostTwoDays = 2520
	minutesInMonth         = 43200
	minutesInTwoMonths     = 86400
	minutesInYear          = 525600
)

var timeNow = time.Now

// Between renders the distance from a to b. The magnitude is order
// independent; when opts.AddSuffix is set the direction comes from comparing
// b to a ("in <distance>" when b is later, "<distance> ago" otherwise, ties
// reading as past). Either instant being invalid is a signaled error, never
// a wrong label.
func Between(a, b Instant, opts Options) (string, error) {
	if !a.Valid() || !b.Valid() {
		return "", appErrors.New(appErrors.CodeInvalidInput, "cannot format an invalid instant", nil)
	}

	cat := locale.Active()
	earlier, later := a, b
	if b.Before(a) {
		earlier, later = b, a
	}

	var text string
	if opts.Strict {
		text = strictDistance(earlier, later, opts.Unit, opts.Rounding, cat)
	} else {
		text = approximateDistance(earlier, later, opts.IncludeSeconds, cat)
	}
	if opts.AddSuffix {
		text = cat.WithSuffix(text, b.Compare(a) > 0)
	}
	return text, nil
}

// FromNow renders the distance between value and the current clock. It is
// the stateless entry point for callers that manage their own refresh
// cadence; value goes through the NewInstant coercions.
func FromNow(value any, opts Options) (string, error) {
	return Between(NewInstant(timeNow()), NewInstant(value), opts)
}

// approximateDistance walks the qualifier ladder. The second count rounds
// from the raw millisecond delta; thresholds compare against the
// already-rounded minute count, half-open on the lower bound, and the
// sub-minute bands read the uncorrected seconds so a DST correction cannot
// leak into them.
func approximateDistance(earlier, later Instant, includeSeconds bool, cat locale.Catalog) string {
	seconds := int64(math.Round(float64(later.UnixMilli()-earlier.UnixMilli()) / 1000))
	minutes := int(math.Round(float64(seconds) / 60))
	minutes += zoneOffsetMinutes(earlier.Time(), later.Time())

	switch {
	case minutes < 2:
		if !includeSeconds {
			if minutes == 0 {
				return cat.Distance(locale.LessThanXMinutes, 1)
			}
			return cat.Distance(locale.XMinutes, minutes)
		}
		switch {
		case seconds < 5:
			return cat.Distance(locale.LessThanXSeconds, 5)
		case seconds < 10:
			return cat.Distance(locale.LessThanXSeconds, 10)
		case seconds < 20:
			return cat.Distance(locale.LessThanXSeconds, 20)
		case seconds < 40:
			return cat.Distance(locale.HalfAMinute, 0)
		case seconds < 60:
			return cat.Distance(locale.LessThanXMinutes, 1)
		default:
			return cat.Distance(locale.XMinutes, 1)
		}
	case minutes < 45:
		return cat.Distance(locale.XMinutes, minutes)
	case minutes < 90:
		return cat.Distance(locale.AboutXHours, 1)
	case minutes < minutesInDay:
		return cat.Distance(locale.AboutXHours, roundQuotient(minutes, 60))
	case minutes < minutesInAlmostTwoDays:
		return cat.Distance(locale.XDays, 1)
	case minutes < minutesInMonth:
		return cat.Distance(locale.XDays, roundQuotient(minutes, minutesInDay))
	case minutes < minutesInTwoMonths:
		return cat.Distance(locale.AboutXMonths, roundQuotient(minutes, minutesInMonth))
	}

	// Past two months the calendar takes over from the minute ladder.
	months := fullMonthsBetween(earlier.Time(), later.Time())
	if months < 12 {
		return cat.Distance(locale.XMonths, roundQuotient(minutes, minutesInMonth))
	}
	years := months / 12
	switch rem := months % 12; {
	case rem < 3:
		return cat.Distance(locale.AboutXYears, years)
	case rem < 9:
		return cat.Distance(locale.OverXYears, years)
	default:
		return cat.Distance(locale.AlmostXYears, years+1)
	}
}

// zoneOffsetMinutes is the wall-clock correction: the difference between the
// two instants' UTC offsets, so a span across a DST transition reads as its
// wall-clock length. Positive when the later zone is further east.
func zoneOffsetMinutes(earlier, later time.Time) int {
	_, earlierOffset := earlier.Zone()
	_, laterOffset := later.Zone()
	return (laterOffset - earlierOffset) / 60
}

// fullMonthsBetween counts complete calendar months from earlier to later,
// on each instant's own wall clock. A final partial month does not count.
func fullMonthsBetween(earlier, later time.Time) int {
	months := (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month())
	if months <= 0 {
		return 0
	}
	if earlier.AddDate(0, months, 0).After(later) {
		months--
	}
	return months
}

func roundQuotient(minutes, per int) int {
	return int(math.Round(float64(minutes) / float64(per)))
}
