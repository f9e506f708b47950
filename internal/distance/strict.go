package distance

import "timeago/internal/locale"

const millisecondsInMinute = 60 * 1000

// strictDistance renders a single exact unit with no qualifiers. Second,
// minute, and hour magnitudes come from the raw delta; day and larger use
// the DST-corrected delta, as does unit auto-selection past the hour band.
func strictDistance(earlier, later Instant, unit Unit, rounding Rounding, cat locale.Catalog) string {
	milliseconds := later.UnixMilli() - earlier.UnixMilli()
	minutes := float64(milliseconds) / millisecondsInMinute
	corrected := minutes + float64(zoneOffsetMinutes(earlier.Time(), later.Time()))

	forced := unit != UnitUnset
	if !forced {
		switch {
		case minutes < 1:
			unit = UnitSecond
		case minutes < 60:
			unit = UnitMinute
		case minutes < minutesInDay:
			unit = UnitHour
		case corrected < minutesInMonth:
			unit = UnitDay
		case corrected < minutesInYear:
			unit = UnitMonth
		default:
			unit = UnitYear
		}
	}

	switch unit {
	case UnitSecond:
		return cat.Distance(locale.XSeconds, rounding.apply(float64(milliseconds)/1000))
	case UnitMinute:
		return cat.Distance(locale.XMinutes, rounding.apply(minutes))
	case UnitHour:
		return cat.Distance(locale.XHours, rounding.apply(minutes/60))
	case UnitDay:
		return cat.Distance(locale.XDays, rounding.apply(corrected/minutesInDay))
	case UnitMonth:
		months := rounding.apply(corrected / minutesInMonth)
		if months == 12 && !forced {
			return cat.Distance(locale.XYears, 1)
		}
		return cat.Distance(locale.XMonths, months)
	default:
		return cat.Distance(locale.XYears, rounding.apply(corrected/minutesInYear))
	}
}
