package distance

import (
	"math"
	"strings"
	"time"
)

const (
	minYear = 0
	maxYear = 9999
)

// Instant is one point on the timeline. The zero value is invalid; every
// formatting operation on an invalid Instant fails with an invalid-input
// error rather than producing a label.
type Instant struct {
	t     time.Time
	valid bool
}

// NewInstant coerces value into an Instant. Accepted inputs: Instant,
// time.Time, *time.Time, integer or float milliseconds since the Unix epoch,
// and ISO-8601 strings in three shapes: RFC 3339 (fractional seconds
// allowed), a date-time without zone designator (interpreted as local time),
// or a bare date (interpreted as UTC midnight). Anything else, unparseable
// text, or a result whose year falls outside [0, 9999] yields an invalid
// Instant.
func NewInstant(value any) Instant {
	switch v := value.(type) {
	case Instant:
		return v
	case time.Time:
		return instantAt(v)
	case *time.Time:
		if v == nil {
			return Instant{}
		}
		return instantAt(*v)
	case string:
		return parseInstant(v)
	case int:
		return fromMillis(int64(v))
	case int32:
		return fromMillis(int64(v))
	case int64:
		return fromMillis(v)
	case uint:
		return fromMillis(int64(v))
	case uint32:
		return fromMillis(int64(v))
	case uint64:
		if v > math.MaxInt64 {
			return Instant{}
		}
		return fromMillis(int64(v))
	case float32:
		return fromFloatMillis(float64(v))
	case float64:
		return fromFloatMillis(v)
	}
	return Instant{}
}

// Valid reports whether the Instant holds a usable point in time.
func (i Instant) Valid() bool {
	return i.valid
}

// Time returns the underlying time, or the zero time for an invalid Instant.
func (i Instant) Time() time.Time {
	return i.t
}

// UnixMilli returns milliseconds since the Unix epoch.
func (i Instant) UnixMilli() int64 {
	if !i.valid {
		return 0
	}
	return i.t.UnixMilli()
}

// Compare orders two instants: -1 if i is before other, +1 if after, 0 on a
// tie.
func (i Instant) Compare(other Instant) int {
	return i.t.Compare(other.t)
}

// Before reports whether i is strictly earlier than other.
func (i Instant) Before(other Instant) bool {
	return i.t.Before(other.t)
}

func instantAt(t time.Time) Instant {
	if t.Year() < minYear || t.Year() > maxYear {
		return Instant{}
	}
	return Instant{t: t, valid: true}
}

func fromMillis(ms int64) Instant {
	return instantAt(time.UnixMilli(ms))
}

func fromFloatMillis(f float64) Instant {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return Instant{}
	}
	return fromMillis(int64(math.Round(f)))
}

func parseInstant(raw string) Instant {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Instant{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return instantAt(t)
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local); err == nil {
		return instantAt(t)
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return instantAt(t)
	}
	return Instant{}
}
