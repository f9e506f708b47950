package distance

import (
	"github.com/hako/durafmt"

	appErrors "timeago/internal/errors"
)

// Exact renders the gap between two instants as a precise two-unit readout
// ("2 weeks 3 days"), the detail companion to the approximate label. The
// magnitude is order independent.
func Exact(a, b Instant) (string, error) {
	if !a.Valid() || !b.Valid() {
		return "", appErrors.New(appErrors.CodeInvalidInput, "cannot format an invalid instant", nil)
	}
	d := b.Time().Sub(a.Time())
	if d < 0 {
		d = -d
	}
	return durafmt.Parse(d).LimitFirstN(2).String(), nil
}
