// Package timesheet converts raw overtime records into billable hours and
// currency values and rolls them up into totals, period reports, and per-user
// statistics. Every function is pure: records, users, and the reference time
// are passed in, nothing is read from a clock or a store.
package timesheet

import (
	"errors"
	"fmt"
	"time"
)

const clockLayout = "15:04"

// ErrInvalidTimeFormat is returned when a record carries a start or end time
// that is not a well-formed HH:MM clock time.
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// parseClock interprets an HH:MM string on an arbitrary common reference date.
func parseClock(s string) (time.Time, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return t, nil
}
