package timesheet

import (
	"time"

	"extratime/models"
)

// Calculator carries the configured accounting constants. The zero value is
// usable but pays nothing; build one from config.Config in real wiring.
type Calculator struct {
	// Rate is the currency amount paid per overtime hour.
	Rate float64
	// LunchDeduction is the hours subtracted when a record has lunch marked.
	LunchDeduction float64
	// MonthlyGoal is the hours target behind the dashboard progress bar.
	MonthlyGoal float64
}

// Hours converts a (start, end, lunch) triple into a billable hour count.
// An end time before the start time is treated as crossing midnight into the
// following day; shifts longer than 24 hours are not representable. The
// result is clamped at zero, so a lunch deduction larger than the worked span
// yields 0 rather than a negative figure.
func (c Calculator) Hours(start, end string, hasLunch bool) (float64, error) {
	s, err := parseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := parseClock(end)
	if err != nil {
		return 0, err
	}

	if e.Before(s) {
		// Overnight shift: the end belongs to the next calendar day.
		e = e.Add(24 * time.Hour)
	}

	hours := e.Sub(s).Hours()
	if hasLunch {
		hours -= c.LunchDeduction
	}
	if hours < 0 {
		hours = 0
	}
	return hours, nil
}

// Value prices an hour count at the configured rate. Rounding is left to the
// presentation layer.
func (c Calculator) Value(hours float64) float64 {
	return hours * c.Rate
}

// RecordHours computes the billable hours for a single stored record.
func (c Calculator) RecordHours(r models.OvertimeRecord) (float64, error) {
	return c.Hours(r.StartTime, r.EndTime, r.HasLunch)
}
