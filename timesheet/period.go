package timesheet

import (
	"math"
	"time"

	"extratime/models"
)

// Period selects a reporting window relative to a reference instant.
type Period int

const (
	// PeriodAll applies no date filtering.
	PeriodAll Period = iota
	// PeriodWeek is the trailing 7x24-hour window ending at the reference.
	PeriodWeek
	// PeriodMonth starts at the first day of the reference calendar month.
	PeriodMonth
	// PeriodYear starts at January 1 of the reference calendar year.
	PeriodYear
)

// ParsePeriod maps a selector string to a Period. Anything unrecognised,
// including an empty or "all" selector, means no filtering.
func ParsePeriod(s string) Period {
	switch s {
	case "week":
		return PeriodWeek
	case "month":
		return PeriodMonth
	case "year":
		return PeriodYear
	default:
		return PeriodAll
	}
}

func (p Period) String() string {
	switch p {
	case PeriodWeek:
		return "week"
	case PeriodMonth:
		return "month"
	case PeriodYear:
		return "year"
	default:
		return "all"
	}
}

// Start returns the inclusive lower bound of the window, truncated to a
// calendar date, and false when the period is unbounded.
func (p Period) Start(ref time.Time) (time.Time, bool) {
	switch p {
	case PeriodWeek:
		return dateOnly(ref.Add(-7 * 24 * time.Hour)), true
	case PeriodMonth:
		year, month, _ := ref.Date()
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
	case PeriodYear:
		return time.Date(ref.Year(), 1, 1, 0, 0, 0, 0, time.UTC), true
	default:
		return time.Time{}, false
	}
}

// FilterByPeriod selects the records whose date falls inside the window.
// Only the record's calendar date matters; time-of-day fields are ignored.
// No upper bound is enforced, so future-dated records pass every period.
func FilterByPeriod(records []models.OvertimeRecord, p Period, ref time.Time) []models.OvertimeRecord {
	start, bounded := p.Start(ref)
	if !bounded {
		return records
	}
	filtered := make([]models.OvertimeRecord, 0, len(records))
	for _, r := range records {
		if !dateOnly(r.Date).Before(start) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// WithinNotificationWindow reports whether a record dated on date counts as
// recent for the pending-notification badge. This is a distinct rule from
// PeriodWeek: the absolute distance between the record date and today,
// rounded up to whole days, must be at most 7.
func WithinNotificationWindow(date, today time.Time) bool {
	days := math.Ceil(math.Abs(today.Sub(date).Hours()) / 24)
	return days <= 7
}

// NotificationCount counts the records inside the notification window.
func NotificationCount(records []models.OvertimeRecord, today time.Time) int {
	count := 0
	for _, r := range records {
		if WithinNotificationWindow(r.Date, today) {
			count++
		}
	}
	return count
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
