package timesheet

import (
	"time"

	"extratime/models"
)

// PersonalReport summarises one user's records over a period.
type PersonalReport struct {
	Period      string  `json:"period"`
	TotalHours  float64 `json:"total_hours"`
	TotalValue  float64 `json:"total_value"`
	RecordCount int     `json:"record_count"`
}

// BuildPersonalReport filters records by period relative to ref and totals
// the remainder.
func (c Calculator) BuildPersonalReport(records []models.OvertimeRecord, p Period, ref time.Time) (PersonalReport, error) {
	filtered := FilterByPeriod(records, p, ref)
	hours, err := c.TotalHours(filtered)
	if err != nil {
		return PersonalReport{}, err
	}
	return PersonalReport{
		Period:      p.String(),
		TotalHours:  hours,
		TotalValue:  c.Value(hours),
		RecordCount: len(filtered),
	}, nil
}

// UserStats is one per-user row of the admin report.
type UserStats struct {
	Name    string  `json:"name"`
	Hours   float64 `json:"hours"`
	Value   float64 `json:"value"`
	Records int     `json:"records"`
}

// AdminReport is the all-users summary shown on the admin reports tab.
type AdminReport struct {
	TotalUsers   int         `json:"total_users"`
	TotalRecords int         `json:"total_records"`
	TotalHours   float64     `json:"total_hours"`
	TotalValue   float64     `json:"total_value"`
	PerUser      []UserStats `json:"per_user"`
}

// BuildAdminReport aggregates the entire record collection for the grand
// totals, then breaks hours down per non-admin user. Admin accounts are
// excluded from TotalUsers and PerUser, but records they own still count
// toward the grand totals; that asymmetry is deliberate and matches the
// product behaviour. Every non-admin user gets exactly one row, in input
// order, even with zero records.
func (c Calculator) BuildAdminReport(users []models.User, records []models.OvertimeRecord) (AdminReport, error) {
	totalHours, err := c.TotalHours(records)
	if err != nil {
		return AdminReport{}, err
	}

	byUser, err := GroupBy(c, records, func(r models.OvertimeRecord) uint { return r.UserID })
	if err != nil {
		return AdminReport{}, err
	}

	perUser := make([]UserStats, 0, len(users))
	for _, u := range users {
		if u.IsAdmin {
			continue
		}
		g := byUser[u.ID]
		perUser = append(perUser, UserStats{
			Name:    u.DisplayName(),
			Hours:   g.Hours,
			Value:   g.Value,
			Records: g.Count,
		})
	}

	return AdminReport{
		TotalUsers:   len(perUser),
		TotalRecords: len(records),
		TotalHours:   totalHours,
		TotalValue:   c.Value(totalHours),
		PerUser:      perUser,
	}, nil
}

// Summary backs the dashboard cards: lifetime totals, progress toward the
// monthly goal, and the pending-notification badge.
type Summary struct {
	TotalHours    float64 `json:"total_hours"`
	TotalValue    float64 `json:"total_value"`
	GoalProgress  float64 `json:"goal_progress"`
	Notifications int     `json:"notifications"`
}

// BuildSummary totals the given records and derives the goal-progress ratio,
// capped at 1.0. The caller renders the ratio as a percentage.
func (c Calculator) BuildSummary(records []models.OvertimeRecord, today time.Time) (Summary, error) {
	hours, err := c.TotalHours(records)
	if err != nil {
		return Summary{}, err
	}

	progress := 0.0
	if c.MonthlyGoal > 0 {
		progress = hours / c.MonthlyGoal
		if progress > 1 {
			progress = 1
		}
	}

	return Summary{
		TotalHours:    hours,
		TotalValue:    c.Value(hours),
		GoalProgress:  progress,
		Notifications: NotificationCount(records, today),
	}, nil
}

// RecordView pairs a stored record with its derived hours and value for
// history listings. The derived fields are recomputed on every call.
type RecordView struct {
	models.OvertimeRecord
	Hours float64 `json:"hours"`
	Value float64 `json:"value"`
}

// Views derives hours and value for each record, preserving input order.
func (c Calculator) Views(records []models.OvertimeRecord) ([]RecordView, error) {
	views := make([]RecordView, 0, len(records))
	for _, r := range records {
		hours, err := c.RecordHours(r)
		if err != nil {
			return nil, err
		}
		views = append(views, RecordView{
			OvertimeRecord: r,
			Hours:          hours,
			Value:          c.Value(hours),
		})
	}
	return views, nil
}
