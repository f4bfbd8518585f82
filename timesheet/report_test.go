package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extratime/models"
)

func TestBuildPersonalReport_EndToEnd(t *testing.T) {
	calc := testCalculator()
	ref := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	records := []models.OvertimeRecord{
		record(1, "2024-01-01", "08:00", "17:00", true),  // 8h
		record(1, "2024-01-02", "20:00", "04:00", false), // 8h overnight
	}

	report, err := calc.BuildPersonalReport(records, PeriodMonth, ref)
	require.NoError(t, err)

	assert.Equal(t, "month", report.Period)
	assert.InDelta(t, 16.0, report.TotalHours, 1e-9)
	assert.InDelta(t, 16.0*calc.Rate, report.TotalValue, 1e-9)
	assert.Equal(t, 2, report.RecordCount)
}

func TestBuildPersonalReport_AppliesPeriodFilter(t *testing.T) {
	calc := testCalculator()
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	records := []models.OvertimeRecord{
		record(1, "2024-03-14", "08:00", "10:00", false), // inside week
		record(1, "2024-02-01", "08:00", "10:00", false), // outside week
	}

	report, err := calc.BuildPersonalReport(records, PeriodWeek, ref)
	require.NoError(t, err)
	assert.Equal(t, 1, report.RecordCount)
	assert.InDelta(t, 2.0, report.TotalHours, 1e-9)
}

func TestBuildPersonalReport_EmptyCollection(t *testing.T) {
	calc := testCalculator()
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	report, err := calc.BuildPersonalReport(nil, PeriodYear, ref)
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.TotalHours)
	assert.Equal(t, 0.0, report.TotalValue)
	assert.Equal(t, 0, report.RecordCount)
}

func adminReportFixtures() ([]models.User, []models.OvertimeRecord) {
	users := []models.User{
		{ID: 1, Name: "Ana", IsAdmin: false},
		{ID: 2, Name: "Bruno", IsAdmin: false},
		{ID: 3, Name: "Chief", IsAdmin: true},
		{ID: 4, Name: "Dora", IsAdmin: false}, // no records at all
	}
	records := []models.OvertimeRecord{
		record(1, "2024-01-01", "08:00", "17:00", true),  // Ana: 8h
		record(1, "2024-01-02", "18:00", "20:00", false), // Ana: 2h
		record(2, "2024-01-03", "20:00", "04:00", false), // Bruno: 8h
		record(3, "2024-01-04", "08:00", "10:00", false), // admin-owned: 2h
	}
	return users, records
}

func TestBuildAdminReport_GrandTotalsCoverAllRecords(t *testing.T) {
	calc := testCalculator()
	users, records := adminReportFixtures()

	report, err := calc.BuildAdminReport(users, records)
	require.NoError(t, err)

	// The admin-owned record counts toward the grand totals even though
	// no per-user row will ever show it.
	assert.Equal(t, 4, report.TotalRecords)
	assert.InDelta(t, 20.0, report.TotalHours, 1e-9)
	assert.InDelta(t, 20.0*calc.Rate, report.TotalValue, 1e-9)
}

func TestBuildAdminReport_PerUserRows(t *testing.T) {
	calc := testCalculator()
	users, records := adminReportFixtures()

	report, err := calc.BuildAdminReport(users, records)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalUsers, "admin accounts are not counted")
	require.Len(t, report.PerUser, 3)

	// Rows appear once per non-admin user, in the supplied order.
	assert.Equal(t, "Ana", report.PerUser[0].Name)
	assert.InDelta(t, 10.0, report.PerUser[0].Hours, 1e-9)
	assert.Equal(t, 2, report.PerUser[0].Records)

	assert.Equal(t, "Bruno", report.PerUser[1].Name)
	assert.InDelta(t, 8.0, report.PerUser[1].Hours, 1e-9)

	// Zero-record users still get a row, unlike GroupBy.
	assert.Equal(t, "Dora", report.PerUser[2].Name)
	assert.Equal(t, 0.0, report.PerUser[2].Hours)
	assert.Equal(t, 0.0, report.PerUser[2].Value)
	assert.Equal(t, 0, report.PerUser[2].Records)
}

func TestBuildAdminReport_EmptyInputs(t *testing.T) {
	calc := testCalculator()

	report, err := calc.BuildAdminReport(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalUsers)
	assert.Equal(t, 0, report.TotalRecords)
	assert.Empty(t, report.PerUser)
}

func TestBuildSummary(t *testing.T) {
	calc := testCalculator()
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	records := []models.OvertimeRecord{
		record(1, "2024-03-14", "08:00", "16:00", false), // 8h, recent
		record(1, "2024-02-01", "08:00", "16:00", false), // 8h, old
	}

	summary, err := calc.BuildSummary(records, today)
	require.NoError(t, err)

	assert.InDelta(t, 16.0, summary.TotalHours, 1e-9)
	assert.InDelta(t, 16.0*calc.Rate, summary.TotalValue, 1e-9)
	assert.InDelta(t, 16.0/160.0, summary.GoalProgress, 1e-9)
	assert.Equal(t, 1, summary.Notifications)
}

func TestBuildSummary_ProgressCappedAtOne(t *testing.T) {
	calc := testCalculator()
	calc.MonthlyGoal = 10
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	records := []models.OvertimeRecord{
		record(1, "2024-03-01", "00:00", "12:00", false),
		record(1, "2024-03-02", "00:00", "12:00", false),
	}

	summary, err := calc.BuildSummary(records, today)
	require.NoError(t, err)
	assert.Equal(t, 1.0, summary.GoalProgress)
}

func TestViews_DerivesPerRecordFields(t *testing.T) {
	calc := testCalculator()

	records := []models.OvertimeRecord{
		record(1, "2024-01-01", "08:00", "17:00", true),
		record(1, "2024-01-02", "12:00", "12:30", true), // clamped
	}

	views, err := calc.Views(records)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.InDelta(t, 8.0, views[0].Hours, 1e-9)
	assert.InDelta(t, 8.0*calc.Rate, views[0].Value, 1e-9)
	assert.Equal(t, 0.0, views[1].Hours)
	assert.Equal(t, 0.0, views[1].Value)
}
