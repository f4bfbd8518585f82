package handlers

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extratime/config"
)

func testOvertimeHandler() *OvertimeHandler {
	cfg := &config.Config{OvertimeRate: 15.75, LunchDeduction: 1, MonthlyGoal: 160}
	return NewOvertimeHandler(cfg, zerolog.Nop())
}

func TestRecordRequestValidation(t *testing.T) {
	cases := []struct {
		name    string
		req     recordRequest
		wantErr string
	}{
		{
			name: "valid day shift",
			req:  recordRequest{Date: "2024-01-01", StartTime: "08:00", EndTime: "17:00"},
		},
		{
			name:    "missing date",
			req:     recordRequest{StartTime: "08:00", EndTime: "17:00"},
			wantErr: "date is required",
		},
		{
			name:    "bad date layout",
			req:     recordRequest{Date: "01/01/2024", StartTime: "08:00", EndTime: "17:00"},
			wantErr: "date must match the format 2006-01-02",
		},
		{
			name:    "bad clock time",
			req:     recordRequest{Date: "2024-01-01", StartTime: "8am", EndTime: "17:00"},
			wantErr: "starttime must match the format 15:04",
		},
		{
			name:    "end equals start",
			req:     recordRequest{Date: "2024-01-01", StartTime: "08:00", EndTime: "08:00"},
			wantErr: "endtime must differ from starttime",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.req)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			// Same flattening the request path applies.
			assert.Contains(t, validationMessage(err), tc.wantErr)
		})
	}
}

func TestResolveEntry(t *testing.T) {
	h := testOvertimeHandler()

	t.Run("plain shift", func(t *testing.T) {
		date, hours, err := h.resolveEntry(recordRequest{Date: "2024-01-01", StartTime: "08:00", EndTime: "17:00"})
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", date.Format("2006-01-02"))
		assert.InDelta(t, 9.0, hours, 1e-9)
	})

	t.Run("overnight shift accepted", func(t *testing.T) {
		_, hours, err := h.resolveEntry(recordRequest{Date: "2024-01-02", StartTime: "20:00", EndTime: "04:00"})
		require.NoError(t, err)
		assert.InDelta(t, 8.0, hours, 1e-9)
	})

	t.Run("lunch may clamp to zero but span check ignores lunch", func(t *testing.T) {
		_, hours, err := h.resolveEntry(recordRequest{Date: "2024-01-03", StartTime: "12:00", EndTime: "12:30", HasLunch: true})
		require.NoError(t, err)
		assert.Equal(t, 0.0, hours)
	})

	t.Run("unparsable date rejected", func(t *testing.T) {
		_, _, err := h.resolveEntry(recordRequest{Date: "bogus", StartTime: "08:00", EndTime: "17:00"})
		assert.Error(t, err)
	})

	t.Run("unparsable time rejected", func(t *testing.T) {
		_, _, err := h.resolveEntry(recordRequest{Date: "2024-01-01", StartTime: "99:99", EndTime: "17:00"})
		assert.Error(t, err)
	})
}
