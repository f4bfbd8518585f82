package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"extratime/config"
	"extratime/database"
	"extratime/metrics"
	"extratime/middleware"
	"extratime/models"
	"extratime/timesheet"
)

type OvertimeHandler struct {
	config *config.Config
	calc   timesheet.Calculator
	log    zerolog.Logger
}

func NewOvertimeHandler(cfg *config.Config, log zerolog.Logger) *OvertimeHandler {
	return &OvertimeHandler{config: cfg, calc: cfg.Calculator(), log: log}
}

// recordRequest is the payload for creating or updating an overtime record.
// End time only has to differ from the start; an earlier end means the shift
// crossed midnight, which the engine rolls over to the next day.
type recordRequest struct {
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime      string `json:"end_time" validate:"required,datetime=15:04,nefield=StartTime"`
	HasLunch     bool   `json:"has_lunch"`
	Observations string `json:"observations" validate:"max=500"`
	UserID       uint   `json:"user_id"` // admins may log on behalf of another user
}

// Dashboard returns the session user's lifetime totals, monthly-goal
// progress, and pending-notification count.
func (h *OvertimeHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var records []models.OvertimeRecord
	database.GetDB().Where("user_id = ?", user.ID).Order("date desc").Find(&records)

	summary, err := h.calc.BuildSummary(records, time.Now())
	if err != nil {
		h.respondCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// ListRecords returns the session user's history, newest first, each row
// carrying its derived hours and value.
func (h *OvertimeHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var records []models.OvertimeRecord
	database.GetDB().Where("user_id = ?", user.ID).Order("date desc").Find(&records)

	views, err := h.calc.Views(records)
	if err != nil {
		h.respondCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *OvertimeHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req recordRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	date, hours, err := h.resolveEntry(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	targetUserID := user.ID
	if req.UserID != 0 && user.IsAdmin {
		targetUserID = req.UserID
	}
	if !user.CanManageRecordsFor(targetUserID) {
		writeError(w, http.StatusForbidden, "cannot log overtime for another user")
		return
	}

	rec := models.OvertimeRecord{
		UserID:       targetUserID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		HasLunch:     req.HasLunch,
		Observations: req.Observations,
	}
	if err := database.GetDB().Create(&rec).Error; err != nil {
		h.log.Error().Err(err).Msg("failed to create overtime record")
		writeError(w, http.StatusInternalServerError, "failed to create record")
		return
	}

	metrics.RecordsCreatedTotal.Inc()
	h.log.Info().Uint("record_id", rec.ID).Uint("user_id", targetUserID).Float64("hours", hours).Msg("overtime record created")

	writeJSON(w, http.StatusCreated, timesheet.RecordView{
		OvertimeRecord: rec,
		Hours:          hours,
		Value:          h.calc.Value(hours),
	})
}

func (h *OvertimeHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	rec, ok := h.loadRecord(w, r)
	if !ok {
		return
	}
	if !user.CanManageRecordsFor(rec.UserID) {
		writeError(w, http.StatusForbidden, "not your record")
		return
	}

	var req recordRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	date, hours, err := h.resolveEntry(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec.Date = date
	rec.StartTime = req.StartTime
	rec.EndTime = req.EndTime
	rec.HasLunch = req.HasLunch
	rec.Observations = req.Observations

	if err := database.GetDB().Save(&rec).Error; err != nil {
		h.log.Error().Err(err).Uint("record_id", rec.ID).Msg("failed to update overtime record")
		writeError(w, http.StatusInternalServerError, "failed to update record")
		return
	}

	writeJSON(w, http.StatusOK, timesheet.RecordView{
		OvertimeRecord: rec,
		Hours:          hours,
		Value:          h.calc.Value(hours),
	})
}

func (h *OvertimeHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	rec, ok := h.loadRecord(w, r)
	if !ok {
		return
	}
	if !user.CanManageRecordsFor(rec.UserID) {
		writeError(w, http.StatusForbidden, "not your record")
		return
	}

	if err := database.GetDB().Delete(&rec).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete record")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// PersonalReport totals the session user's records over the selected period
// (?period=week|month|year, anything else meaning all time).
func (h *OvertimeHandler) PersonalReport(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	period := timesheet.ParsePeriod(r.URL.Query().Get("period"))

	var records []models.OvertimeRecord
	database.GetDB().Where("user_id = ?", user.ID).Order("date desc").Find(&records)

	report, err := h.calc.BuildPersonalReport(records, period, time.Now())
	if err != nil {
		h.respondCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// resolveEntry parses the submitted date and proves the interval yields a
// positive raw span once overnight rollover is applied.
func (h *OvertimeHandler) resolveEntry(req recordRequest) (time.Time, float64, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return time.Time{}, 0, errors.New("invalid date format")
	}

	// Validate the span without the lunch deduction: the pair itself must
	// be computable and positive, even if lunch later clamps it to zero.
	span, err := h.calc.Hours(req.StartTime, req.EndTime, false)
	if err != nil {
		return time.Time{}, 0, err
	}
	if span <= 0 {
		return time.Time{}, 0, errors.New("end time must produce a positive working span")
	}

	hours, err := h.calc.Hours(req.StartTime, req.EndTime, req.HasLunch)
	if err != nil {
		return time.Time{}, 0, err
	}
	return date, hours, nil
}

func (h *OvertimeHandler) loadRecord(w http.ResponseWriter, r *http.Request) (models.OvertimeRecord, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return models.OvertimeRecord{}, false
	}

	var rec models.OvertimeRecord
	if err := database.GetDB().First(&rec, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "record not found")
		return models.OvertimeRecord{}, false
	}
	return rec, true
}

func (h *OvertimeHandler) respondCalcError(w http.ResponseWriter, err error) {
	if errors.Is(err, timesheet.ErrInvalidTimeFormat) {
		h.log.Error().Err(err).Msg("stored record has malformed clock times")
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "failed to compute totals")
}
