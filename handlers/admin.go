package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"extratime/config"
	"extratime/database"
	"extratime/models"
	"extratime/timesheet"
)

// AdminHandler serves the user-management and all-users views. Every route
// here sits behind middleware.RequireAdmin.
type AdminHandler struct {
	config *config.Config
	calc   timesheet.Calculator
	log    zerolog.Logger
}

func NewAdminHandler(cfg *config.Config, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{config: cfg, calc: cfg.Calculator(), log: log}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	var users []models.User
	database.GetDB().Order("created_at desc").Find(&users)
	writeJSON(w, http.StatusOK, users)
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=5"`
	IsAdmin  bool   `json:"is_admin"`
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var existing models.User
	if err := database.GetDB().Where("username = ?", req.Username).First(&existing).Error; err == nil {
		writeError(w, http.StatusConflict, "username already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		IsAdmin:      req.IsAdmin,
	}
	if err := database.GetDB().Create(&user).Error; err != nil {
		h.log.Error().Err(err).Msg("failed to create user")
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	h.log.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("user created")
	writeJSON(w, http.StatusCreated, user)
}

type updateUserRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"omitempty,email"`
	// Password is optional: leave empty to keep the current one.
	Password string `json:"password" validate:"omitempty,min=5"`
	IsAdmin  *bool  `json:"is_admin"`
}

func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.loadUser(w, r)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Username != user.Username {
		var existing models.User
		if err := database.GetDB().Where("username = ?", req.Username).First(&existing).Error; err == nil {
			writeError(w, http.StatusConflict, "username already exists")
			return
		}
	}

	user.Name = req.Name
	user.Username = req.Username
	user.Email = req.Email
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to hash password")
			return
		}
		user.PasswordHash = string(hashed)
	}

	if err := database.GetDB().Save(&user).Error; err != nil {
		h.log.Error().Err(err).Uint("user_id", user.ID).Msg("failed to update user")
		writeError(w, http.StatusInternalServerError, "failed to update user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// DeleteUser removes an account and cascade-deletes its overtime records.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.loadUser(w, r)
	if !ok {
		return
	}

	db := database.GetDB()
	if err := db.Where("user_id = ?", user.ID).Delete(&models.OvertimeRecord{}).Error; err != nil {
		h.log.Error().Err(err).Uint("user_id", user.ID).Msg("failed to delete user records")
		writeError(w, http.StatusInternalServerError, "failed to delete user records")
		return
	}
	if err := db.Delete(&user).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}

	h.log.Info().Uint("user_id", user.ID).Msg("user deleted with records")
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AllRecords lists every user's records with owner details and derived
// hours/value, newest first.
func (h *AdminHandler) AllRecords(w http.ResponseWriter, r *http.Request) {
	var records []models.OvertimeRecord
	database.GetDB().Preload("User").Order("date desc").Find(&records)

	views, err := h.calc.Views(records)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// AdminReport aggregates the whole record collection and breaks it down per
// non-admin user.
func (h *AdminHandler) AdminReport(w http.ResponseWriter, r *http.Request) {
	var users []models.User
	database.GetDB().Order("id asc").Find(&users)

	var records []models.OvertimeRecord
	database.GetDB().Find(&records)

	report, err := h.calc.BuildAdminReport(users, records)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// ExportCSV streams one month of records as a spreadsheet-friendly CSV,
// including the derived hours and value per row.
func (h *AdminHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "invalid month")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		writeError(w, http.StatusBadRequest, "invalid year")
		return
	}

	startDate := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endDate := startDate.AddDate(0, 1, 0)

	var records []models.OvertimeRecord
	database.GetDB().Preload("User").
		Where("date >= ? AND date < ?", startDate, endDate).
		Order("date asc, user_id asc").
		Find(&records)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=overtime_%d_%02d.csv", year, month))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	_ = writer.Write([]string{"Employee", "Date", "Start", "End", "Lunch", "Hours", "Value", "Observations"})
	for _, rec := range records {
		hours, err := h.calc.RecordHours(rec)
		if err != nil {
			h.log.Error().Err(err).Uint("record_id", rec.ID).Msg("skipping unexportable record")
			continue
		}
		lunch := "no"
		if rec.HasLunch {
			lunch = "yes"
		}
		_ = writer.Write([]string{
			rec.User.DisplayName(),
			rec.Date.Format("2006-01-02"),
			rec.StartTime,
			rec.EndTime,
			lunch,
			fmt.Sprintf("%.1f", hours),
			fmt.Sprintf("%.2f", h.calc.Value(hours)),
			rec.Observations,
		})
	}
}

func (h *AdminHandler) loadUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return models.User{}, false
	}

	var user models.User
	if err := database.GetDB().First(&user, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "user not found")
		return models.User{}, false
	}
	return user, true
}
