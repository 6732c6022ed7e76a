package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aaron24x7direct/facial-detection-backend/attendance"
	"github.com/aaron24x7direct/facial-detection-backend/database"
	"github.com/aaron24x7direct/facial-detection-backend/models"
)

// FacialDetectionHandler turns a recognized-face event into an attendance
// record, or a rejection the kiosk can display.
type FacialDetectionHandler struct {
	Service *attendance.Service
}

func NewFacialDetectionHandler(svc *attendance.Service) *FacialDetectionHandler {
	return &FacialDetectionHandler{Service: svc}
}

// POST /facial_detections
func (h *FacialDetectionHandler) Create(c echo.Context) error {
	uid := currentUserID(c)
	if uid == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
	}

	subjects, err := database.EnrolledSubjects(uid)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	decision, err := h.Service.Process(time.Now(), uid, subjects)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	if !decision.Recorded {
		return c.JSON(http.StatusConflict, map[string]any{"error": "REJECTED", "reason": decision.Reason})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"status":       decision.Status,
		"subject_code": decision.Subject.SubjectCode,
	})
}

// GET /facial_detections — the caller's attendance records.
func (h *FacialDetectionHandler) List(c echo.Context) error {
	uid := currentUserID(c)
	if uid == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
	}

	var rows []models.FacialDetection
	if err := database.DB.
		Preload("Subject").
		Where("user_id = ?", uid).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}
