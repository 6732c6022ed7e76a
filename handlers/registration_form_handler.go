package handlers

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/aaron24x7direct/facial-detection-backend/database"
	"github.com/aaron24x7direct/facial-detection-backend/extract"
	"github.com/aaron24x7direct/facial-detection-backend/models"
	"github.com/aaron24x7direct/facial-detection-backend/ocr"
)

// RegistrationFormHandler runs the two-phase enrollment flow: extract returns
// what OCR could read for the operator to review, confirm persists whatever
// the operator approved. Nothing is written during extract.
type RegistrationFormHandler struct {
	Engine ocr.Engine
}

func NewRegistrationFormHandler(engine ocr.Engine) *RegistrationFormHandler {
	return &RegistrationFormHandler{Engine: engine}
}

// POST /registration_forms/extract — multipart "pages" images, in page order.
func (h *RegistrationFormHandler) Extract(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	files := form.File["pages"]
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	images := make([][]byte, 0, len(files))
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "UNREADABLE_FILE"})
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "UNREADABLE_FILE"})
		}
		images = append(images, data)
	}

	pages, err := h.Engine.RecognizePages(c.Request().Context(), images)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, map[string]any{"error": "OCR_FAILED"})
	}

	res := extract.Run(pages)
	if !res.Complete() {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":   "EXTRACTION_INCOMPLETE",
			"missing": res.Missing,
			"fields":  res.Fields,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"file_reference": uuid.New().String(),
		"fields":         res.Fields,
		"subjects":       res.Subjects,
		"extracted_text": res.Text,
	})
}

type confirmEnrollmentReq struct {
	UserID        uint                 `json:"user_id" validate:"required"`
	Campus        string               `json:"campus" validate:"required"`
	AcademicTerm  string               `json:"academic_term" validate:"required"`
	AcademicYear  string               `json:"academic_year" validate:"required"`
	StudentNumber string               `json:"student_number" validate:"required"`
	LRN           string               `json:"lrn" validate:"required"`
	YearStatus    string               `json:"year_status" validate:"required"`
	Fullname      string               `json:"fullname" validate:"required"`
	Sex           string               `json:"sex" validate:"required"`
	Course        string               `json:"course" validate:"required"`
	Major         string               `json:"major"`
	Contact       string               `json:"contact" validate:"required"`
	HomeAddress   string               `json:"home_address"`
	Subjects      []extract.SubjectRow `json:"subjects" validate:"required,min=1,dive"`
}

// POST /registration_forms/confirm — operator-approved payload. This is the
// only path that creates a student profile and its subjects.
func (h *RegistrationFormHandler) Confirm(c echo.Context) error {
	var req confirmEnrollmentReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS", "detail": err.Error()})
	}

	var u models.User
	if err := database.DB.First(&u, req.UserID).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "USER_NOT_FOUND"})
	}

	info := models.StudentInfo{
		UserID:        req.UserID,
		Campus:        req.Campus,
		AcademicTerm:  req.AcademicTerm,
		AcademicYear:  req.AcademicYear,
		StudentNumber: req.StudentNumber,
		LRN:           req.LRN,
		YearStatus:    req.YearStatus,
		Fullname:      req.Fullname,
		Sex:           req.Sex,
		Course:        req.Course,
		Major:         req.Major,
		Contact:       req.Contact,
		HomeAddress:   req.HomeAddress,
	}
	for _, s := range req.Subjects {
		info.Subjects = append(info.Subjects, models.Subject{
			SubjectCode: s.SubjectCode,
			Section:     s.Section,
			LecUnits:    s.LecUnits,
			LabUnits:    s.LabUnits,
			Days:        s.Days,
			Time:        s.Time,
			Room:        s.Room,
		})
	}

	if err := database.DB.Create(&info).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, info)
}
