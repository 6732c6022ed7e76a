package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/aaron24x7direct/facial-detection-backend/database"
	"github.com/aaron24x7direct/facial-detection-backend/models"
)

type AccountHandler struct{}

func NewAccountHandler() *AccountHandler { return &AccountHandler{} }

type changePasswordReq struct {
	OldPassword        string `json:"old_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

type changeDetailsReq struct {
	Fullname    string `json:"fullname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Username    string `json:"username"`
}

// GET /accounts/user — current user with role, profiles and enrolled subjects.
func (h *AccountHandler) Me(c echo.Context) error {
	uid := currentUserID(c)
	if uid == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
	}

	var u models.User
	if err := database.DB.
		Preload("Role").
		Preload("StudentInfos").
		Preload("StudentInfos.Subjects").
		First(&u, uid).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "USER_NOT_FOUND"})
	}
	return c.JSON(http.StatusOK, u)
}

// PUT /accounts/change-password
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	uid := currentUserID(c)
	if uid == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
	}

	var req changePasswordReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	var u models.User
	if err := database.DB.First(&u, uid).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "USER_NOT_FOUND"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.OldPassword)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "OLD_PASSWORD_INCORRECT"})
	}
	if req.NewPassword != req.ConfirmNewPassword {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "PASSWORD_MISMATCH"})
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err := database.DB.Model(&models.User{}).Where("id = ?", uid).
		Update("password", string(hash)).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// PUT /accounts/change-account-details
func (h *AccountHandler) ChangeDetails(c echo.Context) error {
	uid := currentUserID(c)
	if uid == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
	}

	var req changeDetailsReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.Fullname = strings.TrimSpace(req.Fullname)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Username = strings.TrimSpace(req.Username)
	if req.Fullname == "" || req.Email == "" || req.Username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", uid).Updates(map[string]any{
		"fullname":     req.Fullname,
		"email":        req.Email,
		"phone_number": strings.TrimSpace(req.PhoneNumber),
		"username":     req.Username,
	}).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"ok": true})
}
