package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aaron24x7direct/facial-detection-backend/database"
	"github.com/aaron24x7direct/facial-detection-backend/models"
)

type RoleHandler struct{}

func NewRoleHandler() *RoleHandler { return &RoleHandler{} }

// GET /roles
func (h *RoleHandler) List(c echo.Context) error {
	var roles []models.Role
	if err := database.DB.Order("id ASC").Find(&roles).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, roles)
}

// POST /roles
func (h *RoleHandler) Create(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	role := models.Role{Name: req.Name}
	if err := database.DB.Create(&role).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, role)
}
