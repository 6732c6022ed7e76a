package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// currentUserID reads the id the JWT middleware attached to the context.
func currentUserID(c echo.Context) uint {
	switch v := c.Get("user_id").(type) {
	case uint:
		return v
	case int:
		return uint(v)
	default:
		return 0
	}
}
