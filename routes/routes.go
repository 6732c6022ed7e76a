package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/aaron24x7direct/facial-detection-backend/attendance"
	"github.com/aaron24x7direct/facial-detection-backend/config"
	"github.com/aaron24x7direct/facial-detection-backend/database"
	"github.com/aaron24x7direct/facial-detection-backend/handlers"
	"github.com/aaron24x7direct/facial-detection-backend/middlewares"
	"github.com/aaron24x7direct/facial-detection-backend/ocr"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	acct := handlers.NewAccountHandler()
	role := handlers.NewRoleHandler()
	reg := handlers.NewRegistrationFormHandler(ocr.NewTesseractEngine(cfg.OCRLangs...))
	fd := handlers.NewFacialDetectionHandler(attendance.NewService(database.AttendanceStore{}))
	img := handlers.NewUserImageHandler(cfg.UploadDir)

	e.GET("/health", handlers.Health)

	// ===== Public auth =====
	e.POST("/auth/register", auth.Register)
	e.POST("/auth/token", auth.Login)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// ===== Accounts =====
	accounts := e.Group("/accounts", authMW)
	accounts.GET("/user", acct.Me)
	accounts.PUT("/change-password", acct.ChangePassword)
	accounts.PUT("/change-account-details", acct.ChangeDetails)

	// ===== Admin =====
	admin := e.Group("", authMW, middlewares.RequireRole("admin"))
	admin.GET("/auth/users", auth.Users)
	admin.GET("/roles", role.List)
	admin.POST("/roles", role.Create)

	// Enrollment review: extract returns OCR results for operator correction,
	// confirm is the explicit persist step.
	admin.POST("/registration_forms/extract", reg.Extract)
	admin.POST("/registration_forms/confirm", reg.Confirm)

	admin.GET("/facial_detection_user_images/datasets", img.Datasets)

	// ===== Authenticated users =====
	user := e.Group("", authMW)
	user.POST("/facial_detections", fd.Create)
	user.GET("/facial_detections", fd.List)

	user.POST("/facial_detection_user_images", img.CreateBatch)
	user.POST("/facial_detection_user_images/upload-image", img.CreateOne)
	user.GET("/facial_detection_user_images", img.List)
	user.DELETE("/facial_detection_user_images/:id", img.Delete)
}
