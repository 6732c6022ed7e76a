package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/aaron24x7direct/facial-detection-backend/database"
	"github.com/aaron24x7direct/facial-detection-backend/models"
)

// UserImageHandler manages the face-dataset images a user uploads for the
// recognition model.
type UserImageHandler struct {
	UploadDir string
}

func NewUserImageHandler(uploadDir string) *UserImageHandler {
	_ = os.MkdirAll(uploadDir, 0o755)
	return &UserImageHandler{UploadDir: uploadDir}
}

func (h *UserImageHandler) saveFile(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(fh.Filename)
	path := filepath.Join(h.UploadDir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path, nil
}

// POST /facial_detection_user_images — up to 5 images, fields image_1..image_5.
func (h *UserImageHandler) CreateBatch(c echo.Context) error {
	uid := currentUserID(c)
	if uid == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
	}

	var saved []models.FacialDetectionUserImage
	for i := 1; i <= 5; i++ {
		fh, err := c.FormFile(fmt.Sprintf("image_%d", i))
		if err != nil {
			continue // absent slots are fine
		}
		path, err := h.saveFile(fh)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "SAVE_FAILED"})
		}
		img := models.FacialDetectionUserImage{UserID: uid, ImagePath: path}
		if err := database.DB.Create(&img).Error; err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}
		saved = append(saved, img)
	}
	return c.JSON(http.StatusCreated, saved)
}

// POST /facial_detection_user_images/upload-image — single image.
func (h *UserImageHandler) CreateOne(c echo.Context) error {
	uid := currentUserID(c)
	if uid == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	path, err := h.saveFile(fh)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "SAVE_FAILED"})
	}

	img := models.FacialDetectionUserImage{UserID: uid, ImagePath: path}
	if err := database.DB.Create(&img).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, img)
}

// GET /facial_detection_user_images — own images.
func (h *UserImageHandler) List(c echo.Context) error {
	uid := currentUserID(c)
	if uid == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
	}

	var imgs []models.FacialDetectionUserImage
	if err := database.DB.Where("user_id = ?", uid).Find(&imgs).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, imgs)
}

// GET /facial_detection_user_images/datasets — every user's images, for
// training the recognition model.
func (h *UserImageHandler) Datasets(c echo.Context) error {
	var imgs []models.FacialDetectionUserImage
	if err := database.DB.Preload("User").Find(&imgs).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, imgs)
}

// DELETE /facial_detection_user_images/:id
func (h *UserImageHandler) Delete(c echo.Context) error {
	uid := currentUserID(c)
	if uid == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "UNAUTHORIZED"})
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}

	var img models.FacialDetectionUserImage
	if err := database.DB.Where("id = ? AND user_id = ?", id, uid).First(&img).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "IMAGE_NOT_FOUND"})
	}

	if _, err := os.Stat(img.ImagePath); err == nil {
		if err := os.Remove(img.ImagePath); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "FILE_DELETE_FAILED"})
		}
	}
	if err := database.DB.Delete(&img).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
