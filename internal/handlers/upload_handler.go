package handlers

import (
	"reviewboard-backend/internal/services"
	"reviewboard-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// UploadHandler serves the optional thumbnail-upload presign endpoint. It is
// only registered when object storage is configured.
type UploadHandler struct {
	minioService *services.MinIOService
	logger       *logrus.Logger
}

func NewUploadHandler(minioService *services.MinIOService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		minioService: minioService,
		logger:       logger,
	}
}

// PresignThumbnail godoc
// @Summary Presign a thumbnail upload
// @Description Generate a short-lived PUT URL for uploading a review thumbnail to object storage
// @Tags upload
// @Accept json
// @Produce json
// @Param filename query string true "Original filename"
// @Success 200 {object} map[string]string
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /reviews/thumbnails/presign [get]
func (h *UploadHandler) PresignThumbnail(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	uploadURL, publicURL, err := h.minioService.PresignThumbnailUpload(filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to presign thumbnail upload")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.JSONResponse(c, fiber.StatusOK, fiber.Map{
		"upload_url": uploadURL,
		"public_url": publicURL,
	})
}
