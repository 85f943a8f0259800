package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sharecare/internal/delivery/http/response"
	"sharecare/internal/usecase"
)

// UploadHandler holds dependencies for the standalone upload endpoint
type UploadHandler struct {
	uc usecase.UploadUsecase
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(uc usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload stores one image and returns its public URL
func (h *UploadHandler) Upload(c echo.Context) error {
	uploads, err := readUploads(c, "file")
	if err != nil {
		return err
	}
	if len(uploads) == 0 {
		return response.BadRequest(c, "VALIDATION_ERROR", "A file is required")
	}

	url, err := h.uc.Upload(c.Request().Context(), &uploads[0])
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "File uploaded successfully")
}
