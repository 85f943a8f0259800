// Package handler contains the Echo handlers for every API surface.
package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"sharecare/internal/delivery/http/middleware"
	"sharecare/internal/delivery/http/response"
	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/usecase"
)

// uidFrom returns the caller uid set by the auth middleware.
func uidFrom(c echo.Context) string {
	uid, _ := c.Get(middleware.ContextKeyUID).(string)

	return uid
}

// adminEmailFrom returns the admin identity set by the admin middleware.
func adminEmailFrom(c echo.Context) string {
	email, _ := c.Get(middleware.ContextKeyAdminEmail).(string)

	return email
}

// readUploads loads every file under the multipart field into memory.
func readUploads(c echo.Context, field string) ([]usecase.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "multipart form expected")
	}

	files := form.File[field]
	uploads := make([]usecase.ImageUpload, 0, len(files))
	for _, file := range files {
		upload, err := readUpload(file)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, *upload)
	}

	return uploads, nil
}

func readUpload(file *multipart.FileHeader) (*usecase.ImageUpload, error) {
	src, err := file.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}

	return &usecase.ImageUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// handleAppError renders application errors; anything else propagates to the
// global error handler with its stack attached.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "sharecare",
	})
}
