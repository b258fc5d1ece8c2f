package handler

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"athletehub/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"message": err.Error()})
}

func writeServiceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrStudentIDRequired),
		errors.Is(err, service.ErrIDPictureRequired),
		errors.Is(err, service.ErrInvalidCode),
		errors.Is(err, service.ErrCodeNotUsable):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrEmailNotConfirmed),
		errors.Is(err, service.ErrNotVerified),
		errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrEmailAlreadyRegistered),
		errors.Is(err, service.ErrStudentIDTaken),
		errors.Is(err, service.ErrSubfolderExists):
		status = http.StatusConflict
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrFolderNotFound),
		errors.Is(err, service.ErrFileNotFound),
		errors.Is(err, service.ErrAnnouncementNotFound):
		status = http.StatusNotFound
	}
	return writeError(c, status, err)
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.New("invalid " + name)
	}
	return id, nil
}

func parseLimitOffset(c echo.Context) (int, int) {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	return limit, offset
}

func stringPtr(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

// openUpload turns a multipart file header into a service.FileUpload.
// The returned closer must be deferred by the caller.
func openUpload(header *multipart.FileHeader) (*service.FileUpload, multipart.File, error) {
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	upload := &service.FileUpload{
		Reader:      file,
		Size:        header.Size,
		Filename:    header.Filename,
		ContentType: contentType,
	}
	return upload, file, nil
}
