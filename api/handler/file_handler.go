package handler

import (
	"errors"
	"fmt"
	"net/http"

	"athletehub/api/middleware"
	"athletehub/internal/dto"
	"athletehub/internal/service"

	"github.com/labstack/echo/v4"
)

type FileHandler struct {
	Service *service.FileService
}

func NewFileHandler(svc *service.FileService) *FileHandler {
	return &FileHandler{Service: svc}
}

func (h *FileHandler) UploadToStudentFolder(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	folderID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	header, err := c.FormFile("file")
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("missing file"))
	}
	upload, file, err := openUpload(header)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	defer file.Close()

	record, err := h.Service.UploadToStudentFolder(c.Request().Context(), userID, folderID, *upload)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.FileResponseFromEntity(record))
}

func (h *FileHandler) UploadToFolder(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	folderID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	header, err := c.FormFile("file")
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("missing file"))
	}
	upload, file, err := openUpload(header)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	defer file.Close()

	record, err := h.Service.UploadToFolder(c.Request().Context(), userID, folderID, *upload)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.FileResponseFromEntity(record))
}

func (h *FileHandler) ListByFolder(c echo.Context) error {
	folderID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	files, err := h.Service.ListByFolder(c.Request().Context(), folderID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.FileResponsesFromEntities(files))
}

func (h *FileHandler) ListByStudentFolder(c echo.Context) error {
	folderID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	files, err := h.Service.ListByStudentFolder(c.Request().Context(), folderID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.FileResponsesFromEntities(files))
}

func (h *FileHandler) ListOwn(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	files, err := h.Service.ListOwn(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.FileResponsesFromEntities(files))
}

// Download streams the object with the original filename, the same
// path the dashboards fall back to when a public URL is not served.
func (h *FileHandler) Download(c echo.Context) error {
	fileID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	record, body, err := h.Service.Download(c.Request().Context(), fileID)
	if err != nil {
		return writeServiceError(c, err)
	}
	defer body.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", record.OriginalName))
	return c.Stream(http.StatusOK, record.MimeType, body)
}

func (h *FileHandler) FileURL(c echo.Context) error {
	fileID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	url, err := h.Service.FileURL(c.Request().Context(), fileID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.FileURLResponse{URL: url})
}

func (h *FileHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	fileID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.Delete(c.Request().Context(), userID, middleware.IsAdmin(c), fileID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
