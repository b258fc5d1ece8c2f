package handler

import (
	"errors"
	"net/http"

	"athletehub/api/middleware"
	"athletehub/internal/dto"
	"athletehub/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type FolderHandler struct {
	Service  *service.FolderService
	Validate *validator.Validate
}

func NewFolderHandler(svc *service.FolderService, validate *validator.Validate) *FolderHandler {
	return &FolderHandler{Service: svc, Validate: validate}
}

func (h *FolderHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.CreateFolderRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	folder, err := h.Service.CreateFolder(c.Request().Context(), userID, req.Name, req.Description, isPublic)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.FolderResponseFromEntity(folder))
}

func (h *FolderHandler) List(c echo.Context) error {
	folders, err := h.Service.ListFolders(c.Request().Context(), middleware.IsAdmin(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.FolderResponsesFromEntities(folders))
}

func (h *FolderHandler) Update(c echo.Context) error {
	folderID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.UpdateFolderRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	folder, err := h.Service.UpdateFolder(c.Request().Context(), folderID, req.Name, req.Description, req.IsPublic)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.FolderResponseFromEntity(folder))
}

func (h *FolderHandler) Delete(c echo.Context) error {
	folderID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.DeleteFolder(c.Request().Context(), folderID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateStudentFolder creates the caller's own subfolder inside a
// sport folder.
func (h *FolderHandler) CreateStudentFolder(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	sportFolderID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.CreateStudentFolderRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	folder, err := h.Service.CreateStudentFolder(c.Request().Context(), userID, sportFolderID, req.Name)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.StudentFolderResponseFromEntity(folder))
}

func (h *FolderHandler) ListStudentFolders(c echo.Context) error {
	sportFolderID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	folders, err := h.Service.ListStudentFolders(c.Request().Context(), sportFolderID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.StudentFolderResponsesFromEntities(folders))
}

// MyStudentFolder returns the caller's subfolder, or 404 when none
// exists yet.
func (h *FolderHandler) MyStudentFolder(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	folder, err := h.Service.FindStudentFolder(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	if folder == nil {
		return writeError(c, http.StatusNotFound, errors.New("no subfolder"))
	}
	return c.JSON(http.StatusOK, dto.StudentFolderResponseFromEntity(folder))
}

func (h *FolderHandler) RenameStudentFolder(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	folderID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.RenameStudentFolderRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	folder, err := h.Service.RenameStudentFolder(c.Request().Context(), userID, folderID, req.Name)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.StudentFolderResponseFromEntity(folder))
}

func (h *FolderHandler) DeleteStudentFolder(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	folderID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.DeleteStudentFolder(c.Request().Context(), userID, middleware.IsAdmin(c), folderID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
