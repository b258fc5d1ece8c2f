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

type AnnouncementHandler struct {
	Service  *service.AnnouncementService
	Validate *validator.Validate
}

func NewAnnouncementHandler(svc *service.AnnouncementService, validate *validator.Validate) *AnnouncementHandler {
	return &AnnouncementHandler{Service: svc, Validate: validate}
}

func (h *AnnouncementHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.CreateAnnouncementRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	announcement, err := h.Service.Create(c.Request().Context(), userID, req.Title, req.Content)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.AnnouncementResponseFromEntity(announcement))
}

func (h *AnnouncementHandler) List(c echo.Context) error {
	announcements, err := h.Service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.AnnouncementResponsesFromEntities(announcements))
}

func (h *AnnouncementHandler) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	var req dto.UpdateAnnouncementRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	announcement, err := h.Service.Update(c.Request().Context(), id, req.Title, req.Content)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.AnnouncementResponseFromEntity(announcement))
}

func (h *AnnouncementHandler) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
