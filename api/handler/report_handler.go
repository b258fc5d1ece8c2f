package handler

import (
	"fmt"
	"net/http"

	"athletehub/internal/service"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	Reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{Reports: reports}
}

func (h *ReportHandler) AthleteCSV(c echo.Context) error {
	data, filename, err := h.Reports.AthleteCSV(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv", data)
}
