package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"moneyman/internal/errors"
	"moneyman/internal/service"
)

// ReportHandler handles PDF report generation.
type ReportHandler struct {
	reportService service.ReportService
	logger        *zap.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// GeneratePDF godoc
// @Summary Download the caller's transaction report as PDF
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /generate-pdf [get]
func (h *ReportHandler) GeneratePDF(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	// Render fully before writing so a failure can still produce a 500
	// instead of a truncated stream.
	var buf bytes.Buffer
	if err := h.reportService.Generate(c.Request().Context(), claims.UserID, &buf); err != nil {
		h.logger.Error("report generation failed",
			zap.String("user_id", claims.UserID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to generate PDF report",
		})
	}

	fileName := service.ReportFileName(time.Now())
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", fileName))
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
