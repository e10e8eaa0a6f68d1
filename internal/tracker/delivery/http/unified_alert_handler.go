package http

import (
	"errors"
	"net/http"

	"margin-tracker/internal/entity"
	"margin-tracker/internal/tracker/dto"
	"margin-tracker/internal/tracker/service"
	"margin-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// UnifiedAlertHandler handles HTTP requests for the merged alert feed.
type UnifiedAlertHandler struct {
	unified service.UnifiedAlertService
	logger  *logger.Logger
}

// NewUnifiedAlertHandler creates a new UnifiedAlertHandler.
func NewUnifiedAlertHandler(unified service.UnifiedAlertService, logger *logger.Logger) *UnifiedAlertHandler {
	return &UnifiedAlertHandler{unified: unified, logger: logger}
}

// RegisterRoutes registers the unified alert routes to the Echo group.
func (h *UnifiedAlertHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetUnifiedAlerts)
	g.GET("/stats", h.GetUnifiedAlertStats)
	g.POST("/:id/acknowledge", h.AcknowledgeUnifiedAlert)
	g.POST("/:id/dismiss", h.DismissUnifiedAlert)
}

// GetUnifiedAlerts godoc
// @Summary List the unified alert feed
// @Description Triggered trading alerts and risk alerts merged, newest first
// @Tags alerts
// @Produce  json
// @Param   source   query   string  false   "trading | risk"
// @Param   status   query   string  false   "Alert status"
// @Param   severity query   string  false   "low | medium | high | critical"
// @Param   symbol   query   string  false   "Symbol filter"
// @Success 200 {array} dto.UnifiedAlert
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts/unified [get]
func (h *UnifiedAlertHandler) GetUnifiedAlerts(c echo.Context) error {
	ctx := c.Request().Context()

	filter := dto.UnifiedAlertFilter{
		Source:   dto.UnifiedAlertSource(c.QueryParam("source")),
		Status:   c.QueryParam("status"),
		Severity: entity.AlertSeverity(c.QueryParam("severity")),
		Symbol:   c.QueryParam("symbol"),
	}

	alerts, err := h.unified.List(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list unified alerts", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list unified alerts"})
	}
	return c.JSON(http.StatusOK, alerts)
}

// GetUnifiedAlertStats godoc
// @Summary Aggregate counts over the unified alert feed
// @Tags alerts
// @Produce  json
// @Success 200 {object} dto.UnifiedAlertStats
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts/unified/stats [get]
func (h *UnifiedAlertHandler) GetUnifiedAlertStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.unified.Stats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to compute unified alert stats", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to compute stats"})
	}
	return c.JSON(http.StatusOK, stats)
}

// AcknowledgeUnifiedAlert godoc
// @Summary Acknowledge a unified alert
// @Description Routes to the owning subsystem by id prefix (trading-N or risk-N)
// @Tags alerts
// @Produce  json
// @Param   id  path    string  true    "Unified alert ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts/unified/{id}/acknowledge [post]
func (h *UnifiedAlertHandler) AcknowledgeUnifiedAlert(c echo.Context) error {
	if err := h.unified.Acknowledge(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrUnknownUnifiedAlertID) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// DismissUnifiedAlert godoc
// @Summary Dismiss a unified alert
// @Description Dismissing a risk alert acknowledges it
// @Tags alerts
// @Produce  json
// @Param   id  path    string  true    "Unified alert ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts/unified/{id}/dismiss [post]
func (h *UnifiedAlertHandler) DismissUnifiedAlert(c echo.Context) error {
	if err := h.unified.Dismiss(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrUnknownUnifiedAlertID) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
