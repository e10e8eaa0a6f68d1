package http

import (
	"context"
	"errors"
	"net/http"

	"margin-tracker/internal/entity"
	"margin-tracker/internal/tracker/dto"
	"margin-tracker/internal/tracker/repository"
	"margin-tracker/internal/tracker/service"
	"margin-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AlertHandler handles HTTP requests for alert configurations and triggered
// alerts.
type AlertHandler struct {
	engine service.AlertEngineService
	logger *logger.Logger
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(engine service.AlertEngineService, logger *logger.Logger) *AlertHandler {
	return &AlertHandler{engine: engine, logger: logger}
}

// RegisterRoutes registers the alert routes to the Echo group.
func (h *AlertHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateAlert)
	g.GET("", h.GetAlerts)
	g.PUT("/:id", h.UpdateAlert)
	g.DELETE("/:id", h.DeleteAlert)
	g.GET("/triggered", h.GetTriggeredAlerts)
	g.POST("/triggered/:id/acknowledge", h.AcknowledgeTriggeredAlert)
	g.POST("/triggered/:id/dismiss", h.DismissTriggeredAlert)
}

// CreateAlert godoc
// @Summary Create an alert configuration
// @Description Register a new alert rule
// @Tags alerts
// @Accept  json
// @Produce  json
// @Param   alert  body    dto.CreateAlertRequest   true    "Alert configuration"
// @Success 201 {object} entity.AlertConfiguration
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts [post]
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	var req dto.CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	config, err := h.engine.AddAlert(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, config)
}

// GetAlerts godoc
// @Summary List alert configurations
// @Tags alerts
// @Produce  json
// @Param   enabled query   bool    false   "Only enabled or disabled configurations"
// @Param   symbol  query   string  false   "Symbol scope"
// @Success 200 {array} entity.AlertConfiguration
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts [get]
func (h *AlertHandler) GetAlerts(c echo.Context) error {
	ctx := c.Request().Context()

	param := dto.GetAlertConfigurationsParam{Symbol: c.QueryParam("symbol")}
	switch c.QueryParam("enabled") {
	case "true":
		enabled := true
		param.Enabled = &enabled
	case "false":
		enabled := false
		param.Enabled = &enabled
	}

	configs, err := h.engine.GetAlerts(ctx, param)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list alert configurations", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list alerts"})
	}
	return c.JSON(http.StatusOK, configs)
}

// UpdateAlert godoc
// @Summary Update an alert configuration
// @Description Partially update an alert rule
// @Tags alerts
// @Accept  json
// @Produce  json
// @Param   id     path    int                     true    "Alert configuration ID"
// @Param   alert  body    dto.UpdateAlertRequest  true    "Fields to update"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /alerts/{id} [put]
func (h *AlertHandler) UpdateAlert(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid alert ID"})
	}

	var req dto.UpdateAlertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	if err := h.engine.UpdateAlert(c.Request().Context(), id, &req); err != nil {
		if errors.Is(err, repository.ErrAlertConfigurationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Alert configuration not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteAlert godoc
// @Summary Delete an alert configuration
// @Description Remove an alert rule; already-triggered alerts are kept
// @Tags alerts
// @Produce  json
// @Param   id  path    int true    "Alert configuration ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts/{id} [delete]
func (h *AlertHandler) DeleteAlert(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid alert ID"})
	}

	if err := h.engine.RemoveAlert(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete alert"})
	}
	return c.NoContent(http.StatusNoContent)
}

// GetTriggeredAlerts godoc
// @Summary List triggered alerts
// @Tags alerts
// @Produce  json
// @Param   status   query   string  false   "triggered | acknowledged | dismissed | expired"
// @Param   severity query   string  false   "low | medium | high | critical"
// @Param   symbol   query   string  false   "Symbol filter"
// @Success 200 {array} entity.TriggeredAlert
// @Failure 500 {object} dto.ErrorResponse
// @Router /alerts/triggered [get]
func (h *AlertHandler) GetTriggeredAlerts(c echo.Context) error {
	ctx := c.Request().Context()

	param := dto.GetTriggeredAlertsParam{Symbol: c.QueryParam("symbol")}
	if status := c.QueryParam("status"); status != "" {
		param.Statuses = []entity.TriggeredAlertStatus{entity.TriggeredAlertStatus(status)}
	}
	if severity := c.QueryParam("severity"); severity != "" {
		param.Severities = []entity.AlertSeverity{entity.AlertSeverity(severity)}
	}
	if alertType := c.QueryParam("type"); alertType != "" {
		param.Types = []entity.AlertType{entity.AlertType(alertType)}
	}

	alerts, err := h.engine.GetTriggeredAlerts(ctx, param)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list triggered alerts", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list triggered alerts"})
	}
	return c.JSON(http.StatusOK, alerts)
}

// AcknowledgeTriggeredAlert godoc
// @Summary Acknowledge a triggered alert
// @Tags alerts
// @Produce  json
// @Param   id  path    int true    "Triggered alert ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /alerts/triggered/{id}/acknowledge [post]
func (h *AlertHandler) AcknowledgeTriggeredAlert(c echo.Context) error {
	return h.setTriggeredStatus(c, h.engine.AcknowledgeAlert)
}

// DismissTriggeredAlert godoc
// @Summary Dismiss a triggered alert
// @Tags alerts
// @Produce  json
// @Param   id  path    int true    "Triggered alert ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /alerts/triggered/{id}/dismiss [post]
func (h *AlertHandler) DismissTriggeredAlert(c echo.Context) error {
	return h.setTriggeredStatus(c, h.engine.DismissAlert)
}

func (h *AlertHandler) setTriggeredStatus(c echo.Context, op func(ctx context.Context, id uint) error) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid triggered alert ID"})
	}

	if err := op(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrTriggeredAlertNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Triggered alert not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
