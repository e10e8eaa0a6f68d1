package http

import (
	"errors"
	"net/http"
	"strconv"

	"margin-tracker/internal/tracker/dto"
	"margin-tracker/internal/tracker/repository"
	"margin-tracker/internal/tracker/service"
	"margin-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PositionHandler handles HTTP requests for tracked positions.
type PositionHandler struct {
	positionService    service.PositionService
	dailyUpdateService service.DailyUpdateService
	marketRepo         repository.MarketDataRepository
	logger             *logger.Logger
}

// NewPositionHandler creates a new PositionHandler.
func NewPositionHandler(
	positionService service.PositionService,
	dailyUpdateService service.DailyUpdateService,
	marketRepo repository.MarketDataRepository,
	logger *logger.Logger,
) *PositionHandler {
	return &PositionHandler{
		positionService:    positionService,
		dailyUpdateService: dailyUpdateService,
		marketRepo:         marketRepo,
		logger:             logger,
	}
}

// RegisterRoutes registers the position routes to the Echo group.
func (h *PositionHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreatePosition)
	g.GET("", h.GetPositions)
	g.GET("/:id", h.GetPositionByID)
	g.PUT("/:id", h.UpdatePosition)
	g.DELETE("/:id", h.DeletePosition)
	g.POST("/:id/renew", h.RenewPosition)
	g.POST("/:id/refresh", h.RefreshPosition)
	g.POST("/risk-alerts/:id/acknowledge", h.AcknowledgeRiskAlert)
}

// CreatePosition godoc
// @Summary Create a tracked position
// @Description Start tracking a new margin position
// @Tags positions
// @Accept  json
// @Produce  json
// @Param   position  body    dto.CreatePositionRequest   true    "Position to track"
// @Success 201 {object} entity.TrackedPosition
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /positions [post]
func (h *PositionHandler) CreatePosition(c echo.Context) error {
	var req dto.CreatePositionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	position, err := h.positionService.Create(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, position)
}

// GetPositions godoc
// @Summary List tracked positions
// @Description List positions, optionally filtered by lifecycle bucket
// @Tags positions
// @Produce  json
// @Param   status  query   string  false   "active | expired | closed"
// @Success 200 {array} entity.TrackedPosition
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /positions [get]
func (h *PositionHandler) GetPositions(c echo.Context) error {
	ctx := c.Request().Context()

	filter := c.QueryParam("status")
	if filter == "" {
		positions, err := h.positionService.List(ctx)
		if err != nil {
			h.logger.ErrorContext(ctx, "Failed to list positions", logger.ErrorField(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to list positions"})
		}
		return c.JSON(http.StatusOK, positions)
	}

	positions, err := h.positionService.ListByStatus(ctx, dto.PositionStatusFilter(filter))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, positions)
}

// GetPositionByID godoc
// @Summary Get a tracked position
// @Description Get one position with its daily updates and risk alerts
// @Tags positions
// @Produce  json
// @Param   id  path    int true    "Position ID"
// @Success 200 {object} entity.TrackedPosition
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /positions/{id} [get]
func (h *PositionHandler) GetPositionByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid position ID"})
	}

	position, err := h.positionService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Position not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, position)
}

// UpdatePosition godoc
// @Summary Update a tracked position
// @Description Partially update a position's editable fields
// @Tags positions
// @Accept  json
// @Produce  json
// @Param   id        path    int                         true    "Position ID"
// @Param   position  body    dto.UpdatePositionRequest   true    "Fields to update"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /positions/{id} [put]
func (h *PositionHandler) UpdatePosition(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid position ID"})
	}

	var req dto.UpdatePositionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}

	if err := h.positionService.Update(c.Request().Context(), id, &req); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// DeletePosition godoc
// @Summary Remove a tracked position
// @Description Remove a position and its history regardless of status
// @Tags positions
// @Produce  json
// @Param   id  path    int true    "Position ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /positions/{id} [delete]
func (h *PositionHandler) DeletePosition(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid position ID"})
	}

	if err := h.positionService.Remove(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete position"})
	}
	return c.NoContent(http.StatusNoContent)
}

// RenewPosition godoc
// @Summary Renew a tracked position
// @Description Extend the expiration date and reactivate the position
// @Tags positions
// @Accept  json
// @Produce  json
// @Param   id     path    int                       true    "Position ID"
// @Param   renew  body    dto.RenewPositionRequest  true    "Days to add"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /positions/{id}/renew [post]
func (h *PositionHandler) RenewPosition(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid position ID"})
	}

	var req dto.RenewPositionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if req.ExtraDays <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "extra_days must be positive"})
	}

	if err := h.positionService.Renew(c.Request().Context(), id, req.ExtraDays); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// RefreshPosition godoc
// @Summary Refresh a tracked position
// @Description Fetch a fresh quote and recompute the position snapshot now
// @Tags positions
// @Produce  json
// @Param   id  path    int true    "Position ID"
// @Success 200 {object} entity.TrackedPosition
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /positions/{id}/refresh [post]
func (h *PositionHandler) RefreshPosition(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid position ID"})
	}
	ctx := c.Request().Context()

	position, err := h.positionService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Position not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	quote, err := h.marketRepo.GetQuote(ctx, position.Symbol)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "Quote fetch failed"})
	}

	if err := h.dailyUpdateService.Refresh(ctx, position, quote); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, position)
}

// AcknowledgeRiskAlert godoc
// @Summary Acknowledge a risk alert
// @Description Mark a position-scoped risk alert as seen
// @Tags positions
// @Produce  json
// @Param   id  path    int true    "Risk alert ID"
// @Success 204 {object} nil
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /positions/risk-alerts/{id}/acknowledge [post]
func (h *PositionHandler) AcknowledgeRiskAlert(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid risk alert ID"})
	}

	if err := h.positionService.AcknowledgeRiskAlert(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrRiskAlertNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Risk alert not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
