package http

import (
	"errors"
	"net/http"

	"margin-tracker/internal/tracker/dto"
	"margin-tracker/internal/tracker/repository"
	"margin-tracker/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MarketHandler handles HTTP requests for market data lookups.
type MarketHandler struct {
	marketRepo repository.MarketDataRepository
	logger     *logger.Logger
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketRepo repository.MarketDataRepository, logger *logger.Logger) *MarketHandler {
	return &MarketHandler{marketRepo: marketRepo, logger: logger}
}

// RegisterRoutes registers the market routes to the Echo group.
func (h *MarketHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/quote/:symbol", h.GetQuote)
	g.GET("/search", h.Search)
	g.GET("/history/:symbol", h.GetHistory)
}

// GetQuote godoc
// @Summary Get a market quote
// @Tags market
// @Produce  json
// @Param   symbol  path    string  true    "Ticker symbol"
// @Success 200 {object} dto.Quote
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /market/quote/{symbol} [get]
func (h *MarketHandler) GetQuote(c echo.Context) error {
	quote, err := h.marketRepo.GetQuote(c.Request().Context(), c.Param("symbol"))
	if err != nil {
		if errors.Is(err, repository.ErrSymbolNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Symbol not found"})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "Quote fetch failed"})
	}
	return c.JSON(http.StatusOK, quote)
}

// Search godoc
// @Summary Search tradeable symbols
// @Description Free-text search; upstream failures yield an empty list
// @Tags market
// @Produce  json
// @Param   q  query    string  true    "Search query"
// @Success 200 {array} dto.SearchResult
// @Failure 400 {object} dto.ErrorResponse
// @Router /market/search [get]
func (h *MarketHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing query parameter q"})
	}

	results, err := h.marketRepo.Search(c.Request().Context(), query)
	if err != nil {
		// Search degrades to empty upstream; this is a programming error.
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, results)
}

// GetHistory godoc
// @Summary Get daily price history
// @Tags market
// @Produce  json
// @Param   symbol  path    string  true    "Ticker symbol"
// @Param   period  query   string  false   "1mo | 3mo | 6mo | 1y (default 3mo)"
// @Success 200 {array} dto.OHLCV
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /market/history/{symbol} [get]
func (h *MarketHandler) GetHistory(c echo.Context) error {
	period := dto.HistoryPeriod(c.QueryParam("period"))
	if period == "" {
		period = dto.PeriodThreeMonths
	}
	if !period.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unsupported history period"})
	}

	series, err := h.marketRepo.GetHistory(c.Request().Context(), c.Param("symbol"), period)
	if err != nil {
		if errors.Is(err, repository.ErrSymbolNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Symbol not found"})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "History fetch failed"})
	}
	return c.JSON(http.StatusOK, series)
}
