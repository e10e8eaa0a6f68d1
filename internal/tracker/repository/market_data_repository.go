package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"margin-tracker/internal/tracker/config"
	"margin-tracker/internal/tracker/dto"
	"margin-tracker/pkg/logger"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrSymbolNotFound distinguishes an unknown symbol from an upstream failure.
var ErrSymbolNotFound = errors.New("symbol not found")

// tradeableTypes are the instrument types the search surfaces.
var tradeableTypes = map[string]bool{
	"EQUITY":      true,
	"ETF":         true,
	"MUTUALFUND":  true,
	"INDEX":       true,
	"CLOSED-FUND": true,
	"TRUST":       true,
}

type MarketDataRepository interface {
	GetQuote(ctx context.Context, symbol string) (*dto.Quote, error)
	Search(ctx context.Context, query string) ([]dto.SearchResult, error)
	GetHistory(ctx context.Context, symbol string, period dto.HistoryPeriod) ([]dto.OHLCV, error)
}

type marketDataRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
	quoteCache     *cache.Cache
}

func NewMarketDataRepository(cfg *config.Config, log *logger.Logger) MarketDataRepository {
	perMinute := cfg.MarketData.MaxRequestPerMinute
	if perMinute <= 0 {
		perMinute = 30
	}
	secondsPerRequest := time.Minute / time.Duration(perMinute)
	timeout := cfg.MarketData.RequestTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	quoteTTL := cfg.MarketData.QuoteCacheTTL
	if quoteTTL == 0 {
		quoteTTL = time.Minute
	}
	return &marketDataRepository{
		cfg:            cfg,
		log:            log,
		httpClient:     &http.Client{Timeout: timeout},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
		quoteCache:     cache.New(quoteTTL, 2*quoteTTL),
	}
}

type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string  `json:"symbol"`
			ShortName                  string  `json:"shortName"`
			LongName                   string  `json:"longName"`
			RegularMarketPrice         float64 `json:"regularMarketPrice"`
			RegularMarketChange        float64 `json:"regularMarketChange"`
			RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
			RegularMarketVolume        int64   `json:"regularMarketVolume"`
			AverageDailyVolume3Month   int64   `json:"averageDailyVolume3Month"`
			MarketCap                  int64   `json:"marketCap"`
			FiftyTwoWeekLow            float64 `json:"fiftyTwoWeekLow"`
			FiftyTwoWeekHigh           float64 `json:"fiftyTwoWeekHigh"`
			Beta                       float64 `json:"beta"`
			TrailingPE                 float64 `json:"trailingPE"`
			ForwardPE                  float64 `json:"forwardPE"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

func (r *marketDataRepository) GetQuote(ctx context.Context, symbol string) (*dto.Quote, error) {
	cacheKey := "quote:" + symbol
	if cached, found := r.quoteCache.Get(cacheKey); found {
		quote := cached.(dto.Quote)
		return &quote, nil
	}

	reqURL := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", r.cfg.MarketData.BaseURL, url.QueryEscape(symbol))
	body, err := r.sendRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var response quoteResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode quote response: %w", err)
	}
	if len(response.QuoteResponse.Result) == 0 {
		return nil, ErrSymbolNotFound
	}

	result := response.QuoteResponse.Result[0]
	name := result.LongName
	if name == "" {
		name = result.ShortName
	}
	quote := dto.Quote{
		Symbol:           result.Symbol,
		Name:             name,
		Price:            result.RegularMarketPrice,
		Change:           result.RegularMarketChange,
		ChangePercent:    result.RegularMarketChangePercent,
		Volume:           result.RegularMarketVolume,
		AverageVolume:    result.AverageDailyVolume3Month,
		MarketCap:        result.MarketCap,
		FiftyTwoWeekLow:  result.FiftyTwoWeekLow,
		FiftyTwoWeekHigh: result.FiftyTwoWeekHigh,
		Beta:             result.Beta,
		TrailingPE:       result.TrailingPE,
		ForwardPE:        result.ForwardPE,
	}

	r.quoteCache.Set(cacheKey, quote, cache.DefaultExpiration)
	return &quote, nil
}

type searchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
		LongName  string `json:"longname"`
		QuoteType string `json:"quoteType"`
	} `json:"quotes"`
}

// Search returns tradeable instruments matching the query. Upstream failures
// degrade to an empty list instead of propagating.
func (r *marketDataRepository) Search(ctx context.Context, query string) ([]dto.SearchResult, error) {
	reqURL := fmt.Sprintf("%s/v1/finance/search?q=%s", r.cfg.MarketData.BaseURL, url.QueryEscape(query))
	body, err := r.sendRequest(ctx, reqURL)
	if err != nil {
		r.log.WarnContext(ctx, "Symbol search failed, returning empty result", logger.ErrorField(err), logger.StringField("query", query))
		return []dto.SearchResult{}, nil
	}

	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		r.log.WarnContext(ctx, "Failed to decode search response, returning empty result", logger.ErrorField(err))
		return []dto.SearchResult{}, nil
	}

	results := make([]dto.SearchResult, 0, len(response.Quotes))
	for _, q := range response.Quotes {
		if !tradeableTypes[q.QuoteType] {
			continue
		}
		name := q.LongName
		if name == "" {
			name = q.ShortName
		}
		results = append(results, dto.SearchResult{
			Symbol: q.Symbol,
			Name:   name,
			Type:   q.QuoteType,
		})
	}
	return results, nil
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	} `json:"chart"`
}

func (r *marketDataRepository) GetHistory(ctx context.Context, symbol string, period dto.HistoryPeriod) ([]dto.OHLCV, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("unsupported history period: %s", period)
	}

	cacheKey := fmt.Sprintf("history:%s:%s", symbol, period)
	if cached, found := r.quoteCache.Get(cacheKey); found {
		return cached.([]dto.OHLCV), nil
	}

	reqURL := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d",
		r.cfg.MarketData.BaseURL, url.PathEscape(symbol), period)
	body, err := r.sendRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var response chartResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode chart response: %w", err)
	}
	if response.Chart.Error != nil || len(response.Chart.Result) == 0 {
		return nil, ErrSymbolNotFound
	}

	result := response.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, ErrSymbolNotFound
	}
	quote := result.Indicators.Quote[0]

	series := make([]dto.OHLCV, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) {
			break
		}
		series = append(series, dto.OHLCV{
			Timestamp: ts,
			Open:      at(quote.Open, i),
			High:      at(quote.High, i),
			Low:       at(quote.Low, i),
			Close:     at(quote.Close, i),
			Volume:    atInt(quote.Volume, i),
		})
	}

	r.quoteCache.Set(cacheKey, series, cache.DefaultExpiration)
	return series, nil
}

func (r *marketDataRepository) sendRequest(ctx context.Context, reqURL string) ([]byte, error) {
	fields := []zap.Field{
		zap.String("url", reqURL),
		zap.Int("max_request_per_minute", r.cfg.MarketData.MaxRequestPerMinute),
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to wait for request limit", fields...)
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to create new http request", fields...)
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to send request to market data API", fields...)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrSymbolNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market data API returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}

func atInt(values []int64, i int) int64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}
