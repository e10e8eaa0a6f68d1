package repository

import (
	"testing"

	"margin-tracker/internal/tracker/config"
	"margin-tracker/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// An unset market_data section must fall back to defaults instead of dividing
// by a zero request budget.
func TestNewMarketDataRepositoryDefaults(t *testing.T) {
	repo := NewMarketDataRepository(&config.Config{}, &logger.Logger{Logger: zap.NewNop()})
	require.NotNil(t, repo)

	r := repo.(*marketDataRepository)
	assert.NotNil(t, r.requestLimiter)
	assert.Greater(t, float64(r.requestLimiter.Limit()), 0.0)
	assert.NotNil(t, r.quoteCache)
	assert.Positive(t, r.httpClient.Timeout)
}
