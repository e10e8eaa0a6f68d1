package service

import (
	"context"
	"testing"
	"time"

	"margin-tracker/internal/entity"
	"margin-tracker/internal/tracker/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unifiedFixture struct {
	svc          *unifiedAlertService
	positionRepo *stubPositionRepo
	riskRepo     *stubRiskAlertRepo
	triggered    *stubTriggeredRepo
}

func newUnifiedFixture(t *testing.T, now time.Time) *unifiedFixture {
	t.Helper()

	positionRepo := newStubPositionRepo()
	riskRepo := &stubRiskAlertRepo{}
	triggered := &stubTriggeredRepo{}
	engine := NewAlertEngineService(newStubAlertConfigRepo(), triggered, newStubMarketRepo(), nil, nil, 0, testLogger())

	svc := NewUnifiedAlertService(triggered, positionRepo, riskRepo, engine).(*unifiedAlertService)
	svc.now = func() time.Time { return now }

	position := &entity.TrackedPosition{
		Symbol: "AAPL",
		Status: entity.PositionStatusActive,
		RiskAlerts: []entity.RiskAlert{
			{
				ID:        1,
				Type:      entity.RiskAlertMarginRisk,
				Severity:  entity.SeverityHigh,
				Message:   "margin call level reached",
				Timestamp: now.Add(-2 * time.Hour),
			},
		},
	}
	require.NoError(t, positionRepo.Create(context.Background(), position))
	riskRepo.alerts = append(riskRepo.alerts, position.RiskAlerts[0])
	riskRepo.nextID = 1

	require.NoError(t, triggered.Create(context.Background(), &entity.TriggeredAlert{
		Type:        entity.AlertTypePercentageGain,
		Symbol:      "AAPL",
		Title:       "Gain target",
		Severity:    entity.SeverityMedium,
		Status:      entity.TriggeredStatusTriggered,
		TriggeredAt: now.Add(-time.Hour),
	}))

	return &unifiedFixture{svc: svc, positionRepo: positionRepo, riskRepo: riskRepo, triggered: triggered}
}

func TestUnifiedListMergesNewestFirst(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	f := newUnifiedFixture(t, now)

	alerts, err := f.svc.List(context.Background(), dto.UnifiedAlertFilter{})
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	// The triggered alert (now-1h) precedes the risk alert (now-2h).
	assert.Equal(t, "trading-1", alerts[0].ID)
	assert.Equal(t, dto.UnifiedSourceTrading, alerts[0].Source)
	assert.Equal(t, "risk-1", alerts[1].ID)
	assert.Equal(t, dto.UnifiedSourceRisk, alerts[1].Source)
	assert.True(t, alerts[0].Timestamp.After(alerts[1].Timestamp))
}

func TestUnifiedListFilters(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	f := newUnifiedFixture(t, now)

	risk, err := f.svc.List(context.Background(), dto.UnifiedAlertFilter{Source: dto.UnifiedSourceRisk})
	require.NoError(t, err)
	require.Len(t, risk, 1)
	assert.Equal(t, "risk-1", risk[0].ID)

	high, err := f.svc.List(context.Background(), dto.UnifiedAlertFilter{Severity: entity.SeverityHigh})
	require.NoError(t, err)
	require.Len(t, high, 1)
	assert.Equal(t, "risk-1", high[0].ID)

	none, err := f.svc.List(context.Background(), dto.UnifiedAlertFilter{Symbol: "TSLA"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUnifiedStats(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	f := newUnifiedFixture(t, now)

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.Today)
	assert.Equal(t, 0, stats.Acknowledged)
	assert.Equal(t, 2, stats.Unacknowledged)
	assert.Equal(t, 1, stats.BySource[dto.UnifiedSourceTrading])
	assert.Equal(t, 1, stats.BySource[dto.UnifiedSourceRisk])
	assert.Equal(t, 1, stats.BySeverity[entity.SeverityHigh])
	assert.Equal(t, 1, stats.ByType[string(entity.AlertTypePercentageGain)])
}

func TestUnifiedAcknowledgeRouting(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	f := newUnifiedFixture(t, now)

	require.NoError(t, f.svc.Acknowledge(context.Background(), "trading-1"))
	triggered, err := f.triggered.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, entity.TriggeredStatusAcknowledged, triggered.Status)

	require.NoError(t, f.svc.Acknowledge(context.Background(), "risk-1"))
	risk, err := f.riskRepo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, risk.Acknowledged)
}

func TestUnifiedDismissRouting(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	f := newUnifiedFixture(t, now)

	require.NoError(t, f.svc.Dismiss(context.Background(), "trading-1"))
	triggered, err := f.triggered.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, entity.TriggeredStatusDismissed, triggered.Status)

	// Risk alerts have no dismissed state; dismiss acknowledges.
	require.NoError(t, f.svc.Dismiss(context.Background(), "risk-1"))
	risk, err := f.riskRepo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, risk.Acknowledged)
}

func TestUnifiedRejectsMalformedIDs(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	f := newUnifiedFixture(t, now)

	for _, id := range []string{"", "42", "bogus-1", "trading-x"} {
		err := f.svc.Acknowledge(context.Background(), id)
		assert.ErrorIs(t, err, ErrUnknownUnifiedAlertID, "id %q", id)
	}
}
