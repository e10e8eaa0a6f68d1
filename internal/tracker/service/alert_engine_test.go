package service

import (
	"context"
	"testing"
	"time"

	"margin-tracker/internal/entity"
	"margin-tracker/internal/tracker/dto"
	"margin-tracker/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engineFixture struct {
	engine     *alertEngineService
	configRepo *stubAlertConfigRepo
	triggered  *stubTriggeredRepo
	market     *stubMarketRepo
	notifier   *stubNotifier
}

func newEngineFixture(now time.Time) *engineFixture {
	configRepo := newStubAlertConfigRepo()
	triggered := &stubTriggeredRepo{}
	market := newStubMarketRepo()
	notifier := &stubNotifier{}

	engine := NewAlertEngineService(configRepo, triggered, market, nil, notifier, 0, testLogger()).(*alertEngineService)
	engine.now = func() time.Time { return now }

	return &engineFixture{
		engine:     engine,
		configRepo: configRepo,
		triggered:  triggered,
		market:     market,
		notifier:   notifier,
	}
}

func gainConfig(t *testing.T, f *engineFixture, threshold float64, symbol *string) *entity.AlertConfiguration {
	t.Helper()
	config, err := f.engine.AddAlert(context.Background(), &dto.CreateAlertRequest{
		Type:       entity.AlertTypePercentageGain,
		Name:       "Gain target",
		Symbol:     symbol,
		Conditions: []entity.AlertCondition{{Field: "percentage_gain", Operator: ">=", Value: threshold}},
		Severity:   entity.SeverityMedium,
		Enabled:    true,
	})
	require.NoError(t, err)
	return config
}

func gainPosition(id uint, symbol string, currentPrice float64) entity.TrackedPosition {
	return entity.TrackedPosition{
		ID:           id,
		Symbol:       symbol,
		EntryPrice:   100,
		CurrentPrice: currentPrice,
		Shares:       10,
		Status:       entity.PositionStatusActive,
	}
}

func TestEvaluatePercentageGain(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	f := newEngineFixture(now)
	gainConfig(t, f, 5, nil)

	positions := []entity.TrackedPosition{gainPosition(1, "AAPL", 106)}
	require.NoError(t, f.engine.EvaluateAlerts(context.Background(), positions))

	require.Len(t, f.triggered.alerts, 1)
	alert := f.triggered.alerts[0]
	assert.Equal(t, entity.TriggeredStatusTriggered, alert.Status)
	assert.Equal(t, "AAPL", alert.Symbol)
	require.NotNil(t, alert.CurrentValue)
	require.NotNil(t, alert.TargetValue)
	assert.InDelta(t, 6.0, *alert.CurrentValue, 0.001)
	assert.Equal(t, 5.0, *alert.TargetValue)
	assert.Equal(t, now, alert.TriggeredAt)
}

func TestEvaluateRetriggersWithoutResendWindow(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	f := newEngineFixture(now)
	gainConfig(t, f, 5, nil)

	positions := []entity.TrackedPosition{gainPosition(1, "AAPL", 106)}
	require.NoError(t, f.engine.EvaluateAlerts(context.Background(), positions))
	require.NoError(t, f.engine.EvaluateAlerts(context.Background(), positions))

	// No redis means no resend window: each pass re-triggers.
	assert.Len(t, f.triggered.alerts, 2)
}

func TestEvaluateBelowThresholdDoesNotTrigger(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	f := newEngineFixture(now)
	gainConfig(t, f, 5, nil)

	positions := []entity.TrackedPosition{gainPosition(1, "AAPL", 104)}
	require.NoError(t, f.engine.EvaluateAlerts(context.Background(), positions))
	assert.Empty(t, f.triggered.alerts)
}

func TestEvaluateNegativeLossThresholdStillFires(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	f := newEngineFixture(now)

	// A loss limit stored as -10 means "alert at a 10% loss": thresholds for
	// the loss family compare by magnitude.
	_, err := f.engine.AddAlert(context.Background(), &dto.CreateAlertRequest{
		Type:       entity.AlertTypePercentageLoss,
		Name:       "Loss limit",
		Conditions: []entity.AlertCondition{{Field: "percentage_loss", Operator: ">=", Value: -10}},
		Enabled:    true,
	})
	require.NoError(t, err)

	positions := []entity.TrackedPosition{gainPosition(1, "AAPL", 85)} // down 15%
	require.NoError(t, f.engine.EvaluateAlerts(context.Background(), positions))

	require.Len(t, f.triggered.alerts, 1)
	alert := f.triggered.alerts[0]
	require.NotNil(t, alert.CurrentValue)
	require.NotNil(t, alert.TargetValue)
	assert.InDelta(t, 15.0, *alert.CurrentValue, 0.001)
	assert.Equal(t, 10.0, *alert.TargetValue)
}

func TestEvaluateLossWithoutThresholdIsDisabled(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	f := newEngineFixture(now)

	_, err := f.engine.AddAlert(context.Background(), &dto.CreateAlertRequest{
		Type:    entity.AlertTypePercentageLoss,
		Name:    "Loss limit",
		Enabled: true,
	})
	require.NoError(t, err)

	positions := []entity.TrackedPosition{gainPosition(1, "AAPL", 85)}
	require.NoError(t, f.engine.EvaluateAlerts(context.Background(), positions))
	assert.Empty(t, f.triggered.alerts)
}

func TestEvaluateSymbolScope(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	f := newEngineFixture(now)
	symbol := "AAPL"
	gainConfig(t, f, 5, &symbol)

	positions := []entity.TrackedPosition{
		gainPosition(1, "AAPL", 106),
		gainPosition(2, "TSLA", 110),
	}
	require.NoError(t, f.engine.EvaluateAlerts(context.Background(), positions))

	require.Len(t, f.triggered.alerts, 1)
	assert.Equal(t, "AAPL", f.triggered.alerts[0].Symbol)
}

func TestEvaluateReportsAllMatchingPositions(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	f := newEngineFixture(now)
	gainConfig(t, f, 5, nil)

	positions := []entity.TrackedPosition{
		gainPosition(1, "AAPL", 106),
		gainPosition(2, "TSLA", 110),
		gainPosition(3, "MSFT", 103),
	}
	require.NoError(t, f.engine.EvaluateAlerts(context.Background(), positions))

	// Both matches are reported, not just the first one found.
	assert.Len(t, f.triggered.alerts, 2)
}

func TestEvaluateDisabledConfigIsSkipped(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	f := newEngineFixture(now)
	config := gainConfig(t, f, 5, nil)
	require.NoError(t, f.engine.UpdateAlert(context.Background(), config.ID, &dto.UpdateAlertRequest{
		Enabled: utils.ToPointer(false),
	}))

	positions := []entity.TrackedPosition{gainPosition(1, "AAPL", 106)}
	require.NoError(t, f.engine.EvaluateAlerts(context.Background(), positions))
	assert.Empty(t, f.triggered.alerts)
}

func TestEvaluateUnregisteredTypeIsSkipped(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	f := newEngineFixture(now)

	_, err := f.engine.AddAlert(context.Background(), &dto.CreateAlertRequest{
		Type:    entity.AlertTypeOvertrading,
		Name:    "Overtrading",
		Enabled: true,
	})
	require.NoError(t, err)

	positions := []entity.TrackedPosition{gainPosition(1, "AAPL", 106)}
	require.NoError(t, f.engine.EvaluateAlerts(context.Background(), positions))
	assert.Empty(t, f.triggered.alerts)
}

func TestSeverityEscalation(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	f := newEngineFixture(now)

	_, err := f.engine.AddAlert(context.Background(), &dto.CreateAlertRequest{
		Type:     entity.AlertTypeMarginCallRisk,
		Name:     "Margin watch",
		Severity: entity.SeverityLow,
		Enabled:  true,
	})
	require.NoError(t, err)

	_, err = f.engine.AddAlert(context.Background(), &dto.CreateAlertRequest{
		Type:     entity.AlertTypeStopLoss,
		Name:     "Stop watch",
		Severity: entity.SeverityLow,
		Enabled:  true,
	})
	require.NoError(t, err)

	position := entity.TrackedPosition{
		ID:            1,
		Symbol:        "AAPL",
		EntryPrice:    100,
		CurrentPrice:  60,
		StopLossPrice: 70,
		Shares:        10,
		MarginUsed:    500, // margin-call price 66.67
		Status:        entity.PositionStatusActive,
	}
	require.NoError(t, f.engine.EvaluateAlerts(context.Background(), []entity.TrackedPosition{position}))

	require.Len(t, f.triggered.alerts, 2)
	severityByType := map[entity.AlertType]entity.AlertSeverity{}
	for _, alert := range f.triggered.alerts {
		severityByType[alert.Type] = alert.Severity
	}
	assert.Equal(t, entity.SeverityCritical, severityByType[entity.AlertTypeMarginCallRisk])
	assert.Equal(t, entity.SeverityHigh, severityByType[entity.AlertTypeStopLoss])
}

func TestEvaluateNotifiesPush(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	f := newEngineFixture(now)

	_, err := f.engine.AddAlert(context.Background(), &dto.CreateAlertRequest{
		Type:       entity.AlertTypePercentageGain,
		Name:       "Gain target",
		Conditions: []entity.AlertCondition{{Field: "percentage_gain", Operator: ">=", Value: 5}},
		Enabled:    true,
		NotifyPush: true,
	})
	require.NoError(t, err)

	positions := []entity.TrackedPosition{gainPosition(1, "AAPL", 106)}
	require.NoError(t, f.engine.EvaluateAlerts(context.Background(), positions))

	require.Len(t, f.notifier.sent, 1)
	assert.Contains(t, f.notifier.sent[0], "AAPL")
}

func TestAddAlertRejectsUnknownType(t *testing.T) {
	f := newEngineFixture(time.Now())
	_, err := f.engine.AddAlert(context.Background(), &dto.CreateAlertRequest{
		Type: entity.AlertType("made_up"),
		Name: "Nope",
	})
	assert.Error(t, err)
}

func TestAcknowledgeAndDismissLifecycle(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	f := newEngineFixture(now)
	gainConfig(t, f, 5, nil)

	positions := []entity.TrackedPosition{
		gainPosition(1, "AAPL", 106),
		gainPosition(2, "TSLA", 110),
	}
	require.NoError(t, f.engine.EvaluateAlerts(context.Background(), positions))
	require.Len(t, f.triggered.alerts, 2)

	require.NoError(t, f.engine.AcknowledgeAlert(context.Background(), f.triggered.alerts[0].ID))
	require.NoError(t, f.engine.DismissAlert(context.Background(), f.triggered.alerts[1].ID))

	acked, err := f.triggered.GetByID(context.Background(), f.triggered.alerts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TriggeredStatusAcknowledged, acked.Status)
	assert.NotNil(t, acked.AcknowledgedAt)

	dismissed, err := f.triggered.GetByID(context.Background(), f.triggered.alerts[1].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TriggeredStatusDismissed, dismissed.Status)
	assert.NotNil(t, dismissed.DismissedAt)

	// Acknowledged and dismissed alerts vanish from the triggered view.
	active, err := f.engine.GetTriggeredAlerts(context.Background(), dto.GetTriggeredAlertsParam{
		Statuses: []entity.TriggeredAlertStatus{entity.TriggeredStatusTriggered},
	})
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestSeedDefaults(t *testing.T) {
	f := newEngineFixture(time.Now())

	require.NoError(t, f.engine.SeedDefaults(context.Background()))
	configs, err := f.engine.GetAlerts(context.Background(), dto.GetAlertConfigurationsParam{})
	require.NoError(t, err)
	require.Len(t, configs, 2)
	for _, config := range configs {
		assert.False(t, config.Enabled, "seeded defaults start disabled")
	}

	// Seeding again is a no-op once anything exists.
	require.NoError(t, f.engine.SeedDefaults(context.Background()))
	configs, err = f.engine.GetAlerts(context.Background(), dto.GetAlertConfigurationsParam{})
	require.NoError(t, err)
	assert.Len(t, configs, 2)
}
