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

type dailyUpdateFixture struct {
	svc          *dailyUpdateService
	positionRepo *stubPositionRepo
	updateRepo   *stubDailyUpdateRepo
	riskRepo     *stubRiskAlertRepo
}

func newDailyUpdateFixture(now time.Time) *dailyUpdateFixture {
	positionRepo := newStubPositionRepo()
	updateRepo := newStubDailyUpdateRepo()
	riskRepo := &stubRiskAlertRepo{}

	svc := NewDailyUpdateService(positionRepo, updateRepo, riskRepo, NewRiskAlertService(), testLogger()).(*dailyUpdateService)
	svc.now = func() time.Time { return now }

	return &dailyUpdateFixture{
		svc:          svc,
		positionRepo: positionRepo,
		updateRepo:   updateRepo,
		riskRepo:     riskRepo,
	}
}

func examplePosition(now time.Time) *entity.TrackedPosition {
	return &entity.TrackedPosition{
		Symbol:           "AAPL",
		EntryPrice:       100,
		ExitPrice:        120,
		StopLossPrice:    50,
		Shares:           10,
		InvestmentAmount: 1000,
		MarginUsed:       500,
		OwnCash:          500,
		DurationDays:     60,
		EntryDate:        now.AddDate(0, 0, -30),
		ExpirationDate:   now.AddDate(0, 0, 30),
		Status:           entity.PositionStatusActive,
		CurrentPrice:     100,
	}
}

func TestRefreshWorkedExample(t *testing.T) {
	now := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)
	f := newDailyUpdateFixture(now)

	position := examplePosition(now)
	require.NoError(t, f.positionRepo.Create(context.Background(), position))

	err := f.svc.Refresh(context.Background(), position, &dto.Quote{Symbol: "AAPL", Price: 110})
	require.NoError(t, err)

	assert.Equal(t, 30, position.DaysElapsed)
	assert.InDelta(t, 2.36, position.TotalInterest, 0.005)
	assert.InDelta(t, 97.64, position.CurrentProfit, 0.005)
	assert.InDelta(t, 19.53, position.CurrentROI, 0.005)
	assert.Equal(t, entity.PositionStatusActive, position.Status)

	updates, err := f.updateRepo.ListByPosition(context.Background(), position.ID)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, 110.0, updates[0].Price)
	assert.InDelta(t, 100.0, updates[0].GrossProfit, 1e-9)
	assert.False(t, updates[0].MarginCallRisk)
}

func TestRefreshSameDayOverwrite(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newDailyUpdateFixture(now)

	position := examplePosition(now)
	require.NoError(t, f.positionRepo.Create(context.Background(), position))

	require.NoError(t, f.svc.Refresh(context.Background(), position, &dto.Quote{Price: 105}))

	// Second refresh later the same day overwrites, it does not append.
	f.svc.now = func() time.Time { return now.Add(6 * time.Hour) }
	require.NoError(t, f.svc.Refresh(context.Background(), position, &dto.Quote{Price: 108}))

	updates, err := f.updateRepo.ListByPosition(context.Background(), position.ID)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, 108.0, updates[0].Price)
}

func TestRefreshExpirationPrecedence(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newDailyUpdateFixture(now)

	position := examplePosition(now)
	position.ExpirationDate = now.AddDate(0, 0, -1)
	require.NoError(t, f.positionRepo.Create(context.Background(), position))

	// Price also clears the exit target; expiration still wins.
	require.NoError(t, f.svc.Refresh(context.Background(), position, &dto.Quote{Price: 125}))
	assert.Equal(t, entity.PositionStatusExpired, position.Status)
}

func TestRefreshCompletesAtExitTarget(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newDailyUpdateFixture(now)

	position := examplePosition(now)
	require.NoError(t, f.positionRepo.Create(context.Background(), position))

	require.NoError(t, f.svc.Refresh(context.Background(), position, &dto.Quote{Price: 120}))
	assert.Equal(t, entity.PositionStatusCompleted, position.Status)
}

func TestRefreshStopsAtStopLoss(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newDailyUpdateFixture(now)

	position := examplePosition(now)
	require.NoError(t, f.positionRepo.Create(context.Background(), position))

	require.NoError(t, f.svc.Refresh(context.Background(), position, &dto.Quote{Price: 49}))
	assert.Equal(t, entity.PositionStatusStopped, position.Status)
}

func TestRefreshClosedStatusIsSticky(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newDailyUpdateFixture(now)

	position := examplePosition(now)
	position.Status = entity.PositionStatusCompleted
	require.NoError(t, f.positionRepo.Create(context.Background(), position))

	// A price back between stop and exit must not reactivate the position.
	require.NoError(t, f.svc.Refresh(context.Background(), position, &dto.Quote{Price: 100}))
	assert.Equal(t, entity.PositionStatusCompleted, position.Status)
}

func TestRefreshMarginCallRisk(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	f := newDailyUpdateFixture(now)

	position := examplePosition(now)
	position.StopLossPrice = 40
	require.NoError(t, f.positionRepo.Create(context.Background(), position))

	// Margin-call price = (500*4/3)/10 = 66.67; 60 is below it.
	require.NoError(t, f.svc.Refresh(context.Background(), position, &dto.Quote{Price: 60}))

	assert.InDelta(t, 66.67, position.MarginCallPrice(), 0.005)

	updates, err := f.updateRepo.ListByPosition(context.Background(), position.ID)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.True(t, updates[0].MarginCallRisk)

	var found bool
	for _, alert := range f.riskRepo.alerts {
		if alert.Type == entity.RiskAlertMarginRisk {
			found = true
			assert.Equal(t, entity.SeverityHigh, alert.Severity)
		}
	}
	assert.True(t, found, "expected a margin risk alert")
}

func TestExpireSweep(t *testing.T) {
	now := time.Date(2025, 6, 2, 0, 5, 0, 0, time.UTC)
	f := newDailyUpdateFixture(now)

	overdue := examplePosition(now)
	overdue.ExpirationDate = now.AddDate(0, 0, -2)
	require.NoError(t, f.positionRepo.Create(context.Background(), overdue))

	current := examplePosition(now)
	require.NoError(t, f.positionRepo.Create(context.Background(), current))

	require.NoError(t, f.svc.ExpireSweep(context.Background()))

	got, err := f.positionRepo.GetByID(context.Background(), overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PositionStatusExpired, got.Status)

	got, err = f.positionRepo.GetByID(context.Background(), current.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PositionStatusActive, got.Status)
}
