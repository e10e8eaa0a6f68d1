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

func newPositionServiceFixture(now time.Time) (*positionService, *stubPositionRepo, *stubRiskAlertRepo) {
	positionRepo := newStubPositionRepo()
	riskRepo := &stubRiskAlertRepo{}
	svc := NewPositionService(positionRepo, riskRepo, testLogger()).(*positionService)
	svc.now = func() time.Time { return now }
	return svc, positionRepo, riskRepo
}

func TestCreatePosition(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newPositionServiceFixture(now)

	position, err := svc.Create(context.Background(), &dto.CreatePositionRequest{
		Symbol:        "AAPL",
		EntryPrice:    100,
		ExitPrice:     120,
		StopLossPrice: 90,
		Shares:        10,
		MarginUsed:    500,
		OwnCash:       500,
		DurationDays:  30,
	})
	require.NoError(t, err)

	assert.NotZero(t, position.ID)
	assert.Equal(t, entity.PositionStatusActive, position.Status)
	assert.Equal(t, now, position.EntryDate)
	assert.Equal(t, now.AddDate(0, 0, 30), position.ExpirationDate)
	// Snapshot starts at the entry price.
	assert.Equal(t, 100.0, position.CurrentPrice)
	assert.Zero(t, position.CurrentProfit)
}

func TestListByStatus(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	svc, repo, _ := newPositionServiceFixture(now)

	statuses := []entity.PositionStatus{
		entity.PositionStatusActive,
		entity.PositionStatusExpired,
		entity.PositionStatusCompleted,
		entity.PositionStatusStopped,
	}
	for _, status := range statuses {
		require.NoError(t, repo.Create(context.Background(), &entity.TrackedPosition{Symbol: "X", Status: status}))
	}

	active, err := svc.ListByStatus(context.Background(), dto.PositionFilterActive)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	expired, err := svc.ListByStatus(context.Background(), dto.PositionFilterExpired)
	require.NoError(t, err)
	assert.Len(t, expired, 1)

	// Closed covers completed and stopped.
	closed, err := svc.ListByStatus(context.Background(), dto.PositionFilterClosed)
	require.NoError(t, err)
	assert.Len(t, closed, 2)

	_, err = svc.ListByStatus(context.Background(), dto.PositionStatusFilter("bogus"))
	assert.Error(t, err)
}

func TestRenewReactivatesExpiredPosition(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	svc, repo, _ := newPositionServiceFixture(now)

	position := &entity.TrackedPosition{
		Symbol:         "AAPL",
		Status:         entity.PositionStatusExpired,
		DurationDays:   30,
		ExpirationDate: now.AddDate(0, 0, -1),
	}
	require.NoError(t, repo.Create(context.Background(), position))

	require.NoError(t, svc.Renew(context.Background(), position.ID, 14))

	got, err := repo.GetByID(context.Background(), position.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PositionStatusActive, got.Status)
	assert.Equal(t, 44, got.DurationDays)
	assert.Equal(t, now.AddDate(0, 0, 13), got.ExpirationDate)
}

func TestRenewMissingPositionIsNoOp(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newPositionServiceFixture(now)

	assert.NoError(t, svc.Renew(context.Background(), 999, 14))
}

func TestUpdatePositionPartialMerge(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	svc, repo, _ := newPositionServiceFixture(now)

	position := &entity.TrackedPosition{Symbol: "AAPL", Name: "Apple", ExitPrice: 120, StopLossPrice: 90}
	require.NoError(t, repo.Create(context.Background(), position))

	require.NoError(t, svc.Update(context.Background(), position.ID, &dto.UpdatePositionRequest{
		StopLossPrice: utils.ToPointer(95.0),
	}))

	got, err := repo.GetByID(context.Background(), position.ID)
	require.NoError(t, err)
	assert.Equal(t, 95.0, got.StopLossPrice)
	// Untouched fields survive.
	assert.Equal(t, "Apple", got.Name)
	assert.Equal(t, 120.0, got.ExitPrice)

	// An empty request is a no-op, not an error.
	assert.NoError(t, svc.Update(context.Background(), position.ID, &dto.UpdatePositionRequest{}))
}

func TestAcknowledgeRiskAlert(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	svc, _, riskRepo := newPositionServiceFixture(now)

	require.NoError(t, riskRepo.CreateBatch(context.Background(), []entity.RiskAlert{
		{PositionID: 1, Type: entity.RiskAlertMarginRisk, Severity: entity.SeverityHigh},
	}))

	require.NoError(t, svc.AcknowledgeRiskAlert(context.Background(), 1))
	got, err := riskRepo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, got.Acknowledged)
}
