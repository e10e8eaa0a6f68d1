package service

import (
	"context"
	"fmt"
	"time"

	"margin-tracker/internal/entity"
	"margin-tracker/internal/tracker/dto"
	"margin-tracker/internal/tracker/repository"
	"margin-tracker/pkg/logger"
	"margin-tracker/pkg/utils"
)

// DailyUpdateService recomputes a position's derived snapshot from a fresh
// quote, drives lifecycle transitions, records the calendar-day update, and
// appends any new risk alerts.
type DailyUpdateService interface {
	Refresh(ctx context.Context, position *entity.TrackedPosition, quote *dto.Quote) error
	// ExpireSweep marks active positions past their expiration date as
	// expired without needing a fresh quote.
	ExpireSweep(ctx context.Context) error
}

// NewDailyUpdateService creates a new DailyUpdateService.
func NewDailyUpdateService(
	positionRepo repository.PositionRepository,
	dailyUpdateRepo repository.DailyUpdateRepository,
	riskAlertRepo repository.RiskAlertRepository,
	riskAlertSvc RiskAlertService,
	log *logger.Logger,
) DailyUpdateService {
	return &dailyUpdateService{
		positionRepo:    positionRepo,
		dailyUpdateRepo: dailyUpdateRepo,
		riskAlertRepo:   riskAlertRepo,
		riskAlertSvc:    riskAlertSvc,
		logger:          log,
		now:             time.Now,
	}
}

type dailyUpdateService struct {
	positionRepo    repository.PositionRepository
	dailyUpdateRepo repository.DailyUpdateRepository
	riskAlertRepo   repository.RiskAlertRepository
	riskAlertSvc    RiskAlertService
	logger          *logger.Logger
	now             func() time.Time
}

func (s *dailyUpdateService) Refresh(ctx context.Context, position *entity.TrackedPosition, quote *dto.Quote) error {
	now := s.now()
	wasActive := position.Status == entity.PositionStatusActive

	position.CurrentPrice = quote.Price
	position.DaysElapsed = utils.DaysBetween(position.EntryDate, now)

	// Expiration takes precedence and suppresses exit/stop checks this cycle.
	expiredThisCycle := false
	if wasActive && !now.Before(position.ExpirationDate) {
		position.Status = entity.PositionStatusExpired
		expiredThisCycle = true
	}

	position.TotalInterest = TotalInterest(position.MarginUsed, position.IsGoldSubscriber, position.DaysElapsed)

	grossProfit := (position.CurrentPrice - position.EntryPrice) * position.Shares
	position.CurrentProfit = grossProfit - position.TotalInterest
	if position.OwnCash > 0 {
		position.CurrentROI = position.CurrentProfit / position.OwnCash * 100
	} else {
		position.CurrentROI = 0
	}

	marginCallRisk := position.Shares > 0 && position.CurrentPrice <= position.MarginCallPrice()

	if wasActive && !expiredThisCycle {
		switch {
		case position.CurrentPrice >= position.ExitPrice:
			position.Status = entity.PositionStatusCompleted
		case position.CurrentPrice <= position.StopLossPrice:
			position.Status = entity.PositionStatusStopped
		}
	}

	grossLoss := 0.0
	if grossProfit < 0 {
		grossLoss = -grossProfit
	}
	update := entity.DailyUpdate{
		PositionID:     position.ID,
		Date:           utils.TruncateToDay(now),
		Price:          position.CurrentPrice,
		GrossProfit:    grossProfit,
		GrossLoss:      grossLoss,
		TotalInterest:  position.TotalInterest,
		ROI:            position.CurrentROI,
		MarginCallRisk: marginCallRisk,
	}
	if err := s.dailyUpdateRepo.Upsert(ctx, &update); err != nil {
		return fmt.Errorf("failed to upsert daily update: %w", err)
	}

	updates, err := s.dailyUpdateRepo.ListByPosition(ctx, position.ID)
	if err != nil {
		return fmt.Errorf("failed to load daily updates: %w", err)
	}

	newRiskAlerts := s.riskAlertSvc.Evaluate(position, updates, now)
	if len(newRiskAlerts) > 0 {
		if err := s.riskAlertRepo.CreateBatch(ctx, newRiskAlerts); err != nil {
			return fmt.Errorf("failed to store risk alerts: %w", err)
		}
		s.logger.InfoContext(ctx, "Risk alerts generated",
			logger.Field("position_id", position.ID),
			logger.IntField("count", len(newRiskAlerts)))
	}

	if err := s.positionRepo.Save(ctx, position); err != nil {
		return fmt.Errorf("failed to save position snapshot: %w", err)
	}

	s.logger.DebugContext(ctx, "Position refreshed",
		logger.Field("position_id", position.ID),
		logger.StringField("symbol", position.Symbol),
		logger.Float64Field("price", position.CurrentPrice),
		logger.StringField("roi", utils.FormatROI(position.CurrentROI)),
		logger.StringField("status", string(position.Status)))

	return nil
}

func (s *dailyUpdateService) ExpireSweep(ctx context.Context) error {
	now := s.now()
	positions, err := s.positionRepo.Get(ctx, dto.GetPositionsParam{
		Statuses: []entity.PositionStatus{entity.PositionStatusActive},
	})
	if err != nil {
		return fmt.Errorf("failed to list active positions: %w", err)
	}

	for i := range positions {
		position := &positions[i]
		if now.Before(position.ExpirationDate) {
			continue
		}
		err := s.positionRepo.UpdateFields(ctx, position.ID, map[string]interface{}{
			"status": entity.PositionStatusExpired,
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "Failed to expire position", logger.ErrorField(err), logger.Field("position_id", position.ID))
			continue
		}
		s.logger.InfoContext(ctx, "Position expired",
			logger.Field("position_id", position.ID),
			logger.StringField("symbol", position.Symbol))
	}
	return nil
}
