package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"margin-tracker/internal/entity"
	"margin-tracker/internal/tracker/dto"
	"margin-tracker/internal/tracker/repository"
	"margin-tracker/pkg/logger"
)

// PositionService manages the lifecycle of tracked positions.
type PositionService interface {
	Create(ctx context.Context, req *dto.CreatePositionRequest) (*entity.TrackedPosition, error)
	GetByID(ctx context.Context, id uint) (*entity.TrackedPosition, error)
	List(ctx context.Context) ([]entity.TrackedPosition, error)
	ListByStatus(ctx context.Context, filter dto.PositionStatusFilter) ([]entity.TrackedPosition, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePositionRequest) error
	Renew(ctx context.Context, id uint, extraDays int) error
	Remove(ctx context.Context, id uint) error
	AcknowledgeRiskAlert(ctx context.Context, riskAlertID uint) error
}

// NewPositionService creates a new PositionService.
func NewPositionService(positionRepo repository.PositionRepository, riskAlertRepo repository.RiskAlertRepository, log *logger.Logger) PositionService {
	return &positionService{
		positionRepo:  positionRepo,
		riskAlertRepo: riskAlertRepo,
		logger:        log,
		now:           time.Now,
	}
}

type positionService struct {
	positionRepo  repository.PositionRepository
	riskAlertRepo repository.RiskAlertRepository
	logger        *logger.Logger
	now           func() time.Time
}

func (s *positionService) Create(ctx context.Context, req *dto.CreatePositionRequest) (*entity.TrackedPosition, error) {
	now := s.now()
	position := &entity.TrackedPosition{
		Symbol:           req.Symbol,
		Name:             req.Name,
		Tags:             req.Tags,
		EntryPrice:       req.EntryPrice,
		ExitPrice:        req.ExitPrice,
		StopLossPrice:    req.StopLossPrice,
		Shares:           req.Shares,
		InvestmentAmount: req.InvestmentAmount,
		MarginUsed:       req.MarginUsed,
		OwnCash:          req.OwnCash,
		MarginRatio:      req.MarginRatio,
		DurationDays:     req.DurationDays,
		IsGoldSubscriber: req.IsGoldSubscriber,
		EntryDate:        now,
		ExpirationDate:   now.AddDate(0, 0, req.DurationDays),
		Status:           entity.PositionStatusActive,
		CurrentPrice:     req.EntryPrice,
		CurrentProfit:    0,
		CurrentROI:       0,
	}

	if err := s.positionRepo.Create(ctx, position); err != nil {
		return nil, fmt.Errorf("failed to create position: %w", err)
	}

	s.logger.InfoContext(ctx, "Tracked position created",
		logger.Field("id", position.ID),
		logger.StringField("symbol", position.Symbol))

	return position, nil
}

func (s *positionService) GetByID(ctx context.Context, id uint) (*entity.TrackedPosition, error) {
	return s.positionRepo.GetByID(ctx, id)
}

func (s *positionService) List(ctx context.Context) ([]entity.TrackedPosition, error) {
	return s.positionRepo.Get(ctx, dto.GetPositionsParam{WithRiskAlerts: true})
}

func (s *positionService) ListByStatus(ctx context.Context, filter dto.PositionStatusFilter) ([]entity.TrackedPosition, error) {
	param := dto.GetPositionsParam{WithRiskAlerts: true}
	switch filter {
	case dto.PositionFilterActive:
		param.Statuses = []entity.PositionStatus{entity.PositionStatusActive}
	case dto.PositionFilterExpired:
		param.Statuses = []entity.PositionStatus{entity.PositionStatusExpired}
	case dto.PositionFilterClosed:
		param.Statuses = []entity.PositionStatus{entity.PositionStatusCompleted, entity.PositionStatusStopped}
	default:
		return nil, fmt.Errorf("unknown position status filter: %s", filter)
	}
	return s.positionRepo.Get(ctx, param)
}

// Update shallow-merges the provided fields. Cross-field consistency is the
// caller's responsibility.
func (s *positionService) Update(ctx context.Context, id uint, req *dto.UpdatePositionRequest) error {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.ExitPrice != nil {
		fields["exit_price"] = *req.ExitPrice
	}
	if req.StopLossPrice != nil {
		fields["stop_loss_price"] = *req.StopLossPrice
	}
	if len(fields) == 0 {
		return nil
	}
	return s.positionRepo.UpdateFields(ctx, id, fields)
}

// Renew extends the expiration date and forces the position back to active
// regardless of its prior state. A missing id is a silent no-op.
func (s *positionService) Renew(ctx context.Context, id uint, extraDays int) error {
	position, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			s.logger.DebugContext(ctx, "Renew skipped: position not found", logger.Field("id", id))
			return nil
		}
		return err
	}

	fields := map[string]interface{}{
		"expiration_date": position.ExpirationDate.AddDate(0, 0, extraDays),
		"duration_days":   position.DurationDays + extraDays,
		"status":          entity.PositionStatusActive,
	}
	if err := s.positionRepo.UpdateFields(ctx, id, fields); err != nil {
		return fmt.Errorf("failed to renew position: %w", err)
	}

	s.logger.InfoContext(ctx, "Tracked position renewed",
		logger.Field("id", id),
		logger.IntField("extra_days", extraDays))
	return nil
}

func (s *positionService) Remove(ctx context.Context, id uint) error {
	return s.positionRepo.Delete(ctx, id)
}

func (s *positionService) AcknowledgeRiskAlert(ctx context.Context, riskAlertID uint) error {
	return s.riskAlertRepo.Acknowledge(ctx, riskAlertID)
}
