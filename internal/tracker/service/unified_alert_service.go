package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"margin-tracker/internal/entity"
	"margin-tracker/internal/tracker/dto"
	"margin-tracker/internal/tracker/repository"
	"margin-tracker/pkg/utils"
)

// ErrUnknownUnifiedAlertID is returned when a unified alert id has no
// recognizable source prefix.
var ErrUnknownUnifiedAlertID = fmt.Errorf("unknown unified alert id")

// UnifiedAlertService merges triggered trading alerts and position-scoped risk
// alerts into one read-only feed with lifecycle routing back to the owning
// subsystem.
type UnifiedAlertService interface {
	List(ctx context.Context, filter dto.UnifiedAlertFilter) ([]dto.UnifiedAlert, error)
	Stats(ctx context.Context) (*dto.UnifiedAlertStats, error)
	Acknowledge(ctx context.Context, unifiedID string) error
	Dismiss(ctx context.Context, unifiedID string) error
}

// NewUnifiedAlertService creates a new UnifiedAlertService.
func NewUnifiedAlertService(
	triggeredRepo repository.TriggeredAlertRepository,
	positionRepo repository.PositionRepository,
	riskAlertRepo repository.RiskAlertRepository,
	engine AlertEngineService,
) UnifiedAlertService {
	return &unifiedAlertService{
		triggeredRepo: triggeredRepo,
		positionRepo:  positionRepo,
		riskAlertRepo: riskAlertRepo,
		engine:        engine,
		now:           time.Now,
	}
}

type unifiedAlertService struct {
	triggeredRepo repository.TriggeredAlertRepository
	positionRepo  repository.PositionRepository
	riskAlertRepo repository.RiskAlertRepository
	engine        AlertEngineService
	now           func() time.Time
}

func (s *unifiedAlertService) List(ctx context.Context, filter dto.UnifiedAlertFilter) ([]dto.UnifiedAlert, error) {
	merged, err := s.merge(ctx)
	if err != nil {
		return nil, err
	}

	filtered := merged[:0]
	for _, alert := range merged {
		if filter.Source != "" && alert.Source != filter.Source {
			continue
		}
		if filter.Status != "" && alert.Status != filter.Status {
			continue
		}
		if filter.Severity != "" && alert.Severity != filter.Severity {
			continue
		}
		if filter.Symbol != "" && alert.Symbol != filter.Symbol {
			continue
		}
		filtered = append(filtered, alert)
	}
	return filtered, nil
}

func (s *unifiedAlertService) Stats(ctx context.Context) (*dto.UnifiedAlertStats, error) {
	merged, err := s.merge(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.UnifiedAlertStats{
		BySource:   map[dto.UnifiedAlertSource]int{},
		BySeverity: map[entity.AlertSeverity]int{},
		ByType:     map[string]int{},
	}
	today := utils.TruncateToDay(s.now())
	for _, alert := range merged {
		stats.Total++
		if !alert.Timestamp.Before(today) {
			stats.Today++
		}
		if alert.Acknowledged {
			stats.Acknowledged++
		} else {
			stats.Unacknowledged++
		}
		stats.BySource[alert.Source]++
		stats.BySeverity[alert.Severity]++
		stats.ByType[alert.Type]++
	}
	return stats, nil
}

// merge loads both alert streams and sorts the union newest first.
func (s *unifiedAlertService) merge(ctx context.Context) ([]dto.UnifiedAlert, error) {
	triggered, err := s.triggeredRepo.Get(ctx, dto.GetTriggeredAlertsParam{})
	if err != nil {
		return nil, fmt.Errorf("failed to load triggered alerts: %w", err)
	}

	positions, err := s.positionRepo.Get(ctx, dto.GetPositionsParam{WithRiskAlerts: true})
	if err != nil {
		return nil, fmt.Errorf("failed to load positions: %w", err)
	}

	merged := make([]dto.UnifiedAlert, 0, len(triggered))
	for _, alert := range triggered {
		merged = append(merged, dto.UnifiedAlert{
			ID:           fmt.Sprintf("trading-%d", alert.ID),
			Source:       dto.UnifiedSourceTrading,
			Type:         string(alert.Type),
			Symbol:       alert.Symbol,
			Title:        alert.Title,
			Message:      alert.Message,
			Severity:     alert.Severity,
			Status:       string(alert.Status),
			Timestamp:    alert.TriggeredAt,
			Acknowledged: alert.Status == entity.TriggeredStatusAcknowledged || alert.Status == entity.TriggeredStatusDismissed,
		})
	}

	for _, position := range positions {
		for _, alert := range position.RiskAlerts {
			status := "triggered"
			if alert.Acknowledged {
				status = "acknowledged"
			}
			merged = append(merged, dto.UnifiedAlert{
				ID:           fmt.Sprintf("risk-%d", alert.ID),
				Source:       dto.UnifiedSourceRisk,
				Type:         string(alert.Type),
				Symbol:       position.Symbol,
				Title:        fmt.Sprintf("Risk: %s", alert.Type),
				Message:      alert.Message,
				Severity:     alert.Severity,
				Status:       status,
				Timestamp:    alert.Timestamp,
				Acknowledged: alert.Acknowledged,
			})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})
	return merged, nil
}

func (s *unifiedAlertService) Acknowledge(ctx context.Context, unifiedID string) error {
	source, id, err := splitUnifiedID(unifiedID)
	if err != nil {
		return err
	}
	switch source {
	case dto.UnifiedSourceTrading:
		return s.engine.AcknowledgeAlert(ctx, id)
	case dto.UnifiedSourceRisk:
		return s.riskAlertRepo.Acknowledge(ctx, id)
	}
	return ErrUnknownUnifiedAlertID
}

// Dismiss removes a trading alert from the active feed. Risk alerts have no
// dismissed state; dismissing one acknowledges it.
func (s *unifiedAlertService) Dismiss(ctx context.Context, unifiedID string) error {
	source, id, err := splitUnifiedID(unifiedID)
	if err != nil {
		return err
	}
	switch source {
	case dto.UnifiedSourceTrading:
		return s.engine.DismissAlert(ctx, id)
	case dto.UnifiedSourceRisk:
		return s.riskAlertRepo.Acknowledge(ctx, id)
	}
	return ErrUnknownUnifiedAlertID
}

func splitUnifiedID(unifiedID string) (dto.UnifiedAlertSource, uint, error) {
	source, raw, found := strings.Cut(unifiedID, "-")
	if !found {
		return "", 0, fmt.Errorf("%w: %s", ErrUnknownUnifiedAlertID, unifiedID)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %s", ErrUnknownUnifiedAlertID, unifiedID)
	}
	switch dto.UnifiedAlertSource(source) {
	case dto.UnifiedSourceTrading, dto.UnifiedSourceRisk:
		return dto.UnifiedAlertSource(source), uint(id), nil
	}
	return "", 0, fmt.Errorf("%w: %s", ErrUnknownUnifiedAlertID, unifiedID)
}
