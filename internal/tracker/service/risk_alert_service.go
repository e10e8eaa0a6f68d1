package service

import (
	"fmt"
	"math"
	"time"

	"margin-tracker/internal/entity"
)

// RiskAlertService heuristically flags abnormal position behavior using only
// the position's own daily-update history.
type RiskAlertService interface {
	// Evaluate runs every rule against the position and its chronologically
	// ordered updates (including today's). All rules may fire in one pass.
	Evaluate(position *entity.TrackedPosition, updates []entity.DailyUpdate, now time.Time) []entity.RiskAlert
}

// NewRiskAlertService creates a new RiskAlertService.
func NewRiskAlertService() RiskAlertService {
	return &riskAlertService{}
}

type riskAlertService struct{}

func (s *riskAlertService) Evaluate(position *entity.TrackedPosition, updates []entity.DailyUpdate, now time.Time) []entity.RiskAlert {
	var alerts []entity.RiskAlert

	if alert := s.checkSuddenLoss(position, updates, now); alert != nil {
		alerts = append(alerts, *alert)
	}
	if alert := s.checkHighVolatility(position, now); alert != nil {
		alerts = append(alerts, *alert)
	}
	if alert := s.checkMarginRisk(position, now); alert != nil {
		alerts = append(alerts, *alert)
	}
	if alert := s.checkProfitDecline(position, updates, now); alert != nil {
		alerts = append(alerts, *alert)
	}

	return alerts
}

// checkSuddenLoss fires on a day-over-day relative ROI drop of more than 10%.
func (s *riskAlertService) checkSuddenLoss(position *entity.TrackedPosition, updates []entity.DailyUpdate, now time.Time) *entity.RiskAlert {
	if len(updates) < 2 {
		return nil
	}
	today := updates[len(updates)-1]
	yesterday := updates[len(updates)-2]
	if yesterday.ROI == 0 {
		return nil
	}

	change := (today.ROI - yesterday.ROI) / math.Abs(yesterday.ROI) * 100
	if change >= -10 {
		return nil
	}

	severity := entity.SeverityLow
	switch {
	case change < -25:
		severity = entity.SeverityHigh
	case change < -15:
		severity = entity.SeverityMedium
	}

	return &entity.RiskAlert{
		PositionID: position.ID,
		Type:       entity.RiskAlertSuddenLoss,
		Severity:   severity,
		Message:    fmt.Sprintf("%s ROI dropped %.1f%% day-over-day (%.2f%% -> %.2f%%)", position.Symbol, -change, yesterday.ROI, today.ROI),
		Timestamp:  now,
	}
}

// checkHighVolatility fires when the price moved more than 15% from entry
// while the position is under water.
func (s *riskAlertService) checkHighVolatility(position *entity.TrackedPosition, now time.Time) *entity.RiskAlert {
	if position.EntryPrice <= 0 {
		return nil
	}
	swing := math.Abs(position.CurrentPrice-position.EntryPrice) / position.EntryPrice * 100
	if swing <= 15 || position.CurrentROI >= 0 {
		return nil
	}

	severity := entity.SeverityMedium
	if swing > 25 {
		severity = entity.SeverityHigh
	}

	return &entity.RiskAlert{
		PositionID: position.ID,
		Type:       entity.RiskAlertHighVolatility,
		Severity:   severity,
		Message:    fmt.Sprintf("%s moved %.1f%% from entry while ROI is negative", position.Symbol, swing),
		Timestamp:  now,
	}
}

// checkMarginRisk fires when the price is at or below the margin-call price.
func (s *riskAlertService) checkMarginRisk(position *entity.TrackedPosition, now time.Time) *entity.RiskAlert {
	marginCallPrice := position.MarginCallPrice()
	if marginCallPrice <= 0 || position.CurrentPrice > marginCallPrice {
		return nil
	}

	return &entity.RiskAlert{
		PositionID: position.ID,
		Type:       entity.RiskAlertMarginRisk,
		Severity:   entity.SeverityHigh,
		Message:    fmt.Sprintf("%s at %.2f is at or below the margin-call price %.2f", position.Symbol, position.CurrentPrice, marginCallPrice),
		Timestamp:  now,
	}
}

// checkProfitDecline fires on three strictly decreasing ROIs while the
// position is more than 5% under water.
func (s *riskAlertService) checkProfitDecline(position *entity.TrackedPosition, updates []entity.DailyUpdate, now time.Time) *entity.RiskAlert {
	if len(updates) < 3 {
		return nil
	}
	last := updates[len(updates)-3:]
	if !(last[0].ROI > last[1].ROI && last[1].ROI > last[2].ROI) {
		return nil
	}
	if position.CurrentROI >= -5 {
		return nil
	}

	severity := entity.SeverityMedium
	if position.CurrentROI < -15 {
		severity = entity.SeverityHigh
	}

	return &entity.RiskAlert{
		PositionID: position.ID,
		Type:       entity.RiskAlertProfitDecline,
		Severity:   severity,
		Message:    fmt.Sprintf("%s ROI declined three days in a row to %.2f%%", position.Symbol, position.CurrentROI),
		Timestamp:  now,
	}
}
