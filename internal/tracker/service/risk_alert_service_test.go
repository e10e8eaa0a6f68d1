package service

import (
	"testing"
	"time"

	"margin-tracker/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func riskPosition() *entity.TrackedPosition {
	return &entity.TrackedPosition{
		ID:         1,
		Symbol:     "TSLA",
		EntryPrice: 100,
		Shares:     10,
		MarginUsed: 300,
		OwnCash:    700,
	}
}

func updatesWithROI(rois ...float64) []entity.DailyUpdate {
	updates := make([]entity.DailyUpdate, len(rois))
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, roi := range rois {
		updates[i] = entity.DailyUpdate{
			PositionID: 1,
			Date:       base.AddDate(0, 0, i),
			ROI:        roi,
		}
	}
	return updates
}

func findRiskAlert(alerts []entity.RiskAlert, alertType entity.RiskAlertType) *entity.RiskAlert {
	for i := range alerts {
		if alerts[i].Type == alertType {
			return &alerts[i]
		}
	}
	return nil
}

func TestSuddenLoss(t *testing.T) {
	svc := NewRiskAlertService()
	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		rois         []float64
		wantSeverity entity.AlertSeverity
		wantFire     bool
	}{
		{"mild drop fires low", []float64{10, 8.9}, entity.SeverityLow, true},
		{"deeper drop fires medium", []float64{10, 8}, entity.SeverityMedium, true},
		{"steep drop fires high", []float64{10, 7}, entity.SeverityHigh, true},
		{"small drop does not fire", []float64{10, 9.5}, "", false},
		{"improvement does not fire", []float64{5, 8}, "", false},
		{"zero baseline does not fire", []float64{0, -5}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := riskPosition()
			alerts := svc.Evaluate(pos, updatesWithROI(tt.rois...), now)
			alert := findRiskAlert(alerts, entity.RiskAlertSuddenLoss)
			if !tt.wantFire {
				assert.Nil(t, alert)
				return
			}
			require.NotNil(t, alert)
			assert.Equal(t, tt.wantSeverity, alert.Severity)
			assert.Equal(t, now, alert.Timestamp)
		})
	}
}

func TestSuddenLossNeedsTwoUpdates(t *testing.T) {
	svc := NewRiskAlertService()
	pos := riskPosition()
	alerts := svc.Evaluate(pos, updatesWithROI(-50), time.Now())
	assert.Nil(t, findRiskAlert(alerts, entity.RiskAlertSuddenLoss))
}

func TestHighVolatility(t *testing.T) {
	svc := NewRiskAlertService()
	now := time.Now()

	// 20% below entry while under water.
	pos := riskPosition()
	pos.CurrentPrice = 80
	pos.CurrentROI = -20
	alerts := svc.Evaluate(pos, nil, now)
	alert := findRiskAlert(alerts, entity.RiskAlertHighVolatility)
	require.NotNil(t, alert)
	assert.Equal(t, entity.SeverityMedium, alert.Severity)

	// Beyond 25% the severity is high.
	pos.CurrentPrice = 70
	alerts = svc.Evaluate(pos, nil, now)
	alert = findRiskAlert(alerts, entity.RiskAlertHighVolatility)
	require.NotNil(t, alert)
	assert.Equal(t, entity.SeverityHigh, alert.Severity)

	// A 20% move with positive ROI is not flagged.
	pos.CurrentPrice = 120
	pos.CurrentROI = 15
	alerts = svc.Evaluate(pos, nil, now)
	assert.Nil(t, findRiskAlert(alerts, entity.RiskAlertHighVolatility))
}

func TestMarginRisk(t *testing.T) {
	svc := NewRiskAlertService()
	pos := riskPosition()
	// Margin-call price = (300*4/3)/10 = 40.
	pos.CurrentPrice = 40

	alerts := svc.Evaluate(pos, nil, time.Now())
	alert := findRiskAlert(alerts, entity.RiskAlertMarginRisk)
	require.NotNil(t, alert)
	assert.Equal(t, entity.SeverityHigh, alert.Severity)

	pos.CurrentPrice = 40.01
	alerts = svc.Evaluate(pos, nil, time.Now())
	assert.Nil(t, findRiskAlert(alerts, entity.RiskAlertMarginRisk))
}

func TestProfitDecline(t *testing.T) {
	svc := NewRiskAlertService()
	now := time.Now()

	pos := riskPosition()
	pos.CurrentROI = -8
	alerts := svc.Evaluate(pos, updatesWithROI(-2, -5, -8), now)
	alert := findRiskAlert(alerts, entity.RiskAlertProfitDecline)
	require.NotNil(t, alert)
	assert.Equal(t, entity.SeverityMedium, alert.Severity)

	// Deep under water the severity is high.
	pos.CurrentROI = -20
	alerts = svc.Evaluate(pos, updatesWithROI(-10, -15, -20), now)
	alert = findRiskAlert(alerts, entity.RiskAlertProfitDecline)
	require.NotNil(t, alert)
	assert.Equal(t, entity.SeverityHigh, alert.Severity)

	// Not strictly decreasing.
	pos.CurrentROI = -8
	alerts = svc.Evaluate(pos, updatesWithROI(-8, -5, -8), now)
	assert.Nil(t, findRiskAlert(alerts, entity.RiskAlertProfitDecline))

	// Declining but not under water enough.
	pos.CurrentROI = -3
	alerts = svc.Evaluate(pos, updatesWithROI(3, 0, -3), now)
	assert.Nil(t, findRiskAlert(alerts, entity.RiskAlertProfitDecline))
}
