package entity

import "time"

// RiskAlertType classifies the heuristic that produced a position-scoped risk
// alert.
type RiskAlertType string

const (
	RiskAlertSuddenLoss     RiskAlertType = "sudden_loss"
	RiskAlertHighVolatility RiskAlertType = "high_volatility"
	RiskAlertMarginRisk     RiskAlertType = "margin_risk"
	RiskAlertProfitDecline  RiskAlertType = "profit_decline"
)

// RiskAlert is owned by exactly one TrackedPosition. Risk alerts are never
// removed automatically; they are only acknowledged.
type RiskAlert struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	PositionID   uint          `gorm:"not null;index" json:"position_id"`
	Type         RiskAlertType `gorm:"not null" json:"type"`
	Severity     AlertSeverity `gorm:"not null" json:"severity"`
	Message      string        `gorm:"not null" json:"message"`
	Timestamp    time.Time     `gorm:"not null" json:"timestamp"`
	Acknowledged bool          `gorm:"not null;default:false" json:"acknowledged"`
}

func (RiskAlert) TableName() string {
	return "risk_alerts"
}
