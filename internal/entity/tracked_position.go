package entity

import (
	"time"

	"github.com/lib/pq"
)

// PositionStatus is the lifecycle state of a tracked position.
type PositionStatus string

const (
	PositionStatusActive    PositionStatus = "active"
	PositionStatusCompleted PositionStatus = "completed"
	PositionStatusStopped   PositionStatus = "stopped"
	PositionStatusExpired   PositionStatus = "expired"
)

// Closed reports whether the status is a terminal exit (completed or stopped).
func (s PositionStatus) Closed() bool {
	return s == PositionStatusCompleted || s == PositionStatusStopped
}

// TrackedPosition represents one simulated margin trade. Trade terms are
// immutable after creation; the current* snapshot fields are recomputed on
// each refresh.
type TrackedPosition struct {
	ID     uint           `gorm:"primaryKey" json:"id"`
	Symbol string         `gorm:"not null;index" json:"symbol"`
	Name   string         `json:"name"`
	Tags   pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`

	EntryPrice       float64 `gorm:"not null" json:"entry_price"`
	ExitPrice        float64 `gorm:"not null" json:"exit_price"`
	StopLossPrice    float64 `gorm:"not null" json:"stop_loss_price"`
	Shares           float64 `gorm:"not null" json:"shares"`
	InvestmentAmount float64 `gorm:"not null" json:"investment_amount"`
	MarginUsed       float64 `gorm:"not null" json:"margin_used"`
	OwnCash          float64 `gorm:"not null" json:"own_cash"`
	MarginRatio      float64 `json:"margin_ratio"`
	DurationDays     int     `gorm:"not null" json:"duration_days"`
	IsGoldSubscriber bool    `gorm:"not null;default:false" json:"is_gold_subscriber"`

	EntryDate      time.Time      `gorm:"not null" json:"entry_date"`
	ExpirationDate time.Time      `gorm:"not null" json:"expiration_date"`
	Status         PositionStatus `gorm:"not null;default:'active';index" json:"status"`

	CurrentPrice  float64 `json:"current_price"`
	CurrentProfit float64 `json:"current_profit"`
	CurrentROI    float64 `json:"current_roi"`
	DaysElapsed   int     `json:"days_elapsed"`
	TotalInterest float64 `json:"total_interest"`

	DailyUpdates []DailyUpdate `gorm:"foreignKey:PositionID" json:"daily_updates,omitempty"`
	RiskAlerts   []RiskAlert   `gorm:"foreignKey:PositionID" json:"risk_alerts,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TrackedPosition) TableName() string {
	return "tracked_positions"
}

// MarginCallPrice derives the price at which equity falls below the 25%
// maintenance requirement: equity < 25% of portfolio value implies
// price <= marginUsed / (0.75 * shares), i.e. (marginUsed * 4/3) / shares.
func (p *TrackedPosition) MarginCallPrice() float64 {
	if p.Shares <= 0 {
		return 0
	}
	return (p.MarginUsed * 4.0 / 3.0) / p.Shares
}
