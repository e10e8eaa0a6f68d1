package entity

import "time"

// DailyUpdate is one snapshot of a position per calendar day. A refresh on a
// day that already has an update overwrites it instead of appending.
type DailyUpdate struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PositionID     uint      `gorm:"not null;uniqueIndex:idx_daily_updates_position_date" json:"position_id"`
	Date           time.Time `gorm:"not null;type:date;uniqueIndex:idx_daily_updates_position_date" json:"date"`
	Price          float64   `gorm:"not null" json:"price"`
	GrossProfit    float64   `json:"gross_profit"`
	GrossLoss      float64   `json:"gross_loss"`
	TotalInterest  float64   `json:"total_interest"`
	ROI            float64   `json:"roi"`
	MarginCallRisk bool      `gorm:"not null;default:false" json:"margin_call_risk"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DailyUpdate) TableName() string {
	return "daily_updates"
}
