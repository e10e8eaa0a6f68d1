package dto

// CreatePositionRequest carries the immutable trade terms of a new tracked
// position.
type CreatePositionRequest struct {
	Symbol           string   `json:"symbol"`
	Name             string   `json:"name"`
	Tags             []string `json:"tags"`
	EntryPrice       float64  `json:"entry_price"`
	ExitPrice        float64  `json:"exit_price"`
	StopLossPrice    float64  `json:"stop_loss_price"`
	Shares           float64  `json:"shares"`
	InvestmentAmount float64  `json:"investment_amount"`
	MarginUsed       float64  `json:"margin_used"`
	OwnCash          float64  `json:"own_cash"`
	MarginRatio      float64  `json:"margin_ratio"`
	DurationDays     int      `json:"duration_days"`
	IsGoldSubscriber bool     `json:"is_gold_subscriber"`
}

// UpdatePositionRequest shallow-merges the provided fields onto a position.
// Cross-field consistency is the caller's responsibility.
type UpdatePositionRequest struct {
	Name          *string  `json:"name,omitempty"`
	ExitPrice     *float64 `json:"exit_price,omitempty"`
	StopLossPrice *float64 `json:"stop_loss_price,omitempty"`
}

// RenewPositionRequest extends a position's expiration.
type RenewPositionRequest struct {
	ExtraDays int `json:"extra_days"`
}

// PositionStatusFilter selects which lifecycle bucket to list.
type PositionStatusFilter string

const (
	PositionFilterActive  PositionStatusFilter = "active"
	PositionFilterExpired PositionStatusFilter = "expired"
	// PositionFilterClosed covers completed and stopped positions.
	PositionFilterClosed PositionStatusFilter = "closed"
)
