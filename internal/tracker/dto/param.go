package dto

import "margin-tracker/internal/entity"

// GetPositionsParam filters tracked-position queries.
type GetPositionsParam struct {
	IDs            []uint
	Symbols        []string
	Statuses       []entity.PositionStatus
	WithUpdates    bool
	WithRiskAlerts bool
}

// GetAlertConfigurationsParam filters configuration queries.
type GetAlertConfigurationsParam struct {
	Enabled *bool
	Symbol  string
	Types   []entity.AlertType
}
