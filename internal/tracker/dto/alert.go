package dto

import (
	"time"

	"margin-tracker/internal/entity"
)

// CreateAlertRequest creates a new alert configuration.
type CreateAlertRequest struct {
	Type                  entity.AlertType        `json:"type"`
	Name                  string                  `json:"name"`
	Description           string                  `json:"description"`
	Symbol                *string                 `json:"symbol,omitempty"`
	Conditions            []entity.AlertCondition `json:"conditions"`
	Severity              entity.AlertSeverity    `json:"severity"`
	Enabled               bool                    `json:"enabled"`
	NotifySound           bool                    `json:"notify_sound"`
	NotifyEmail           bool                    `json:"notify_email"`
	NotifyPush            bool                    `json:"notify_push"`
	ExpiresAt             *time.Time              `json:"expires_at,omitempty"`
	RepeatIntervalMinutes *int                    `json:"repeat_interval_minutes,omitempty"`
}

// UpdateAlertRequest shallow-merges partial fields onto a configuration.
type UpdateAlertRequest struct {
	Name        *string                 `json:"name,omitempty"`
	Description *string                 `json:"description,omitempty"`
	Symbol      *string                 `json:"symbol,omitempty"`
	Conditions  []entity.AlertCondition `json:"conditions,omitempty"`
	Severity    *entity.AlertSeverity   `json:"severity,omitempty"`
	Enabled     *bool                   `json:"enabled,omitempty"`
	NotifySound *bool                   `json:"notify_sound,omitempty"`
	NotifyEmail *bool                   `json:"notify_email,omitempty"`
	NotifyPush  *bool                   `json:"notify_push,omitempty"`
}

// GetTriggeredAlertsParam filters the triggered-alerts listing.
type GetTriggeredAlertsParam struct {
	Statuses   []entity.TriggeredAlertStatus
	Types      []entity.AlertType
	Severities []entity.AlertSeverity
	Symbol     string
}
