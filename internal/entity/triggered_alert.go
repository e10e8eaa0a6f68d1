package entity

import (
	"time"

	"gorm.io/datatypes"
)

// TriggeredAlertStatus is the lifecycle state of a triggered alert.
type TriggeredAlertStatus string

const (
	TriggeredStatusTriggered    TriggeredAlertStatus = "triggered"
	TriggeredStatusAcknowledged TriggeredAlertStatus = "acknowledged"
	TriggeredStatusDismissed    TriggeredAlertStatus = "dismissed"
	TriggeredStatusExpired      TriggeredAlertStatus = "expired"
)

// TriggeredAlert is one instance produced when a configuration's condition was
// satisfied. AlertID is a weak back-reference: deleting the configuration does
// not alter already-triggered alerts.
type TriggeredAlert struct {
	ID       uint                 `gorm:"primaryKey" json:"id"`
	AlertID  uint                 `gorm:"not null;index" json:"alert_id"`
	Type     AlertType            `gorm:"not null" json:"type"`
	Symbol   string               `gorm:"index" json:"symbol,omitempty"`
	Title    string               `gorm:"not null" json:"title"`
	Message  string               `json:"message"`
	Severity AlertSeverity        `gorm:"not null" json:"severity"`
	Status   TriggeredAlertStatus `gorm:"not null;default:'triggered';index" json:"status"`

	TriggeredAt    time.Time  `gorm:"not null" json:"triggered_at"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	DismissedAt    *time.Time `json:"dismissed_at,omitempty"`

	CurrentValue *float64 `json:"current_value,omitempty"`
	TargetValue  *float64 `json:"target_value,omitempty"`

	Metadata datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
}

func (TriggeredAlert) TableName() string {
	return "triggered_alerts"
}
