package entity

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// AlertSeverity ranks how urgent an alert is.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// AlertCondition is one threshold comparison inside a configuration.
type AlertCondition struct {
	Field     string  `json:"field"`
	Operator  string  `json:"operator"`
	Value     float64 `json:"value"`
	Timeframe string  `json:"timeframe,omitempty"`
}

// AlertConfiguration is a user-defined alert rule evaluated against tracked
// positions on each tick. A nil Symbol scopes the rule to the whole
// portfolio.
type AlertConfiguration struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Type        AlertType      `gorm:"not null;index" json:"type"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Symbol      *string        `gorm:"index" json:"symbol,omitempty"`
	Conditions  datatypes.JSON `gorm:"type:jsonb" json:"conditions"`
	Severity    AlertSeverity  `gorm:"not null;default:'medium'" json:"severity"`
	Enabled     bool           `gorm:"not null;default:true" json:"enabled"`

	NotifySound bool `gorm:"not null;default:false" json:"notify_sound"`
	NotifyEmail bool `gorm:"not null;default:false" json:"notify_email"`
	NotifyPush  bool `gorm:"not null;default:false" json:"notify_push"`

	// Stored preferences; not enforced by the evaluation core.
	ExpiresAt             *time.Time `json:"expires_at,omitempty"`
	RepeatIntervalMinutes *int       `json:"repeat_interval_minutes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AlertConfiguration) TableName() string {
	return "alert_configurations"
}

// ParseConditions decodes the JSONB conditions column.
func (c *AlertConfiguration) ParseConditions() ([]AlertCondition, error) {
	if len(c.Conditions) == 0 {
		return nil, nil
	}
	var conditions []AlertCondition
	if err := json.Unmarshal(c.Conditions, &conditions); err != nil {
		return nil, err
	}
	return conditions, nil
}

// Threshold returns the first condition's value. Evaluators compare their
// measured metric against it; a configuration without conditions yields zero.
func (c *AlertConfiguration) Threshold() float64 {
	conditions, err := c.ParseConditions()
	if err != nil || len(conditions) == 0 {
		return 0
	}
	return conditions[0].Value
}

// MarshalConditions encodes conditions into the JSONB column format.
func MarshalConditions(conditions []AlertCondition) (datatypes.JSON, error) {
	raw, err := json.Marshal(conditions)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
