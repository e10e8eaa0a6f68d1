package dto

import (
	"time"

	"margin-tracker/internal/entity"
)

// UnifiedAlertSource identifies which subsystem produced an alert.
type UnifiedAlertSource string

const (
	UnifiedSourceTrading UnifiedAlertSource = "trading"
	UnifiedSourceRisk    UnifiedAlertSource = "risk"
)

// UnifiedAlert is a read-only projection merging triggered alerts and
// position-scoped risk alerts into one shape. ID is prefixed with the source
// so acknowledge/dismiss calls can be routed back to the owning subsystem.
type UnifiedAlert struct {
	ID           string               `json:"id"`
	Source       UnifiedAlertSource   `json:"source"`
	Type         string               `json:"type"`
	Symbol       string               `json:"symbol,omitempty"`
	Title        string               `json:"title"`
	Message      string               `json:"message"`
	Severity     entity.AlertSeverity `json:"severity"`
	Status       string               `json:"status"`
	Timestamp    time.Time            `json:"timestamp"`
	Acknowledged bool                 `json:"acknowledged"`
}

// UnifiedAlertFilter narrows the unified listing.
type UnifiedAlertFilter struct {
	Source   UnifiedAlertSource
	Status   string
	Severity entity.AlertSeverity
	Symbol   string
}

// UnifiedAlertStats aggregates counts over the unified feed.
type UnifiedAlertStats struct {
	Total          int                          `json:"total"`
	Today          int                          `json:"today"`
	Acknowledged   int                          `json:"acknowledged"`
	Unacknowledged int                          `json:"unacknowledged"`
	BySource       map[UnifiedAlertSource]int   `json:"by_source"`
	BySeverity     map[entity.AlertSeverity]int `json:"by_severity"`
	ByType         map[string]int               `json:"by_type"`
}
