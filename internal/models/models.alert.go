// FilePath: internal/models/models.alert.go
package models

import "time"

// AlertType enumerates demo alert categories.
type AlertType string

const (
	AlertTemp     AlertType = "temp"
	AlertHumidity AlertType = "humidity"
	AlertQueen    AlertType = "queen"
)

// Severity is the alert severity tier.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank orders severities: high > medium > low. Unknown values rank 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// RiskLevel is the derived per-hive risk from its alerts.
type RiskLevel string

const (
	RiskNone   RiskLevel = "none"
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// AlertHive is the hive snapshot embedded in an alert. It is a copy taken
// when the alert was generated, not a live reference; the engine resolves
// display fields from the merged fleet where freshness matters.
type AlertHive struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	ApiaryID  string  `json:"apiaryId"`
}

type Alert struct {
	ID        string    `json:"id"`
	Type      AlertType `json:"type"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title"`
	ListKey   string    `json:"listKey,omitempty"`
	ListText  string    `json:"listText,omitempty"`
	Hive      AlertHive `json:"hive"`
	Cause     string    `json:"cause,omitempty"`
	Details   string    `json:"details,omitempty"`
	Resolved  bool      `json:"resolved"`
}
