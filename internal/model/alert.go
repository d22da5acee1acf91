package model

import "time"

const (
	AlertSeverityInfo     = "info"
	AlertSeverityWarning  = "warning"
	AlertSeverityCritical = "critical"
)

func ValidAlertSeverity(severity string) bool {
	switch severity {
	case AlertSeverityInfo, AlertSeverityWarning, AlertSeverityCritical:
		return true
	}
	return false
}

type Alert struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	FarmID    int64     `json:"farm_id"`
	AlertType string    `json:"alert_type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`

	// Joined from the farm on list queries.
	FarmName *string `json:"farm_name,omitempty"`
}
