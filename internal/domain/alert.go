package domain

import "time"

// AlertSeverity grades campus alerts.
type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityInfo     AlertSeverity = "info"
)

// Alert is a broadcast notice shown to all authenticated users.
type Alert struct {
	ID          string
	Title       string
	Severity    AlertSeverity
	Description string
	Timestamp   time.Time
}
