package dto

import (
	"time"

	"github.com/spec-kit/edupulse/internal/domain"
)

// ActivityLogResponse is one audit-trail row in the admin log view.
type ActivityLogResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	IPAddress string    `json:"ip_address"`
	Timestamp time.Time `json:"timestamp"`
}

// NewActivityLogResponses maps audit records to their API view.
func NewActivityLogResponses(logs []*domain.ActivityLog) []ActivityLogResponse {
	out := make([]ActivityLogResponse, 0, len(logs))
	for _, log := range logs {
		out = append(out, ActivityLogResponse{
			ID:        log.ID,
			UserID:    log.UserID,
			Action:    log.Action,
			Details:   log.Details,
			IPAddress: log.IPAddress,
			Timestamp: log.Timestamp,
		})
	}
	return out
}
