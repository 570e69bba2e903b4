package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserLoggedIn EventType = "user_logged_in"
	EventUserCreated  EventType = "user_created"
	EventUserDeleted  EventType = "user_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ActivityPayload carries the audit-relevant facts of an event.
type ActivityPayload struct {
	Action    string `json:"action"`
	Details   string `json:"details"`
	IPAddress string `json:"ip_address"`
}

// NewActivityEvent builds an event carrying an audit payload.
func NewActivityEvent(eventType EventType, actorID, action, details, ipAddress string) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload: ActivityPayload{
			Action:    action,
			Details:   details,
			IPAddress: ipAddress,
		},
	}
}
