package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "EVENT_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes published on the bus.
const (
	TypeEventCreated     = "event_created"
	TypeSessionCompleted = "session_completed"
	TypeSystemBroadcast  = "system_broadcast"
)

// NewEventCreated builds the event announcing that a planned event was
// committed, either through the chat flow or the direct API.
func NewEventCreated(eventID, creatorID uuid.UUID, title, eventType string, startDate time.Time) Event {
	return BaseEvent{
		Type: TypeEventCreated,
		Data: map[string]interface{}{
			"event_id":   eventID.String(),
			"creator_id": creatorID.String(),
			"title":      title,
			"event_type": eventType,
			"start_date": startDate.Format(time.RFC3339),
		},
		OccurredAt: time.Now(),
	}
}

// NewSystemBroadcast builds an announcement delivered to every connected user.
func NewSystemBroadcast(title, message string) Event {
	return BaseEvent{
		Type: TypeSystemBroadcast,
		Data: map[string]interface{}{
			"title":   title,
			"message": message,
		},
		OccurredAt: time.Now(),
	}
}

// NewSessionCompleted marks a chat session that finished with a commit.
func NewSessionCompleted(sessionID, userID, eventID uuid.UUID) Event {
	return BaseEvent{
		Type: TypeSessionCompleted,
		Data: map[string]interface{}{
			"session_id": sessionID.String(),
			"user_id":    userID.String(),
			"event_id":   eventID.String(),
		},
		OccurredAt: time.Now(),
	}
}
