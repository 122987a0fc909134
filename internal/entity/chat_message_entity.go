package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Role          string
	Content       string
	Suggestions   []string
	EventPreview  *EventPreview
	CreatedAt     time.Time
}
