package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	Status           string
	Draft            EventDraft
	Context          map[string]interface{}
	CommittedEventId *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        *time.Time
	CompletedAt      *time.Time
}
