package entity

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	Id          uuid.UUID
	CreatorId   uuid.UUID
	Title       string
	Description string
	EventType   string
	StartDate   time.Time
	EndDate     *time.Time
	Location    string
	GuestCount  int
	IsPublic    bool
	Budget      *float64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
