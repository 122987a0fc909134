package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	EventType   string     `json:"event_type" validate:"max=50"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Location    string     `json:"location" validate:"max=200"`
	GuestCount  int        `json:"guest_count" validate:"gte=0"`
	IsPublic    bool       `json:"is_public"`
	Budget      *float64   `json:"budget,omitempty" validate:"omitempty,gte=0"`
}

type EventResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	EventType   string     `json:"event_type"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Location    string     `json:"location,omitempty"`
	GuestCount  int        `json:"guest_count,omitempty"`
	IsPublic    bool       `json:"is_public"`
	Budget      *float64   `json:"budget,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
