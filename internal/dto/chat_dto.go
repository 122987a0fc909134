package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartSessionRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
	// Optional caller-supplied context stored with the session.
	Context map[string]interface{} `json:"context,omitempty"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// EventPreviewDTO mirrors the draft snapshot attached to assistant replies.
type EventPreviewDTO struct {
	Title       string     `json:"title"`
	Date        *time.Time `json:"date"`
	Location    string     `json:"location"`
	EventType   string     `json:"type"`
	Description string     `json:"description"`
	Duration    string     `json:"duration,omitempty"`
	GuestCount  int        `json:"guest_count,omitempty"`
}

type DraftDTO struct {
	Title       string     `json:"title,omitempty"`
	EventType   string     `json:"event_type,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Location    string     `json:"location,omitempty"`
	GuestCount  int        `json:"guest_count,omitempty"`
	Duration    string     `json:"duration,omitempty"`
	Description string     `json:"description,omitempty"`
}

type ChatMessageResponse struct {
	Id           uuid.UUID        `json:"id"`
	Role         string           `json:"role"`
	Content      string           `json:"content"`
	Suggestions  []string         `json:"suggestions,omitempty"`
	EventPreview *EventPreviewDTO `json:"event_preview,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

type SessionResponse struct {
	Id               uuid.UUID             `json:"id"`
	Status           string                `json:"status"`
	Draft            DraftDTO              `json:"draft"`
	CommittedEventId *uuid.UUID            `json:"committed_event_id,omitempty"`
	Messages         []ChatMessageResponse `json:"messages"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        *time.Time            `json:"updated_at,omitempty"`
}

type SessionSummaryResponse struct {
	Id         uuid.UUID  `json:"id"`
	Status     string     `json:"status"`
	DraftTitle string     `json:"draft_title,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type SendMessageResponse struct {
	ChatSessionId uuid.UUID            `json:"chat_session_id"`
	Reply         *ChatMessageResponse `json:"reply"`
	Suggestions   []string             `json:"suggestions"`
	EventPreview  *EventPreviewDTO     `json:"event_preview,omitempty"`
}

type CompleteSessionResponse struct {
	EventId uuid.UUID `json:"event_id"`
	Success bool      `json:"success"`
	Message string    `json:"message"`
}
