package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"event-planner-be/internal/model"
	"event-planner-be/internal/pkg/logger"
	"event-planner-be/internal/repository"
	"event-planner-be/pkg/events"
	pktNats "event-planner-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// GetNotifications returns a page of the user's notifications with the total count.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, userID, notificationID)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

// Start begins listening to the event bus with a durable consumer.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", event.EventType()), map[string]interface{}{"type": event.EventType()})

	switch event.EventType() {
	case events.TypeEventCreated:
		return s.handleEventCreated(ctx, event)
	case events.TypeSessionCompleted:
		// The commit itself already produces an event_created notification.
		return nil
	case events.TypeSystemBroadcast:
		return s.handleSystemBroadcast(event)
	default:
		s.logger.Warn("NotificationService", "No handler for event type", map[string]interface{}{"type": event.EventType()})
		return nil
	}
}

// Broadcasts are transient: pushed to every connected client, never persisted.
func (s *NotificationService) handleSystemBroadcast(event events.Event) error {
	payload := event.Payload()
	title, _ := payload["title"].(string)
	message, _ := payload["message"].(string)

	if s.delivery != nil {
		s.delivery.Broadcast(model.Notification{
			ID:        uuid.New(),
			TypeCode:  events.TypeSystemBroadcast,
			Title:     title,
			Message:   message,
			CreatedAt: event.Timestamp(),
		})
	}
	return nil
}

func (s *NotificationService) handleEventCreated(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	creatorStr, _ := payload["creator_id"].(string)
	creatorID, err := uuid.Parse(creatorStr)
	if err != nil {
		s.logger.Warn("NotificationService", "event_created without valid creator_id", map[string]interface{}{"payload": payload})
		return nil
	}

	title, _ := payload["title"].(string)
	eventIDStr, _ := payload["event_id"].(string)

	var entityID *uuid.UUID
	if id, err := uuid.Parse(eventIDStr); err == nil {
		entityID = &id
	}

	meta, _ := json.Marshal(payload)

	notif := model.Notification{
		ID:         uuid.New(),
		UserID:     creatorID,
		TypeCode:   events.TypeEventCreated,
		EntityType: "event",
		EntityID:   entityID,
		Title:      "Event created",
		Message:    fmt.Sprintf("Your event %q has been created.", title),
		Metadata:   datatypes.JSON(meta),
		IsRead:     false,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.CreateNotification(ctx, &notif); err != nil {
		s.logger.Error("NotificationService", "Failed to persist notification", map[string]interface{}{"error": err.Error()})
		return err // NATS will redeliver
	}

	if s.delivery != nil {
		s.delivery.Send(creatorID, notif)
	}

	return nil
}
