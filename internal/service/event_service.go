package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"event-planner-be/internal/dto"
	"event-planner-be/internal/entity"
	"event-planner-be/internal/pkg/apperrors"
	"event-planner-be/internal/pkg/logger"
	"event-planner-be/internal/repository/specification"
	"event-planner-be/internal/repository/unitofwork"
	"event-planner-be/pkg/events"
	"event-planner-be/pkg/nats"

	"github.com/google/uuid"
)

type IEventService interface {
	CreateEvent(ctx context.Context, userId uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetEvent(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.EventResponse, error)
	ListUserEvents(ctx context.Context, userId uuid.UUID) ([]*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

// EventCreatedPayload travels over the in-process bus to the email consumer.
type EventCreatedPayload struct {
	EventId   uuid.UUID `json:"event_id"`
	CreatorId uuid.UUID `json:"creator_id"`
}

type eventService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *nats.Publisher
	logger           logger.ILogger
}

func NewEventService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *nats.Publisher,
	log logger.ILogger,
) IEventService {
	return &eventService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, userId uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.Validation("event title is required")
	}
	if req.StartDate.IsZero() {
		return nil, apperrors.Validation("event start date is required")
	}
	if req.GuestCount < 0 {
		return nil, apperrors.Validation("guest count cannot be negative")
	}

	eventType := req.EventType
	if eventType == "" {
		eventType = "other"
	}

	event := entity.Event{
		Id:          uuid.New(),
		CreatorId:   userId,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		EventType:   eventType,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		GuestCount:  req.GuestCount,
		IsPublic:    req.IsPublic,
		Budget:      req.Budget,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.EventRepository().Create(ctx, &event); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Kick off the confirmation email. Auxiliary, so failures are logged
	// rather than failing the creation.
	payload, err := json.Marshal(EventCreatedPayload{EventId: event.Id, CreatorId: userId})
	if err == nil {
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("event", "failed to publish email task", map[string]interface{}{
				"event_id": event.Id.String(),
				"error":    err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewEventCreated(event.Id, userId, event.Title, event.EventType, event.StartDate)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("event", "failed to publish event_created", map[string]interface{}{
				"event_id": event.Id.String(),
				"error":    err.Error(),
			})
		}
	}

	s.logger.Info("event", "event created", map[string]interface{}{
		"event_id": event.Id.String(),
		"title":    event.Title,
	})

	return eventToResponse(&event), nil
}

func (s *eventService) GetEvent(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.EventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	event, err := uow.EventRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.CreatedBy{CreatorID: userId},
	)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.NotFound("event %s", id)
	}

	return eventToResponse(event), nil
}

func (s *eventService) ListUserEvents(ctx context.Context, userId uuid.UUID) ([]*dto.EventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	found, err := uow.EventRepository().FindAll(ctx,
		specification.CreatedBy{CreatorID: userId},
		specification.OrderBy{Field: "start_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.EventResponse, 0, len(found))
	for _, ev := range found {
		result = append(result, eventToResponse(ev))
	}
	return result, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	event, err := uow.EventRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.CreatedBy{CreatorID: userId},
	)
	if err != nil {
		return err
	}
	if event == nil {
		return apperrors.NotFound("event %s", id)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.EventRepository().Delete(ctx, event.Id); err != nil {
		return err
	}
	return uow.Commit()
}

func eventToResponse(e *entity.Event) *dto.EventResponse {
	return &dto.EventResponse{
		Id:          e.Id,
		Title:       e.Title,
		Description: e.Description,
		EventType:   e.EventType,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Location:    e.Location,
		GuestCount:  e.GuestCount,
		IsPublic:    e.IsPublic,
		Budget:      e.Budget,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
