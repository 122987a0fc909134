package service

import (
	"context"
	"encoding/json"
	"log"

	"event-planner-be/internal/pkg/mailer"
	"event-planner-be/internal/repository/specification"
	"event-planner-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload EventCreatedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Sending confirmation email for event %s", payload.EventId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	event, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: payload.EventId})
	if err != nil {
		log.Printf("[ERROR] Failed to load event %s: %v", payload.EventId, err)
		msg.Nack()
		return
	}
	if event == nil {
		log.Printf("[WARN] Event %s no longer exists, dropping email task", payload.EventId)
		msg.Ack()
		return
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: payload.CreatorId})
	if err != nil {
		log.Printf("[ERROR] Failed to load user %s: %v", payload.CreatorId, err)
		msg.Nack()
		return
	}
	if user == nil {
		log.Printf("[WARN] User %s no longer exists, dropping email task", payload.CreatorId)
		msg.Ack()
		return
	}

	if err := cs.emailService.SendEventCreated(user.Email, event.Title, event.StartDate); err != nil {
		log.Printf("[ERROR] Failed to send confirmation for event %s: %v", payload.EventId, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Confirmation email sent for event %s", payload.EventId)
	msg.Ack()
}
