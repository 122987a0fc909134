package bootstrap

import (
	"context"
	"log"
	"time"

	"event-planner-be/internal/config"
	"event-planner-be/internal/controller"
	"event-planner-be/internal/handler"
	"event-planner-be/internal/pkg/logger"
	"event-planner-be/internal/pkg/mailer"
	"event-planner-be/internal/repository/implementation"
	"event-planner-be/internal/repository/memory"
	"event-planner-be/internal/repository/unitofwork"
	"event-planner-be/internal/service"
	"event-planner-be/internal/websocket"
	"event-planner-be/pkg/llm"
	"event-planner-be/pkg/llm/factory"

	pktNats "event-planner-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController  controller.IAuthController
	EventController controller.IEventController
	ChatController  controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Stack
	baseURL := ""
	if cfg.Ai.LLMProvider == "ollama" {
		baseURL = cfg.Ai.OllamaBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.OpenAI,
		baseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Generation failures must not take the chat down, so the provider is
	// wrapped in a circuit breaker and callers fall back to canned replies.
	guardedProvider := llm.NewBreakerProvider(llmProvider, 3, 30*time.Second, 8*time.Second)

	// In-memory hot cache for active chat sessions
	sessionRepo := memory.NewSessionRepository()

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.EventCreatedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EventCreatedTopic,
		uowFactory,
		emailService,
	)

	authService := service.NewAuthService(uowFactory, emailService)
	eventService := service.NewEventService(uowFactory, publisherService, natsPub, sysLogger)
	// Assign through a declared interface var so a nil *nats.Publisher does not
	// become a non-nil interface value.
	var sessionBus service.IEventBusPublisher
	if natsPub != nil {
		sessionBus = natsPub
	}
	conversationService := service.NewConversationService(
		uowFactory,
		guardedProvider,
		eventService,
		sessionBus,
		sessionRepo,
		sysLogger,
	)

	// 6. Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, natsPub, wsHub, wsLogger)

	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
		AuthController:      controller.NewAuthController(authService),
		EventController:     controller.NewEventController(eventService),
		ChatController:      controller.NewChatController(conversationService),

		ConsumerService: consumerService,
	}
}
