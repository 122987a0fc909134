package service

import (
	"context"
	"time"
	"unicode/utf8"

	"event-planner-be/internal/constant"
	"event-planner-be/internal/dto"
	"event-planner-be/internal/entity"
	"event-planner-be/internal/pkg/apperrors"
	"event-planner-be/internal/pkg/logger"
	"event-planner-be/internal/repository/memory"
	"event-planner-be/internal/repository/specification"
	"event-planner-be/internal/repository/unitofwork"
	"event-planner-be/pkg/events"
	"event-planner-be/pkg/llm"
	"event-planner-be/pkg/planner"
	"event-planner-be/pkg/planner/extract"
	"event-planner-be/pkg/store"

	"github.com/google/uuid"
)

type IConversationService interface {
	StartSession(ctx context.Context, userId uuid.UUID, req *dto.StartSessionRequest) (*dto.SessionResponse, error)
	SendMessage(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	CompleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.CompleteSessionResponse, error)
	CancelSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error
	GetSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionSummaryResponse, error)
}

// IEventBusPublisher pushes domain events onto the cross-service bus.
// Satisfied by the NATS publisher.
type IEventBusPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type conversationService struct {
	uowFactory   unitofwork.RepositoryFactory
	llmProvider  llm.LLMProvider
	eventService IEventService
	bus          IEventBusPublisher
	sessions     *memory.SessionRepository
	logger       logger.ILogger
}

func NewConversationService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	eventService IEventService,
	bus IEventBusPublisher,
	sessions *memory.SessionRepository,
	log logger.ILogger,
) IConversationService {
	return &conversationService{
		uowFactory:   uowFactory,
		llmProvider:  llmProvider,
		eventService: eventService,
		bus:          bus,
		sessions:     sessions,
		logger:       log,
	}
}

// turnResult is what one extract-merge-suggest pass produces.
type turnResult struct {
	reply       string
	suggestions []string
	preview     *entity.EventPreview
	draft       entity.EventDraft
	changed     bool
}

// runTurn executes one conversational turn against the user's latest text.
// It never returns an error: generation failures and internal faults both
// degrade to the canned reply so the assistant never goes silent.
func (c *conversationService) runTurn(ctx context.Context, session *entity.ChatSession, history []*entity.ChatMessage, userText string, recentEvents []entity.Event) (result turnResult) {
	result = turnResult{
		reply:       constant.ChatFallbackReply,
		suggestions: constant.FallbackSuggestions,
		draft:       session.Draft,
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("conversation", "turn pipeline fault", map[string]interface{}{
				"session_id": session.Id.String(),
				"panic":      r,
			})
			result.reply = constant.ChatFallbackReply
			result.suggestions = constant.FallbackSuggestions
			result.preview = planner.BuildPreview(result.draft)
		}
	}()

	// Fields are mined from what the user said, not from the generated reply.
	fields := extract.All(userText, time.Now())
	merged, changed := planner.Merge(session.Draft, fields)
	result.draft = merged
	result.changed = changed

	systemPrompt := planner.BuildSystemPrompt(merged, recentEvents)
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: constant.ChatMessageRoleSystem, Content: systemPrompt})
	for _, msg := range history {
		if msg.Role == constant.ChatMessageRoleSystem {
			continue
		}
		messages = append(messages, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	messages = append(messages, llm.Message{Role: constant.ChatMessageRoleUser, Content: userText})

	reply, err := c.llmProvider.Chat(ctx, messages)
	if err != nil {
		c.logger.Warn("conversation", "generation failed, using fallback", map[string]interface{}{
			"session_id": session.Id.String(),
			"error":      err.Error(),
		})
	} else {
		result.reply = reply
		result.suggestions = planner.NextSuggestions(merged)
	}

	result.preview = planner.BuildPreview(merged)
	return result
}

func (c *conversationService) recentEvents(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) []entity.Event {
	found, err := uow.EventRepository().FindAll(ctx,
		specification.CreatedBy{CreatorID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 5},
	)
	if err != nil {
		c.logger.Warn("conversation", "failed to load recent events for context", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil
	}
	result := make([]entity.Event, 0, len(found))
	for _, ev := range found {
		result = append(result, *ev)
	}
	return result
}

func (c *conversationService) validateText(text string) error {
	// The bound is in characters, so multi-byte input must be counted in runes.
	if n := utf8.RuneCountInString(text); n < constant.ChatMessageMinLength || n > constant.ChatMessageMaxLength {
		return apperrors.Validation("message must be between %d and %d characters",
			constant.ChatMessageMinLength, constant.ChatMessageMaxLength)
	}
	return nil
}

func (c *conversationService) StartSession(ctx context.Context, userId uuid.UUID, req *dto.StartSessionRequest) (*dto.SessionResponse, error) {
	if err := c.validateText(req.Message); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	recentEvents := c.recentEvents(ctx, uow, userId)

	now := time.Now()
	session := entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Status:    constant.ChatSessionStatusActive,
		Context:   req.Context,
		CreatedAt: now,
		UpdatedAt: &now,
	}

	greeting := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          constant.ChatMessageRoleSystem,
		Content:       constant.ChatSessionGreeting,
		CreatedAt:     now,
	}
	userMsg := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          constant.ChatMessageRoleUser,
		Content:       req.Message,
		CreatedAt:     now.Add(time.Millisecond),
	}

	turn := c.runTurn(ctx, &session, nil, req.Message, recentEvents)
	session.Draft = turn.draft

	assistantMsg := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          constant.ChatMessageRoleAssistant,
		Content:       turn.reply,
		Suggestions:   turn.suggestions,
		EventPreview:  turn.preview,
		CreatedAt:     now.Add(2 * time.Millisecond),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}
	for _, msg := range []*entity.ChatMessage{&greeting, &userMsg, &assistantMsg} {
		if err := uow.ChatMessageRepository().Create(ctx, msg); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.cacheSession(&session, turn.suggestions, req.Message)

	messages := []*entity.ChatMessage{&greeting, &userMsg, &assistantMsg}
	return sessionToResponse(&session, messages), nil
}

func (c *conversationService) SendMessage(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if err := c.validateText(req.Message); err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := c.findActiveSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	history, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	recentEvents := c.recentEvents(ctx, uow, userId)

	now := time.Now()
	userMsg := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          constant.ChatMessageRoleUser,
		Content:       req.Message,
		CreatedAt:     now,
	}

	turn := c.runTurn(ctx, session, history, req.Message, recentEvents)
	session.Draft = turn.draft
	session.UpdatedAt = &now

	assistantMsg := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          constant.ChatMessageRoleAssistant,
		Content:       turn.reply,
		Suggestions:   turn.suggestions,
		EventPreview:  turn.preview,
		CreatedAt:     now.Add(time.Millisecond),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, &userMsg); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &assistantMsg); err != nil {
		return nil, err
	}
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.cacheSession(session, turn.suggestions, req.Message)

	return &dto.SendMessageResponse{
		ChatSessionId: session.Id,
		Reply:         messageToResponse(&assistantMsg),
		Suggestions:   turn.suggestions,
		EventPreview:  previewToDTO(turn.preview),
	}, nil
}

func (c *conversationService) CompleteSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.CompleteSessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := c.findActiveSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	if !session.Draft.IsComplete() {
		return nil, apperrors.Validation("draft needs at least a title and a start date before the event can be created")
	}

	eventReq := &dto.CreateEventRequest{
		Title:       session.Draft.Title,
		Description: session.Draft.Description,
		EventType:   session.Draft.EventType,
		StartDate:   *session.Draft.StartDate,
		EndDate:     session.Draft.EndDate,
		Location:    session.Draft.Location,
		GuestCount:  session.Draft.GuestCount,
	}
	created, err := c.eventService.CreateEvent(ctx, userId, eventReq)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session.Status = constant.ChatSessionStatusCompleted
	session.CommittedEventId = &created.Id
	session.CompletedAt = &now
	session.UpdatedAt = &now

	confirmMsg := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          constant.ChatMessageRoleAssistant,
		Content:       constant.EventCreatedMessage,
		CreatedAt:     now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &confirmMsg); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.sessions.Delete(session.Id.String())

	if c.bus != nil {
		if err := c.bus.Publish(ctx, events.NewSessionCompleted(session.Id, userId, created.Id)); err != nil {
			c.logger.Warn("conversation", "failed to publish session completed event", map[string]interface{}{
				"session_id": session.Id.String(),
				"error":      err.Error(),
			})
		}
	}

	c.logger.Info("conversation", "session committed", map[string]interface{}{
		"session_id": session.Id.String(),
		"event_id":   created.Id.String(),
	})

	return &dto.CompleteSessionResponse{
		EventId: created.Id,
		Success: true,
		Message: constant.EventCreatedMessage,
	}, nil
}

func (c *conversationService) CancelSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := c.findActiveSession(ctx, uow, userId, sessionId)
	if err != nil {
		return err
	}

	now := time.Now()
	session.Status = constant.ChatSessionStatusCancelled
	session.UpdatedAt = &now

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	c.sessions.Delete(session.Id.String())
	return nil
}

func (c *conversationService) GetSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.NotFound("chat session %s", sessionId)
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: session.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	return sessionToResponse(session, messages), nil
}

func (c *conversationService) ListSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionSummaryResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SessionSummaryResponse, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, &dto.SessionSummaryResponse{
			Id:         s.Id,
			Status:     s.Status,
			DraftTitle: s.Draft.Title,
			CreatedAt:  s.CreatedAt,
			UpdatedAt:  s.UpdatedAt,
		})
	}
	return result, nil
}

// findActiveSession loads the session and hides existence from other users:
// missing, foreign and terminal sessions all come back as NotFound.
func (c *conversationService) findActiveSession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Status != constant.ChatSessionStatusActive {
		return nil, apperrors.NotFound("active chat session %s", sessionId)
	}
	return session, nil
}

func (c *conversationService) cacheSession(session *entity.ChatSession, suggestions []string, lastMessage string) {
	state := store.StateGathering
	if session.Draft.IsComplete() {
		state = store.StateReady
	}

	snapshot := map[string]interface{}{}
	if session.Draft.Title != "" {
		snapshot["title"] = session.Draft.Title
	}
	if session.Draft.StartDate != nil {
		snapshot["start_date"] = session.Draft.StartDate
	}
	if session.Draft.Location != "" {
		snapshot["location"] = session.Draft.Location
	}

	cached, _ := c.sessions.Get(session.Id.String())
	turns := 1
	if cached != nil {
		turns = cached.TurnCount + 1
	}

	c.sessions.Save(&store.Session{
		ID:              session.Id.String(),
		UserID:          session.UserId.String(),
		State:           state,
		DraftSnapshot:   snapshot,
		LastSuggestions: suggestions,
		LastMessage:     lastMessage,
		TurnCount:       turns,
	})
}

// --- DTO mapping helpers ---

func previewToDTO(p *entity.EventPreview) *dto.EventPreviewDTO {
	if p == nil {
		return nil
	}
	return &dto.EventPreviewDTO{
		Title:       p.Title,
		Date:        p.Date,
		Location:    p.Location,
		EventType:   p.EventType,
		Description: p.Description,
		Duration:    p.DurationText,
		GuestCount:  p.GuestCount,
	}
}

func messageToResponse(m *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:           m.Id,
		Role:         m.Role,
		Content:      m.Content,
		Suggestions:  m.Suggestions,
		EventPreview: previewToDTO(m.EventPreview),
		CreatedAt:    m.CreatedAt,
	}
}

func sessionToResponse(s *entity.ChatSession, messages []*entity.ChatMessage) *dto.SessionResponse {
	msgDTOs := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		msgDTOs = append(msgDTOs, *messageToResponse(m))
	}

	return &dto.SessionResponse{
		Id:     s.Id,
		Status: s.Status,
		Draft: dto.DraftDTO{
			Title:       s.Draft.Title,
			EventType:   s.Draft.EventType,
			StartDate:   s.Draft.StartDate,
			EndDate:     s.Draft.EndDate,
			Location:    s.Draft.Location,
			GuestCount:  s.Draft.GuestCount,
			Duration:    s.Draft.DurationText,
			Description: s.Draft.Description,
		},
		CommittedEventId: s.CommittedEventId,
		Messages:         msgDTOs,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
