package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"event-planner-be/internal/constant"
	"event-planner-be/internal/dto"
	"event-planner-be/internal/entity"
	"event-planner-be/internal/pkg/apperrors"
	"event-planner-be/internal/repository/contract"
	"event-planner-be/internal/repository/memory"
	"event-planner-be/internal/repository/specification"
	"event-planner-be/internal/repository/unitofwork"
	"event-planner-be/pkg/events"
	"event-planner-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- in-memory test doubles ---

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type stubLLM struct {
	reply string
	err   error
	calls int
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	s.calls++
	return s.reply, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, nil)
}

type stubEventService struct {
	created []*dto.CreateEventRequest
	err     error
}

func (s *stubEventService) CreateEvent(ctx context.Context, userId uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, req)
	return &dto.EventResponse{
		Id:        uuid.New(),
		Title:     req.Title,
		EventType: req.EventType,
		StartDate: req.StartDate,
	}, nil
}

func (s *stubEventService) GetEvent(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.EventResponse, error) {
	return nil, apperrors.NotFound("event %s", id)
}

func (s *stubEventService) ListUserEvents(ctx context.Context, userId uuid.UUID) ([]*dto.EventResponse, error) {
	return nil, nil
}

func (s *stubEventService) DeleteEvent(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	return nil
}

// memStore holds all rows shared by the fake unit of work instances.
type memStore struct {
	sessions map[uuid.UUID]entity.ChatSession
	messages []entity.ChatMessage
	events   []entity.Event
	users    map[uuid.UUID]entity.User
}

func newMemStore() *memStore {
	return &memStore{
		sessions: make(map[uuid.UUID]entity.ChatSession),
		users:    make(map[uuid.UUID]entity.User),
	}
}

// specFilter is what the fakes understand of the query specifications.
type specFilter struct {
	id        *uuid.UUID
	userID    *uuid.UUID
	sessionID *uuid.UUID
	creatorID *uuid.UUID
	limit     int
	orderDesc bool
}

func parseSpecs(specs []specification.Specification) specFilter {
	var f specFilter
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			id := v.ID
			f.id = &id
		case specification.UserOwnedBy:
			id := v.UserID
			f.userID = &id
		case specification.ByChatSessionID:
			id := v.ChatSessionID
			f.sessionID = &id
		case specification.CreatedBy:
			id := v.CreatorID
			f.creatorID = &id
		case specification.OrderBy:
			f.orderDesc = v.Desc
		case specification.Pagination:
			f.limit = v.Limit
		}
	}
	return f
}

type fakeSessionRepo struct{ store *memStore }

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	r.store.sessions[session.Id] = *session
	return nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.ChatSession) error {
	r.store.sessions[session.Id] = *session
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.sessions, id)
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	f := parseSpecs(specs)
	for _, s := range r.store.sessions {
		if f.id != nil && s.Id != *f.id {
			continue
		}
		if f.userID != nil && s.UserId != *f.userID {
			continue
		}
		found := s
		return &found, nil
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatSession, error) {
	f := parseSpecs(specs)
	var result []*entity.ChatSession
	for _, s := range r.store.sessions {
		if f.userID != nil && s.UserId != *f.userID {
			continue
		}
		found := s
		result = append(result, &found)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].CreatedAt, result[j].CreatedAt
		if f.orderDesc {
			return a.After(b)
		}
		return a.Before(b)
	})
	return result, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	found, _ := r.FindAll(ctx, specs...)
	return int64(len(found)), nil
}

type fakeMessageRepo struct{ store *memStore }

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.store.messages = append(r.store.messages, *message)
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	f := parseSpecs(specs)
	var result []*entity.ChatMessage
	for i := range r.store.messages {
		m := r.store.messages[i]
		if f.sessionID != nil && m.ChatSessionId != *f.sessionID {
			continue
		}
		found := m
		result = append(result, &found)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeMessageRepo) DeleteByChatSessionId(ctx context.Context, sessionId uuid.UUID) error {
	kept := r.store.messages[:0]
	for _, m := range r.store.messages {
		if m.ChatSessionId != sessionId {
			kept = append(kept, m)
		}
	}
	r.store.messages = kept
	return nil
}

type fakeEventRepo struct{ store *memStore }

func (r *fakeEventRepo) Create(ctx context.Context, event *entity.Event) error {
	r.store.events = append(r.store.events, *event)
	return nil
}

func (r *fakeEventRepo) Update(ctx context.Context, event *entity.Event) error { return nil }
func (r *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }

func (r *fakeEventRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Event, error) {
	return nil, nil
}

func (r *fakeEventRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Event, error) {
	f := parseSpecs(specs)
	var result []*entity.Event
	for i := range r.store.events {
		e := r.store.events[i]
		if f.creatorID != nil && e.CreatorId != *f.creatorID {
			continue
		}
		found := e
		result = append(result, &found)
		if f.limit > 0 && len(result) >= f.limit {
			break
		}
	}
	return result, nil
}

type fakeUserRepo struct{ store *memStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.users[user.Id] = *user
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	f := parseSpecs(specs)
	for _, u := range r.store.users {
		if f.id != nil && u.Id != *f.id {
			continue
		}
		found := u
		return &found, nil
	}
	return nil, nil
}

type fakeUow struct{ store *memStore }

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository { return &fakeUserRepo{store: u.store} }
func (u *fakeUow) EventRepository() contract.EventRepository {
	return &fakeEventRepo{store: u.store}
}
func (u *fakeUow) ChatSessionRepository() contract.ChatSessionRepository {
	return &fakeSessionRepo{store: u.store}
}
func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository {
	return &fakeMessageRepo{store: u.store}
}

type fakeFactory struct{ store *memStore }

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type recordingBus struct {
	published []events.Event
	err       error
}

func (b *recordingBus) Publish(ctx context.Context, event events.Event) error {
	if b.err != nil {
		return b.err
	}
	b.published = append(b.published, event)
	return nil
}

type testRig struct {
	store   *memStore
	llm     *stubLLM
	events  *stubEventService
	bus     *recordingBus
	service IConversationService
}

func newTestRig() *testRig {
	store := newMemStore()
	provider := &stubLLM{reply: "Sounds great, tell me more."}
	events := &stubEventService{}
	bus := &recordingBus{}
	svc := NewConversationService(
		&fakeFactory{store: store},
		provider,
		events,
		bus,
		memory.NewSessionRepository(),
		noopLogger{},
	)
	return &testRig{store: store, llm: provider, events: events, bus: bus, service: svc}
}

// --- tests ---

func TestStartSessionCreatesGreetingAndReply(t *testing.T) {
	rig := newTestRig()
	userId := uuid.New()

	res, err := rig.service.StartSession(context.Background(), userId, &dto.StartSessionRequest{
		Message: "I need help planning something",
	})
	require.NoError(t, err)

	assert.Equal(t, constant.ChatSessionStatusActive, res.Status)
	require.Len(t, res.Messages, 3)
	assert.Equal(t, constant.ChatMessageRoleSystem, res.Messages[0].Role)
	assert.Equal(t, constant.ChatSessionGreeting, res.Messages[0].Content)
	assert.Equal(t, constant.ChatMessageRoleUser, res.Messages[1].Role)
	assert.Equal(t, constant.ChatMessageRoleAssistant, res.Messages[2].Role)
	assert.Equal(t, "Sounds great, tell me more.", res.Messages[2].Content)

	// Nothing extracted yet, so the capability suggestions are offered.
	assert.Equal(t, constant.ColdStartSuggestions, res.Messages[2].Suggestions)
	assert.Nil(t, res.Messages[2].EventPreview)

	stored, ok := rig.store.sessions[res.Id]
	require.True(t, ok)
	assert.Equal(t, userId, stored.UserId)
}

func TestStartSessionRejectsEmptyMessage(t *testing.T) {
	rig := newTestRig()

	_, err := rig.service.StartSession(context.Background(), uuid.New(), &dto.StartSessionRequest{Message: ""})
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, rig.store.sessions)
}

func TestSendMessageAccumulatesDraft(t *testing.T) {
	rig := newTestRig()
	userId := uuid.New()

	started, err := rig.service.StartSession(context.Background(), userId, &dto.StartSessionRequest{
		Message: `I'm planning an event called "Summer Gala"`,
	})
	require.NoError(t, err)

	res, err := rig.service.SendMessage(context.Background(), userId, started.Id, &dto.SendMessageRequest{
		Message: "It will be on December 15, 2024 at Riverside Hall for 30 people",
	})
	require.NoError(t, err)

	stored := rig.store.sessions[started.Id]
	assert.Equal(t, "Summer Gala", stored.Draft.Title)
	require.NotNil(t, stored.Draft.StartDate)
	assert.Equal(t, 2024, stored.Draft.StartDate.Year())
	assert.Equal(t, time.December, stored.Draft.StartDate.Month())
	assert.Equal(t, 15, stored.Draft.StartDate.Day())
	assert.Equal(t, "Riverside Hall", stored.Draft.Location)
	assert.Equal(t, 30, stored.Draft.GuestCount)

	require.NotNil(t, res.EventPreview)
	assert.Equal(t, "Summer Gala", res.EventPreview.Title)
	assert.Equal(t, "Riverside Hall", res.EventPreview.Location)

	// Every detail gathered: the next step is confirmation.
	require.NotEmpty(t, res.Suggestions)
	assert.Contains(t, res.Suggestions[0], "create this event")
}

func TestSendMessageFallbackOnGenerationFailure(t *testing.T) {
	rig := newTestRig()
	userId := uuid.New()

	started, err := rig.service.StartSession(context.Background(), userId, &dto.StartSessionRequest{
		Message: "Let's plan a birthday",
	})
	require.NoError(t, err)

	rig.llm.err = errors.New("upstream timeout")

	res, err := rig.service.SendMessage(context.Background(), userId, started.Id, &dto.SendMessageRequest{
		Message: "The party is at Riverside Park",
	})
	require.NoError(t, err)

	assert.Equal(t, constant.ChatFallbackReply, res.Reply.Content)
	assert.Equal(t, constant.FallbackSuggestions, res.Suggestions)

	// The turn still extracted and persisted details despite the failure.
	stored := rig.store.sessions[started.Id]
	assert.Equal(t, "Riverside Park", stored.Draft.Location)
}

func TestSendMessageUnknownSession(t *testing.T) {
	rig := newTestRig()

	_, err := rig.service.SendMessage(context.Background(), uuid.New(), uuid.New(), &dto.SendMessageRequest{
		Message: "hello",
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSessionHiddenFromOtherUsers(t *testing.T) {
	rig := newTestRig()
	owner := uuid.New()
	stranger := uuid.New()

	started, err := rig.service.StartSession(context.Background(), owner, &dto.StartSessionRequest{
		Message: "Planning a team meeting",
	})
	require.NoError(t, err)

	_, err = rig.service.SendMessage(context.Background(), stranger, started.Id, &dto.SendMessageRequest{
		Message: "hello",
	})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = rig.service.GetSession(context.Background(), stranger, started.Id)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCompleteSessionRequiresTitleAndDate(t *testing.T) {
	rig := newTestRig()
	userId := uuid.New()

	started, err := rig.service.StartSession(context.Background(), userId, &dto.StartSessionRequest{
		Message: "I want to plan a birthday for 20 people",
	})
	require.NoError(t, err)

	_, err = rig.service.CompleteSession(context.Background(), userId, started.Id)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, rig.events.created)
	assert.Empty(t, rig.bus.published)

	// The session survives the failed commit attempt and stays usable.
	stored := rig.store.sessions[started.Id]
	assert.Equal(t, constant.ChatSessionStatusActive, stored.Status)
}

func TestCompleteSessionCommitsEvent(t *testing.T) {
	rig := newTestRig()
	userId := uuid.New()

	started, err := rig.service.StartSession(context.Background(), userId, &dto.StartSessionRequest{
		Message: `A birthday called "Maya Turns Ten" on December 15, 2024 at Riverside Park for 12 people`,
	})
	require.NoError(t, err)

	res, err := rig.service.CompleteSession(context.Background(), userId, started.Id)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.NotEqual(t, uuid.Nil, res.EventId)

	require.Len(t, rig.events.created, 1)
	assert.Equal(t, "Maya Turns Ten", rig.events.created[0].Title)
	assert.Equal(t, "birthday", rig.events.created[0].EventType)
	assert.Equal(t, 12, rig.events.created[0].GuestCount)

	stored := rig.store.sessions[started.Id]
	assert.Equal(t, constant.ChatSessionStatusCompleted, stored.Status)
	require.NotNil(t, stored.CommittedEventId)

	// The commit is announced on the bus for downstream consumers.
	require.Len(t, rig.bus.published, 1)
	assert.Equal(t, events.TypeSessionCompleted, rig.bus.published[0].EventType())
	payload := rig.bus.published[0].Payload()
	assert.Equal(t, started.Id.String(), payload["session_id"])
	assert.Equal(t, userId.String(), payload["user_id"])
	assert.Equal(t, res.EventId.String(), payload["event_id"])

	// Completed sessions no longer accept messages or a second commit.
	_, err = rig.service.SendMessage(context.Background(), userId, started.Id, &dto.SendMessageRequest{
		Message: "one more thing",
	})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = rig.service.CompleteSession(context.Background(), userId, started.Id)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCompleteSessionSurvivesBusFailure(t *testing.T) {
	rig := newTestRig()
	rig.bus.err = errors.New("nats unavailable")
	userId := uuid.New()

	started, err := rig.service.StartSession(context.Background(), userId, &dto.StartSessionRequest{
		Message: `A wedding called "Golden Hour" on June 10, 2025`,
	})
	require.NoError(t, err)

	res, err := rig.service.CompleteSession(context.Background(), userId, started.Id)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, constant.ChatSessionStatusCompleted, rig.store.sessions[started.Id].Status)
}

func TestMessageLengthCountsRunes(t *testing.T) {
	rig := newTestRig()
	userId := uuid.New()

	// 2000 two-byte runes stay within the character limit even though the
	// byte length is twice that.
	longest := strings.Repeat("é", constant.ChatMessageMaxLength)
	_, err := rig.service.StartSession(context.Background(), userId, &dto.StartSessionRequest{Message: longest})
	require.NoError(t, err)

	_, err = rig.service.StartSession(context.Background(), userId, &dto.StartSessionRequest{
		Message: longest + "é",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestCancelSession(t *testing.T) {
	rig := newTestRig()
	userId := uuid.New()

	started, err := rig.service.StartSession(context.Background(), userId, &dto.StartSessionRequest{
		Message: "Planning a workshop",
	})
	require.NoError(t, err)

	require.NoError(t, rig.service.CancelSession(context.Background(), userId, started.Id))

	stored := rig.store.sessions[started.Id]
	assert.Equal(t, constant.ChatSessionStatusCancelled, stored.Status)

	_, err = rig.service.SendMessage(context.Background(), userId, started.Id, &dto.SendMessageRequest{
		Message: "actually wait",
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGetSessionReturnsOrderedHistory(t *testing.T) {
	rig := newTestRig()
	userId := uuid.New()

	started, err := rig.service.StartSession(context.Background(), userId, &dto.StartSessionRequest{
		Message: "Planning a dinner",
	})
	require.NoError(t, err)

	_, err = rig.service.SendMessage(context.Background(), userId, started.Id, &dto.SendMessageRequest{
		Message: "It should be at Harbor Restaurant",
	})
	require.NoError(t, err)

	res, err := rig.service.GetSession(context.Background(), userId, started.Id)
	require.NoError(t, err)

	require.Len(t, res.Messages, 5)
	for i := 1; i < len(res.Messages); i++ {
		assert.False(t, res.Messages[i].CreatedAt.Before(res.Messages[i-1].CreatedAt))
	}
	assert.Equal(t, "Harbor Restaurant", res.Draft.Location)
}

func TestListSessions(t *testing.T) {
	rig := newTestRig()
	userId := uuid.New()

	first, err := rig.service.StartSession(context.Background(), userId, &dto.StartSessionRequest{
		Message: `An event called "Quarterly Review"`,
	})
	require.NoError(t, err)

	_, err = rig.service.StartSession(context.Background(), uuid.New(), &dto.StartSessionRequest{
		Message: "Someone else's session",
	})
	require.NoError(t, err)

	sessions, err := rig.service.ListSessions(context.Background(), userId)
	require.NoError(t, err)

	require.Len(t, sessions, 1)
	assert.Equal(t, first.Id, sessions[0].Id)
	assert.Equal(t, "Quarterly Review", sessions[0].DraftTitle)
}
