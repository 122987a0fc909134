package mapper

import (
	"encoding/json"
	"time"

	"event-planner-be/internal/entity"
	"event-planner-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// draftPayload is the persisted JSON shape of a draft. Field names are part
// of the stored data contract; do not rename without a migration.
type draftPayload struct {
	Title        string     `json:"title,omitempty"`
	EventType    string     `json:"event_type,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Location     string     `json:"location,omitempty"`
	GuestCount   int        `json:"guest_count,omitempty"`
	DurationText string     `json:"duration,omitempty"`
	Description  string     `json:"description,omitempty"`
}

func (m *ChatMapper) DraftToJSON(d entity.EventDraft) datatypes.JSON {
	if d.IsEmpty() {
		return nil
	}
	payload := draftPayload{
		Title:        d.Title,
		EventType:    d.EventType,
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		Location:     d.Location,
		GuestCount:   d.GuestCount,
		DurationText: d.DurationText,
		Description:  d.Description,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}

func (m *ChatMapper) DraftFromJSON(data datatypes.JSON) entity.EventDraft {
	if len(data) == 0 {
		return entity.EventDraft{}
	}
	var payload draftPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return entity.EventDraft{}
	}
	return entity.EventDraft{
		Title:        payload.Title,
		EventType:    payload.EventType,
		StartDate:    payload.StartDate,
		EndDate:      payload.EndDate,
		Location:     payload.Location,
		GuestCount:   payload.GuestCount,
		DurationText: payload.DurationText,
		Description:  payload.Description,
	}
}

func (m *ChatMapper) ChatSessionToModel(e *entity.ChatSession) *model.ChatSession {
	mod := &model.ChatSession{
		Id:               e.Id,
		UserId:           e.UserId,
		Status:           e.Status,
		Draft:            m.DraftToJSON(e.Draft),
		CommittedEventId: e.CommittedEventId,
		CreatedAt:        e.CreatedAt,
		CompletedAt:      e.CompletedAt,
	}
	if len(e.Context) > 0 {
		if data, err := json.Marshal(e.Context); err == nil {
			mod.Context = datatypes.JSON(data)
		}
	}
	if e.UpdatedAt != nil {
		mod.UpdatedAt = *e.UpdatedAt
	}
	return mod
}

func (m *ChatMapper) ChatSessionToEntity(mod *model.ChatSession) *entity.ChatSession {
	e := &entity.ChatSession{
		Id:               mod.Id,
		UserId:           mod.UserId,
		Status:           mod.Status,
		Draft:            m.DraftFromJSON(mod.Draft),
		CommittedEventId: mod.CommittedEventId,
		CreatedAt:        mod.CreatedAt,
		CompletedAt:      mod.CompletedAt,
	}
	if len(mod.Context) > 0 {
		_ = json.Unmarshal(mod.Context, &e.Context)
	}
	if !mod.UpdatedAt.IsZero() {
		updatedAt := mod.UpdatedAt
		e.UpdatedAt = &updatedAt
	}
	return e
}

func (m *ChatMapper) ChatMessageToModel(e *entity.ChatMessage) *model.ChatMessage {
	mod := &model.ChatMessage{
		Id:            e.Id,
		ChatSessionId: e.ChatSessionId,
		Role:          e.Role,
		Content:       e.Content,
		CreatedAt:     e.CreatedAt,
	}
	if len(e.Suggestions) > 0 {
		if data, err := json.Marshal(e.Suggestions); err == nil {
			mod.Suggestions = datatypes.JSON(data)
		}
	}
	if e.EventPreview != nil {
		if data, err := json.Marshal(e.EventPreview); err == nil {
			mod.EventPreview = datatypes.JSON(data)
		}
	}
	return mod
}

func (m *ChatMapper) ChatMessageToEntity(mod *model.ChatMessage) *entity.ChatMessage {
	e := &entity.ChatMessage{
		Id:            mod.Id,
		ChatSessionId: mod.ChatSessionId,
		Role:          mod.Role,
		Content:       mod.Content,
		CreatedAt:     mod.CreatedAt,
	}
	if len(mod.Suggestions) > 0 {
		_ = json.Unmarshal(mod.Suggestions, &e.Suggestions)
	}
	if len(mod.EventPreview) > 0 {
		var preview entity.EventPreview
		if err := json.Unmarshal(mod.EventPreview, &preview); err == nil {
			e.EventPreview = &preview
		}
	}
	return e
}

func (m *ChatMapper) ChatMessagesToEntities(mods []*model.ChatMessage) []*entity.ChatMessage {
	entities := make([]*entity.ChatMessage, len(mods))
	for i, mod := range mods {
		entities[i] = m.ChatMessageToEntity(mod)
	}
	return entities
}
