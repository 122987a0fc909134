package mapper

import (
	"event-planner-be/internal/entity"
	"event-planner-be/internal/model"
)

type EventMapper struct{}

func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

func (m *EventMapper) ToModel(e *entity.Event) *model.Event {
	mod := &model.Event{
		Id:          e.Id,
		CreatorId:   e.CreatorId,
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
	}
	if e.UpdatedAt != nil {
		mod.UpdatedAt = *e.UpdatedAt
	}
	return mod
}

func (m *EventMapper) ToEntity(mod *model.Event) *entity.Event {
	e := &entity.Event{
		Id:          mod.Id,
		CreatorId:   mod.CreatorId,
		Title:       mod.Title,
		Description: mod.Description,
		EventType:   mod.EventType,
		StartDate:   mod.StartDate,
		EndDate:     mod.EndDate,
		Location:    mod.Location,
		GuestCount:  mod.GuestCount,
		IsPublic:    mod.IsPublic,
		Budget:      mod.Budget,
		CreatedAt:   mod.CreatedAt,
	}
	if !mod.UpdatedAt.IsZero() {
		updatedAt := mod.UpdatedAt
		e.UpdatedAt = &updatedAt
	}
	return e
}

func (m *EventMapper) ToEntities(mods []*model.Event) []*entity.Event {
	entities := make([]*entity.Event, len(mods))
	for i, mod := range mods {
		entities[i] = m.ToEntity(mod)
	}
	return entities
}
