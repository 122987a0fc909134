package mapper

import (
	"event-planner-be/internal/entity"
	"event-planner-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(e *entity.User) *model.User {
	mod := &model.User{
		Id:           e.Id,
		FullName:     e.FullName,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		CreatedAt:    e.CreatedAt,
	}
	if e.UpdatedAt != nil {
		mod.UpdatedAt = *e.UpdatedAt
	}
	return mod
}

func (m *UserMapper) ToEntity(mod *model.User) *entity.User {
	e := &entity.User{
		Id:           mod.Id,
		FullName:     mod.FullName,
		Email:        mod.Email,
		PasswordHash: mod.PasswordHash,
		CreatedAt:    mod.CreatedAt,
	}
	if !mod.UpdatedAt.IsZero() {
		updatedAt := mod.UpdatedAt
		e.UpdatedAt = &updatedAt
	}
	return e
}
