package contract

import (
	"context"

	"event-planner-be/internal/entity"
	"event-planner-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Event, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Event, error)
}
