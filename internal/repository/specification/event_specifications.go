package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatedBy filters events by their creator.
type CreatedBy struct {
	CreatorID uuid.UUID
}

func (s CreatedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("creator_id = ?", s.CreatorID)
}

// StartingAfter filters events whose start date is after the given instant.
type StartingAfter struct {
	Instant time.Time
}

func (s StartingAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("start_date > ?", s.Instant)
}

// ByEmail filters users by email.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}
