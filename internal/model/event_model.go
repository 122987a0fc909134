package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatorId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	EventType   string    `gorm:"type:varchar(50);not null;default:'other'"`
	StartDate   time.Time `gorm:"not null;index"`
	EndDate     *time.Time
	Location    string `gorm:"type:varchar(255)"`
	GuestCount  int
	IsPublic    bool `gorm:"default:false"`
	Budget      *float64
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Event) TableName() string {
	return "events"
}
