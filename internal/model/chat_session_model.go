package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatSession struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID      `gorm:"type:uuid;not null;index"` // User ownership for data isolation
	Status           string         `gorm:"type:varchar(20);not null;index"`
	Draft            datatypes.JSON `gorm:"type:jsonb"`
	Context          datatypes.JSON `gorm:"type:jsonb"`
	CommittedEventId *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
	CompletedAt      *time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
