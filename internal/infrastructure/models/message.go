package models

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FromUserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ToUserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content     string    `gorm:"type:text;not null"`
	IsFromAdmin bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}
