package models

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(20);not null"`
	Amount      string    `gorm:"type:varchar(50);not null"`
	Description *string   `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;default:'completed'"`
	CreatedAt   time.Time
}
