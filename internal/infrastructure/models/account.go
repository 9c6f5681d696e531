package models

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	AccountNumber string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	AccountType   string    `gorm:"type:varchar(50);not null;default:'checking'"`
	Balance       string    `gorm:"type:varchar(50);not null;default:'0.00'"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
}
