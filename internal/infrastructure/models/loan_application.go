package models

import (
	"time"

	"github.com/google/uuid"
)

type LoanApplication struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	LoanType        string    `gorm:"type:varchar(50);not null"`
	RequestedAmount string    `gorm:"type:varchar(50);not null"`
	Purpose         *string   `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt       time.Time
}
