package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	FirstName     string    `gorm:"type:varchar(100);not null"`
	LastName      string    `gorm:"type:varchar(100);not null"`
	SSN           string    `gorm:"column:ssn;type:varchar(11);not null"`
	Phone         string    `gorm:"type:varchar(20);not null"`
	StreetAddress string    `gorm:"type:varchar(255);not null"`
	City          string    `gorm:"type:varchar(100);not null"`
	State         string    `gorm:"type:varchar(50);not null"`
	ZipCode       string    `gorm:"type:varchar(10);not null"`
	DateOfBirth   time.Time `gorm:"type:timestamp;not null"`
	IsApproved    bool      `gorm:"not null;default:false"`
	IsAdmin       bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
