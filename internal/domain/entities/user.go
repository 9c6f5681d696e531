package entities

import (
	"time"

	"github.com/google/uuid"
)

// User represents a portal user. The administrator is a single distinguished
// record carrying IsAdmin=true; every other user starts unapproved.
type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	SSN           string    `json:"-"`
	Phone         string    `json:"phone"`
	StreetAddress string    `json:"streetAddress"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zipCode"`
	DateOfBirth   time.Time `json:"dateOfBirth"`
	IsApproved    bool      `json:"isApproved"`
	IsAdmin       bool      `json:"isAdmin"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// MaskedSSN returns the SSN reduced to its last four digits for admin views
func (u *User) MaskedSSN() string {
	if len(u.SSN) < 4 {
		return ""
	}
	return "***-**-" + u.SSN[len(u.SSN)-4:]
}

// FullName returns first and last name joined for display
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	SSN           string `json:"ssn" binding:"required,len=11"`
	Phone         string `json:"phone" binding:"required,min=10"`
	StreetAddress string `json:"streetAddress" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	ZipCode       string `json:"zipCode" binding:"required,len=5,numeric"`
	DateOfBirth   string `json:"dateOfBirth" binding:"required"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginInput represents input for the fixed-credential admin login.
// All three fields must match the configured identity.
type AdminLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
