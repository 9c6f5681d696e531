package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// LoanStatus represents the review state of a loan application
type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "pending"
	LoanStatusApproved LoanStatus = "approved"
	LoanStatusRejected LoanStatus = "rejected"
)

// LoanApplication represents a loan request submitted by an approved user
type LoanApplication struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"userId"`
	LoanType        string      `json:"loanType"`
	RequestedAmount string      `json:"requestedAmount"`
	Purpose         null.String `json:"purpose,omitempty"`
	Status          LoanStatus  `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// LoanApplicationWithUser is a loan application joined with the applicant's
// name for the admin review list
type LoanApplicationWithUser struct {
	LoanApplication
	UserName string `json:"userName"`
}

// SubmitLoanInput represents input for submitting a loan application
type SubmitLoanInput struct {
	LoanType        string `json:"loanType" binding:"required"`
	RequestedAmount string `json:"requestedAmount" binding:"required"`
	Purpose         string `json:"purpose"`
}

// SetLoanStatusInput represents input for the admin status change
type SetLoanStatusInput struct {
	Status LoanStatus `json:"status" binding:"required,oneof=approved rejected"`
}
