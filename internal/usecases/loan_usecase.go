package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"bank-portal.backend/internal/domain/entities"
	domainerrors "bank-portal.backend/internal/domain/errors"
	"bank-portal.backend/internal/domain/repositories"
	"bank-portal.backend/pkg/utils"
)

// LoanUsecase handles loan application submission and review
type LoanUsecase struct {
	loanRepo repositories.LoanRepository
}

// NewLoanUsecase creates a new loan usecase
func NewLoanUsecase(loanRepo repositories.LoanRepository) *LoanUsecase {
	return &LoanUsecase{loanRepo: loanRepo}
}

// Submit creates a pending loan application for the caller
func (u *LoanUsecase) Submit(ctx context.Context, userID uuid.UUID, input *entities.SubmitLoanInput) (*entities.LoanApplication, error) {
	loan := &entities.LoanApplication{
		ID:              utils.GenerateUUIDv7(),
		UserID:          userID,
		LoanType:        input.LoanType,
		RequestedAmount: input.RequestedAmount,
		Purpose:         null.NewString(strings.TrimSpace(input.Purpose), strings.TrimSpace(input.Purpose) != ""),
		Status:          entities.LoanStatusPending,
		CreatedAt:       time.Now(),
	}
	if err := u.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// ListByUser lists the caller's applications, newest first
func (u *LoanUsecase) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.LoanApplication, error) {
	return u.loanRepo.ListByUser(ctx, userID)
}

// ListAll lists every application with applicant names, newest first
func (u *LoanUsecase) ListAll(ctx context.Context) ([]*entities.LoanApplicationWithUser, error) {
	return u.loanRepo.ListAllWithUser(ctx)
}

// SetStatus applies the admin's review decision
func (u *LoanUsecase) SetStatus(ctx context.Context, id uuid.UUID, status entities.LoanStatus) (*entities.LoanApplication, error) {
	switch status {
	case entities.LoanStatusApproved, entities.LoanStatusRejected:
	default:
		return nil, domainerrors.BadRequest("status must be approved or rejected")
	}
	return u.loanRepo.UpdateStatus(ctx, id, status)
}
