package repositories

import (
	"context"

	"github.com/google/uuid"
	"bank-portal.backend/internal/domain/entities"
)

// LoanRepository defines loan application data operations
type LoanRepository interface {
	Create(ctx context.Context, loan *entities.LoanApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.LoanApplication, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.LoanApplication, error)
	ListAllWithUser(ctx context.Context) ([]*entities.LoanApplicationWithUser, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.LoanStatus) (*entities.LoanApplication, error)
}
