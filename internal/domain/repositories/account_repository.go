package repositories

import (
	"context"

	"github.com/google/uuid"
	"bank-portal.backend/internal/domain/entities"
)

// AccountRepository defines account data operations
type AccountRepository interface {
	Create(ctx context.Context, account *entities.Account) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Account, error)
	ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error)
}

// TransactionRepository defines transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.Transaction, error)
	ListRecentWithOwners(ctx context.Context, limit int) ([]*entities.TransactionWithOwner, error)
}
