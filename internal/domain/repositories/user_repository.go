package repositories

import (
	"context"

	"github.com/google/uuid"
	"bank-portal.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetAdmin(ctx context.Context) (*entities.User, error)
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*entities.User, error)
	ListNonAdmin(ctx context.Context) ([]*entities.User, error)
	ListPending(ctx context.Context) ([]*entities.User, error)
	ListApprovedWithoutAccount(ctx context.Context) ([]*entities.User, error)
}
