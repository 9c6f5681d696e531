package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"bank-portal.backend/internal/domain/entities"
	"bank-portal.backend/internal/infrastructure/models"
)

// AccountRepository implements account data operations
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, account *entities.Account) error {
	m := &models.Account{
		ID:            account.ID,
		UserID:        account.UserID,
		AccountNumber: account.AccountNumber,
		AccountType:   string(account.AccountType),
		Balance:       account.Balance,
		IsActive:      account.IsActive,
		CreatedAt:     account.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByUser lists every account owned by the given user
func (r *AccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Account, error) {
	var accountModels []models.Account
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accountModels).Error
	if err != nil {
		return nil, err
	}

	var accounts []*entities.Account
	for _, m := range accountModels {
		model := m
		accounts = append(accounts, accountToEntity(&model))
	}
	return accounts, nil
}

// ExistsForUser reports whether the user already has at least one account.
// Provisioning checks this before creating so re-approval stays idempotent.
func (r *AccountRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func accountToEntity(m *models.Account) *entities.Account {
	return &entities.Account{
		ID:            m.ID,
		UserID:        m.UserID,
		AccountNumber: m.AccountNumber,
		AccountType:   entities.AccountType(m.AccountType),
		Balance:       m.Balance,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
	}
}
