package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"bank-portal.backend/internal/domain/entities"
	"bank-portal.backend/internal/infrastructure/models"
)

// TransactionRepository implements transaction data operations
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create creates a new transaction
func (r *TransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	m := &models.Transaction{
		ID:          tx.ID,
		AccountID:   tx.AccountID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Description: tx.Description.Ptr(),
		Status:      string(tx.Status),
		CreatedAt:   tx.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByAccount lists transactions for an account, newest first
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entities.Transaction, error) {
	var txModels []models.Transaction
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&txModels).Error
	if err != nil {
		return nil, err
	}

	var txs []*entities.Transaction
	for _, m := range txModels {
		model := m
		txs = append(txs, transactionToEntity(&model))
	}
	return txs, nil
}

// ListRecentWithOwners lists the latest transactions joined with account
// number and owner name, for the admin reporting view
func (r *TransactionRepository) ListRecentWithOwners(ctx context.Context, limit int) ([]*entities.TransactionWithOwner, error) {
	type row struct {
		ID            uuid.UUID
		AccountID     uuid.UUID
		Type          string
		Amount        string
		Description   *string
		Status        string
		CreatedAt     time.Time
		AccountNumber string
		FirstName     string
		LastName      string
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Table("transactions").
		Select("transactions.id, transactions.account_id, transactions.type, transactions.amount, transactions.description, transactions.status, transactions.created_at, accounts.account_number, users.first_name, users.last_name").
		Joins("LEFT JOIN accounts ON accounts.id = transactions.account_id").
		Joins("LEFT JOIN users ON users.id = accounts.user_id").
		Order("transactions.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	var result []*entities.TransactionWithOwner
	for _, rw := range rows {
		name := rw.FirstName
		if rw.LastName != "" {
			if name != "" {
				name += " "
			}
			name += rw.LastName
		}
		result = append(result, &entities.TransactionWithOwner{
			Transaction: entities.Transaction{
				ID:          rw.ID,
				AccountID:   rw.AccountID,
				Type:        entities.TransactionType(rw.Type),
				Amount:      rw.Amount,
				Description: null.StringFromPtr(rw.Description),
				Status:      entities.TransactionStatus(rw.Status),
				CreatedAt:   rw.CreatedAt,
			},
			AccountNumber: rw.AccountNumber,
			UserName:      name,
		})
	}
	return result, nil
}

func transactionToEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Type:        entities.TransactionType(m.Type),
		Amount:      m.Amount,
		Description: null.StringFromPtr(m.Description),
		Status:      entities.TransactionStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}
