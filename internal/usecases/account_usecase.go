package usecases

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"bank-portal.backend/internal/domain/entities"
	"bank-portal.backend/internal/domain/repositories"
)

// AccountUsecase handles approved users' account and transaction views
type AccountUsecase struct {
	accountRepo     repositories.AccountRepository
	transactionRepo repositories.TransactionRepository
}

// NewAccountUsecase creates a new account usecase
func NewAccountUsecase(accountRepo repositories.AccountRepository, transactionRepo repositories.TransactionRepository) *AccountUsecase {
	return &AccountUsecase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// ListAccounts lists the caller's accounts
func (u *AccountUsecase) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*entities.Account, error) {
	return u.accountRepo.ListByUser(ctx, userID)
}

// ListTransactions gathers transactions across all of the caller's accounts,
// newest first
func (u *AccountUsecase) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*entities.Transaction, error) {
	accounts, err := u.accountRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var all []*entities.Transaction
	for _, account := range accounts {
		txs, err := u.transactionRepo.ListByAccount(ctx, account.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, txs...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

// AdminListTransactions lists the latest transactions across every account
// with owner details, for the admin reporting view
func (u *AccountUsecase) AdminListTransactions(ctx context.Context) ([]*entities.TransactionWithOwner, error) {
	return u.transactionRepo.ListRecentWithOwners(ctx, 100)
}
