package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"bank-portal.backend/internal/domain/entities"
	"bank-portal.backend/internal/domain/repositories"
	"bank-portal.backend/internal/metrics"
	"bank-portal.backend/pkg/crypto"
	"bank-portal.backend/pkg/utils"
)

const accountNumberPrefix = "SPB"

// AdminUsecase handles the administrator's approval workflow
type AdminUsecase struct {
	userRepo    repositories.UserRepository
	accountRepo repositories.AccountRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(userRepo repositories.UserRepository, accountRepo repositories.AccountRepository) *AdminUsecase {
	return &AdminUsecase{
		userRepo:    userRepo,
		accountRepo: accountRepo,
	}
}

// Approve flips a user to approved and provisions their default checking
// account. Provisioning is guarded by an existence check so re-approving an
// already-approved user never creates a second account. The flag flip and the
// account insert are deliberately not wrapped in one transaction; a crash
// between them is repaired by the provisioning reconciliation job.
func (u *AdminUsecase) Approve(ctx context.Context, id uuid.UUID) (*entities.User, *entities.Account, error) {
	user, err := u.userRepo.SetApproval(ctx, id, true)
	if err != nil {
		return nil, nil, err
	}

	account, err := u.ProvisionAccount(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	metrics.UsersApprovedTotal.Inc()
	return user, account, nil
}

// Reject flips a user back to unapproved. Accounts provisioned by an earlier
// approval are left untouched.
func (u *AdminUsecase) Reject(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.SetApproval(ctx, id, false)
}

// ProvisionAccount creates the default checking account for a user unless one
// already exists. Returns nil without error when the user is already
// provisioned, which makes the call safe to repeat.
func (u *AdminUsecase) ProvisionAccount(ctx context.Context, userID uuid.UUID) (*entities.Account, error) {
	exists, err := u.accountRepo.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}

	number, err := generateAccountNumber()
	if err != nil {
		return nil, err
	}

	account := &entities.Account{
		ID:            utils.GenerateUUIDv7(),
		UserID:        userID,
		AccountNumber: number,
		AccountType:   entities.AccountTypeChecking,
		Balance:       "0.00",
		IsActive:      true,
		CreatedAt:     time.Now(),
	}
	if err := u.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	metrics.AccountsProvisionedTotal.Inc()
	return account, nil
}

// ListPending lists unapproved users awaiting review, newest first
func (u *AdminUsecase) ListPending(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.ListPending(ctx)
}

// ListAll lists every regular user, newest first. The administrator's own
// record is excluded.
func (u *AdminUsecase) ListAll(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.ListNonAdmin(ctx)
}

func generateAccountNumber() (string, error) {
	suffix, err := crypto.GenerateRandomToken(2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d%s", accountNumberPrefix, time.Now().UnixMilli(), strings.ToUpper(suffix)), nil
}
