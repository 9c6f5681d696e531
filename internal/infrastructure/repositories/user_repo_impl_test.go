package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"bank-portal.backend/internal/domain/entities"
	domainerrors "bank-portal.backend/internal/domain/errors"
)

func newTestUser(email string) *entities.User {
	now := time.Now()
	return &entities.User{
		ID:            uuid.New(),
		Email:         email,
		PasswordHash:  "hash",
		FirstName:     "Alice",
		LastName:      "Smith",
		SSN:           "123-45-6789",
		Phone:         "5551234567",
		StreetAddress: "1 Main St",
		City:          "Springfield",
		State:         "IL",
		ZipCode:       "62701",
		DateOfBirth:   time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := newTestUser("alice@example.com")
	require.NoError(t, repo.Create(ctx, u))

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)
	require.False(t, byID.IsApproved)

	byEmail, err := repo.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)
}

func TestUserRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetAdmin(ctx)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.SetApproval(ctx, uuid.New(), true)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_GetAdmin(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	regular := newTestUser("user@example.com")
	require.NoError(t, repo.Create(ctx, regular))

	admin := newTestUser("spb@admin.io")
	admin.IsAdmin = true
	admin.IsApproved = true
	require.NoError(t, repo.Create(ctx, admin))

	got, err := repo.GetAdmin(ctx)
	require.NoError(t, err)
	require.Equal(t, admin.ID, got.ID)
	require.True(t, got.IsAdmin)
}

func TestUserRepository_SetApproval(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := newTestUser("pending@example.com")
	require.NoError(t, repo.Create(ctx, u))

	approved, err := repo.SetApproval(ctx, u.ID, true)
	require.NoError(t, err)
	require.True(t, approved.IsApproved)

	revoked, err := repo.SetApproval(ctx, u.ID, false)
	require.NoError(t, err)
	require.False(t, revoked.IsApproved)
}

func TestUserRepository_SetApprovalNeverTouchesAdmin(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	admin := newTestUser("spb@admin.io")
	admin.IsAdmin = true
	admin.IsApproved = true
	require.NoError(t, repo.Create(ctx, admin))

	_, err := repo.SetApproval(ctx, admin.ID, false)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	got, err := repo.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	require.True(t, got.IsApproved)
}

func TestUserRepository_Listings(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	admin := newTestUser("spb@admin.io")
	admin.IsAdmin = true
	require.NoError(t, repo.Create(ctx, admin))

	pending := newTestUser("pending@example.com")
	require.NoError(t, repo.Create(ctx, pending))

	approved := newTestUser("approved@example.com")
	approved.IsApproved = true
	require.NoError(t, repo.Create(ctx, approved))

	all, err := repo.ListNonAdmin(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, u := range all {
		require.False(t, u.IsAdmin)
	}

	pendingOnly, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pendingOnly, 1)
	require.Equal(t, pending.ID, pendingOnly[0].ID)
}

func TestUserRepository_ListApprovedWithoutAccount(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createAccountTable(t, db)
	userRepo := NewUserRepository(db)
	accountRepo := NewAccountRepository(db)
	ctx := context.Background()

	provisioned := newTestUser("provisioned@example.com")
	provisioned.IsApproved = true
	require.NoError(t, userRepo.Create(ctx, provisioned))
	require.NoError(t, accountRepo.Create(ctx, &entities.Account{
		ID:            uuid.New(),
		UserID:        provisioned.ID,
		AccountNumber: "SPB1000A1B2",
		AccountType:   entities.AccountTypeChecking,
		Balance:       "0.00",
		IsActive:      true,
		CreatedAt:     time.Now(),
	}))

	orphaned := newTestUser("orphaned@example.com")
	orphaned.IsApproved = true
	require.NoError(t, userRepo.Create(ctx, orphaned))

	pending := newTestUser("pending@example.com")
	require.NoError(t, userRepo.Create(ctx, pending))

	missing, err := userRepo.ListApprovedWithoutAccount(ctx)
	require.NoError(t, err)
	require.Len(t, missing, 1)
	require.Equal(t, orphaned.ID, missing[0].ID)
}
