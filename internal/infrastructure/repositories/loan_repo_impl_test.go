package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"bank-portal.backend/internal/domain/entities"
	domainerrors "bank-portal.backend/internal/domain/errors"
)

func newTestLoan(userID uuid.UUID, at time.Time) *entities.LoanApplication {
	return &entities.LoanApplication{
		ID:              uuid.New(),
		UserID:          userID,
		LoanType:        "personal",
		RequestedAmount: "5000.00",
		Purpose:         null.StringFrom("Home repairs"),
		Status:          entities.LoanStatusPending,
		CreatedAt:       at,
	}
}

func TestLoanRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createLoanApplicationTable(t, db)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loan := newTestLoan(uuid.New(), time.Now())
	require.NoError(t, repo.Create(ctx, loan))

	got, err := repo.GetByID(ctx, loan.ID)
	require.NoError(t, err)
	require.Equal(t, "personal", got.LoanType)
	require.Equal(t, "Home repairs", got.Purpose.String)
	require.Equal(t, entities.LoanStatusPending, got.Status)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestLoanRepository_ListByUser(t *testing.T) {
	db := newTestDB(t)
	createLoanApplicationTable(t, db)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	base := time.Now().Add(-time.Hour)
	older := newTestLoan(userID, base)
	newer := newTestLoan(userID, base.Add(time.Minute))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, newTestLoan(uuid.New(), base)))

	loans, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, loans, 2)
	require.Equal(t, newer.ID, loans[0].ID, "newest first")
}

func TestLoanRepository_ListAllWithUser(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createLoanApplicationTable(t, db)
	userRepo := NewUserRepository(db)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	applicant := newTestUser("applicant@example.com")
	require.NoError(t, userRepo.Create(ctx, applicant))
	require.NoError(t, repo.Create(ctx, newTestLoan(applicant.ID, time.Now())))

	loans, err := repo.ListAllWithUser(ctx)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	require.Equal(t, "Alice Smith", loans[0].UserName)
}

func TestLoanRepository_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	createLoanApplicationTable(t, db)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loan := newTestLoan(uuid.New(), time.Now())
	require.NoError(t, repo.Create(ctx, loan))

	updated, err := repo.UpdateStatus(ctx, loan.ID, entities.LoanStatusApproved)
	require.NoError(t, err)
	require.Equal(t, entities.LoanStatusApproved, updated.Status)

	_, err = repo.UpdateStatus(ctx, uuid.New(), entities.LoanStatusRejected)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
