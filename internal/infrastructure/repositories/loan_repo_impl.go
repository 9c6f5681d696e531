package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"bank-portal.backend/internal/domain/entities"
	domainerrors "bank-portal.backend/internal/domain/errors"
	"bank-portal.backend/internal/infrastructure/models"
)

// LoanRepository implements loan application data operations
type LoanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

// Create creates a new loan application
func (r *LoanRepository) Create(ctx context.Context, loan *entities.LoanApplication) error {
	m := &models.LoanApplication{
		ID:              loan.ID,
		UserID:          loan.UserID,
		LoanType:        loan.LoanType,
		RequestedAmount: loan.RequestedAmount,
		Purpose:         loan.Purpose.Ptr(),
		Status:          string(loan.Status),
		CreatedAt:       loan.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// GetByID gets a loan application by ID
func (r *LoanRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.LoanApplication, error) {
	var m models.LoanApplication
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return loanToEntity(&m), nil
}

// ListByUser lists a user's loan applications, newest first
func (r *LoanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.LoanApplication, error) {
	var loanModels []models.LoanApplication
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&loanModels).Error
	if err != nil {
		return nil, err
	}

	var loans []*entities.LoanApplication
	for _, m := range loanModels {
		model := m
		loans = append(loans, loanToEntity(&model))
	}
	return loans, nil
}

// ListAllWithUser lists every application joined with the applicant's name,
// newest first
func (r *LoanRepository) ListAllWithUser(ctx context.Context) ([]*entities.LoanApplicationWithUser, error) {
	type row struct {
		ID              uuid.UUID
		UserID          uuid.UUID
		LoanType        string
		RequestedAmount string
		Purpose         *string
		Status          string
		CreatedAt       time.Time
		FirstName       string
		LastName        string
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Table("loan_applications").
		Select("loan_applications.id, loan_applications.user_id, loan_applications.loan_type, loan_applications.requested_amount, loan_applications.purpose, loan_applications.status, loan_applications.created_at, users.first_name, users.last_name").
		Joins("LEFT JOIN users ON users.id = loan_applications.user_id").
		Order("loan_applications.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	var result []*entities.LoanApplicationWithUser
	for _, rw := range rows {
		name := rw.FirstName
		if rw.LastName != "" {
			if name != "" {
				name += " "
			}
			name += rw.LastName
		}
		result = append(result, &entities.LoanApplicationWithUser{
			LoanApplication: entities.LoanApplication{
				ID:              rw.ID,
				UserID:          rw.UserID,
				LoanType:        rw.LoanType,
				RequestedAmount: rw.RequestedAmount,
				Purpose:         null.StringFromPtr(rw.Purpose),
				Status:          entities.LoanStatus(rw.Status),
				CreatedAt:       rw.CreatedAt,
			},
			UserName: name,
		})
	}
	return result, nil
}

// UpdateStatus sets the review status and returns the updated application
func (r *LoanRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.LoanStatus) (*entities.LoanApplication, error) {
	result := r.db.WithContext(ctx).
		Model(&models.LoanApplication{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func loanToEntity(m *models.LoanApplication) *entities.LoanApplication {
	return &entities.LoanApplication{
		ID:              m.ID,
		UserID:          m.UserID,
		LoanType:        m.LoanType,
		RequestedAmount: m.RequestedAmount,
		Purpose:         null.StringFromPtr(m.Purpose),
		Status:          entities.LoanStatus(m.Status),
		CreatedAt:       m.CreatedAt,
	}
}
