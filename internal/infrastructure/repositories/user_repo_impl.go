package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"bank-portal.backend/internal/domain/entities"
	domainerrors "bank-portal.backend/internal/domain/errors"
	"bank-portal.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := userToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetAdmin gets the distinguished administrator record
func (r *UserRepository) GetAdmin(ctx context.Context) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("is_admin = ?", true).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// SetApproval flips the approval flag and returns the updated user
func (r *UserRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*entities.User, error) {
	result := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND is_admin = ?", id, false).
		Updates(map[string]interface{}{
			"is_approved": approved,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// ListNonAdmin lists every regular user, newest first
func (r *UserRepository) ListNonAdmin(ctx context.Context) ([]*entities.User, error) {
	var userModels []models.User
	err := r.db.WithContext(ctx).
		Where("is_admin = ?", false).
		Order("created_at DESC").
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}
	return usersToEntities(userModels), nil
}

// ListPending lists unapproved regular users, newest first
func (r *UserRepository) ListPending(ctx context.Context) ([]*entities.User, error) {
	var userModels []models.User
	err := r.db.WithContext(ctx).
		Where("is_admin = ? AND is_approved = ?", false, false).
		Order("created_at DESC").
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}
	return usersToEntities(userModels), nil
}

// ListApprovedWithoutAccount lists approved users with no provisioned account.
// Used by the provisioning reconciliation job.
func (r *UserRepository) ListApprovedWithoutAccount(ctx context.Context) ([]*entities.User, error) {
	var userModels []models.User
	err := r.db.WithContext(ctx).
		Joins("LEFT JOIN accounts ON accounts.user_id = users.id").
		Where("users.is_admin = ? AND users.is_approved = ? AND accounts.id IS NULL", false, true).
		Order("users.created_at ASC").
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}
	return usersToEntities(userModels), nil
}

func usersToEntities(userModels []models.User) []*entities.User {
	var users []*entities.User
	for _, m := range userModels {
		model := m
		users = append(users, userToEntity(&model))
	}
	return users
}

func userToModel(u *entities.User) *models.User {
	return &models.User{
		ID:            u.ID,
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		SSN:           u.SSN,
		Phone:         u.Phone,
		StreetAddress: u.StreetAddress,
		City:          u.City,
		State:         u.State,
		ZipCode:       u.ZipCode,
		DateOfBirth:   u.DateOfBirth,
		IsApproved:    u.IsApproved,
		IsAdmin:       u.IsAdmin,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:            m.ID,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		SSN:           m.SSN,
		Phone:         m.Phone,
		StreetAddress: m.StreetAddress,
		City:          m.City,
		State:         m.State,
		ZipCode:       m.ZipCode,
		DateOfBirth:   m.DateOfBirth,
		IsApproved:    m.IsApproved,
		IsAdmin:       m.IsAdmin,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
