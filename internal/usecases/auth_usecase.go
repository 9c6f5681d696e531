package usecases

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"bank-portal.backend/internal/config"
	"bank-portal.backend/internal/domain/entities"
	domainerrors "bank-portal.backend/internal/domain/errors"
	"bank-portal.backend/internal/domain/repositories"
	"bank-portal.backend/pkg/crypto"
	"bank-portal.backend/pkg/utils"
)

const dateOfBirthLayout = "2006-01-02"

// AuthUsecase handles registration and authentication business logic
type AuthUsecase struct {
	userRepo repositories.UserRepository
	admin    config.AdminConfig
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, admin config.AdminConfig) *AuthUsecase {
	return &AuthUsecase{
		userRepo: userRepo,
		admin:    admin,
	}
}

// Register registers a new user. The user starts unapproved and gains access
// to account views only after an administrator approves them.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	dob, err := time.Parse(dateOfBirthLayout, input.DateOfBirth)
	if err != nil {
		return nil, domainerrors.BadRequest("dateOfBirth must be formatted YYYY-MM-DD")
	}

	// Check if email already exists
	_, err = u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:            utils.GenerateUUIDv7(),
		Email:         input.Email,
		PasswordHash:  passwordHash,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		SSN:           input.SSN,
		Phone:         input.Phone,
		StreetAddress: input.StreetAddress,
		City:          input.City,
		State:         input.State,
		ZipCode:       input.ZipCode,
		DateOfBirth:   dob,
		IsApproved:    false,
		IsAdmin:       false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a regular user. An unknown email and a wrong password
// produce the same error so callers cannot enumerate accounts.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	// The admin identity never authenticates through the user path
	if user.IsAdmin {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// AdminLogin authenticates the fixed administrator identity. All three
// credential fields must match the configured values exactly; on success the
// persisted admin record is created lazily so messages and approvals have a
// stable id to reference.
func (u *AuthUsecase) AdminLogin(ctx context.Context, input *entities.AdminLoginInput) (*entities.User, error) {
	if u.admin.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	emailOK := subtle.ConstantTimeCompare([]byte(input.Email), []byte(u.admin.Email))
	usernameOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(u.admin.Username))
	passwordOK := subtle.ConstantTimeCompare([]byte(input.Password), []byte(u.admin.Password))
	if emailOK&usernameOK&passwordOK != 1 {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return ensureAdminUser(ctx, u.userRepo, u.admin)
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// ensureAdminUser fetches the persisted administrator record, creating it on
// first use. Message and approval foreign keys rely on this row existing.
func ensureAdminUser(ctx context.Context, userRepo repositories.UserRepository, admin config.AdminConfig) (*entities.User, error) {
	existing, err := userRepo.GetAdmin(ctx)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(admin.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:           utils.GenerateUUIDv7(),
		Email:        admin.Email,
		PasswordHash: passwordHash,
		FirstName:    admin.FirstName,
		LastName:     admin.LastName,
		IsApproved:   true,
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := userRepo.Create(ctx, user); err != nil {
		// A concurrent login may have created the row first
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return userRepo.GetAdmin(ctx)
		}
		return nil, err
	}
	return user, nil
}
