package usecases_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bank-portal.backend/internal/domain/entities"
	"bank-portal.backend/internal/infrastructure/repositories"
	"bank-portal.backend/internal/interfaces/ws"
	"bank-portal.backend/internal/usecases"
)

// Exercises the whole onboarding flow against real repositories: a user
// registers, the administrator logs in and approves them, an account is
// provisioned exactly once, and the first support message round-trips.
func TestPortalFlow_RegisterApproveMessage(t *testing.T) {
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	for _, q := range []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			ssn TEXT NOT NULL,
			phone TEXT NOT NULL,
			street_address TEXT NOT NULL,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			zip_code TEXT NOT NULL,
			date_of_birth DATETIME NOT NULL,
			is_approved BOOLEAN NOT NULL DEFAULT FALSE,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE accounts (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			account_number TEXT UNIQUE NOT NULL,
			account_type TEXT NOT NULL DEFAULT 'checking',
			balance TEXT NOT NULL DEFAULT '0.00',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME
		);`,
		`CREATE TABLE messages (
			id TEXT PRIMARY KEY,
			from_user_id TEXT NOT NULL,
			to_user_id TEXT NOT NULL,
			content TEXT NOT NULL,
			is_from_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at DATETIME
		);`,
	} {
		require.NoError(t, db.Exec(q).Error)
	}

	userRepo := repositories.NewUserRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	adminCfg := testAdminConfig()
	authUC := usecases.NewAuthUsecase(userRepo, adminCfg)
	adminUC := usecases.NewAdminUsecase(userRepo, accountRepo)
	messageUC := usecases.NewMessageUsecase(messageRepo, userRepo, ws.NewHub(), adminCfg)

	ctx := context.Background()

	input := validRegisterInput()
	input.Email = "alice@example.com"
	alice, err := authUC.Register(ctx, input)
	require.NoError(t, err)
	require.False(t, alice.IsApproved)

	admin, err := authUC.AdminLogin(ctx, &entities.AdminLoginInput{
		Email:    adminCfg.Email,
		Username: adminCfg.Username,
		Password: adminCfg.Password,
	})
	require.NoError(t, err)
	require.True(t, admin.IsAdmin)

	approved, account, err := adminUC.Approve(ctx, alice.ID)
	require.NoError(t, err)
	require.True(t, approved.IsApproved)
	require.NotNil(t, account)
	require.Equal(t, entities.AccountTypeChecking, account.AccountType)
	require.True(t, account.IsActive)

	// A second approval must not provision a second account
	_, again, err := adminUC.Approve(ctx, alice.ID)
	require.NoError(t, err)
	require.Nil(t, again)

	accounts, err := accountRepo.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	sent, err := messageUC.Send(ctx, alice.ID, false, &entities.SendMessageInput{Content: "Hi"})
	require.NoError(t, err)
	require.Equal(t, "Hi", sent.Content)
	require.False(t, sent.IsFromAdmin)

	thread, err := messageUC.ListForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, thread, 1)
	require.Equal(t, "Hi", thread[0].Content)
	require.Equal(t, alice.ID, thread[0].FromUserID)
}
