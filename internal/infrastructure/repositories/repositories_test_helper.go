package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
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
	);`)
}

func createAccountTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE accounts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		account_number TEXT UNIQUE NOT NULL,
		account_type TEXT NOT NULL DEFAULT 'checking',
		balance TEXT NOT NULL DEFAULT '0.00',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		type TEXT NOT NULL,
		amount TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL DEFAULT 'completed',
		created_at DATETIME
	);`)
}

func createMessageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE messages (
		id TEXT PRIMARY KEY,
		from_user_id TEXT NOT NULL,
		to_user_id TEXT NOT NULL,
		content TEXT NOT NULL,
		is_from_admin BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME
	);`)
}

func createLoanApplicationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE loan_applications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		loan_type TEXT NOT NULL,
		requested_amount TEXT NOT NULL,
		purpose TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME
	);`)
}
