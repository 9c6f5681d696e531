package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"bank-portal.backend/internal/domain/entities"
)

type accountServiceStub struct {
	listAccountsFn     func(ctx context.Context, userID uuid.UUID) ([]*entities.Account, error)
	listTransactionsFn func(ctx context.Context, userID uuid.UUID) ([]*entities.Transaction, error)
	adminListFn        func(ctx context.Context) ([]*entities.TransactionWithOwner, error)
}

func (s accountServiceStub) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*entities.Account, error) {
	return s.listAccountsFn(ctx, userID)
}
func (s accountServiceStub) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*entities.Transaction, error) {
	return s.listTransactionsFn(ctx, userID)
}
func (s accountServiceStub) AdminListTransactions(ctx context.Context) ([]*entities.TransactionWithOwner, error) {
	return s.adminListFn(ctx)
}

func TestAccountHandler_ListAccounts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	h := NewAccountHandler(accountServiceStub{
		listAccountsFn: func(_ context.Context, got uuid.UUID) ([]*entities.Account, error) {
			require.Equal(t, userID, got)
			return []*entities.Account{{
				ID:            uuid.New(),
				UserID:        userID,
				AccountNumber: "SPB1000AAAA",
				AccountType:   entities.AccountTypeChecking,
				Balance:       "0.00",
				IsActive:      true,
			}}, nil
		},
	})

	r := gin.New()
	principalRoute(r, http.MethodGet, "/api/accounts", userID, false, h.ListAccounts)

	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var accounts []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accounts))
	require.Len(t, accounts, 1)
	require.Equal(t, "SPB1000AAAA", accounts[0]["accountNumber"])
	require.Equal(t, "checking", accounts[0]["accountType"])
}

func TestAccountHandler_ListTransactions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	h := NewAccountHandler(accountServiceStub{
		listTransactionsFn: func(_ context.Context, got uuid.UUID) ([]*entities.Transaction, error) {
			return []*entities.Transaction{{
				ID:     uuid.New(),
				Type:   entities.TransactionTypeCredit,
				Amount: "100.00",
				Status: entities.TransactionStatusCompleted,
			}}, nil
		},
	})

	r := gin.New()
	principalRoute(r, http.MethodGet, "/api/transactions", userID, false, h.ListTransactions)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var txs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &txs))
	require.Len(t, txs, 1)
	require.Equal(t, "credit", txs[0]["type"])
}

func TestAccountHandler_AdminListTransactions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewAccountHandler(accountServiceStub{
		adminListFn: func(context.Context) ([]*entities.TransactionWithOwner, error) {
			return []*entities.TransactionWithOwner{{
				Transaction:   entities.Transaction{ID: uuid.New(), Amount: "10.00"},
				AccountNumber: "SPB1000BBBB",
				UserName:      "Alice Smith",
			}}, nil
		},
	})

	r := gin.New()
	r.GET("/api/admin/transactions", h.AdminListTransactions)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/transactions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	require.Equal(t, "Alice Smith", rows[0]["userName"])
	require.Equal(t, "SPB1000BBBB", rows[0]["accountNumber"])
}
