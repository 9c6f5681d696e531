package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"bank-portal.backend/internal/domain/entities"
	domainerrors "bank-portal.backend/internal/domain/errors"
	"bank-portal.backend/internal/interfaces/http/middleware"
	"bank-portal.backend/internal/interfaces/http/response"
)

// AccountService is the account and ledger behavior the handler depends on
type AccountService interface {
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]*entities.Account, error)
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]*entities.Transaction, error)
	AdminListTransactions(ctx context.Context) ([]*entities.TransactionWithOwner, error)
}

// AccountHandler handles account and transaction endpoints
type AccountHandler struct {
	accountService AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// ListAccounts returns the caller's accounts
// GET /api/accounts
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, accounts)
}

// ListTransactions returns the caller's transactions across all their accounts
// GET /api/transactions
func (h *AccountHandler) ListTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	transactions, err := h.accountService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, transactions)
}

// AdminListTransactions returns recent transactions across every account
// GET /api/admin/transactions
func (h *AccountHandler) AdminListTransactions(c *gin.Context) {
	transactions, err := h.accountService.AdminListTransactions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, transactions)
}
