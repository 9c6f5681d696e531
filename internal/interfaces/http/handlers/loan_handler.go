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

// LoanService is the loan application behavior the handler depends on
type LoanService interface {
	Submit(ctx context.Context, userID uuid.UUID, input *entities.SubmitLoanInput) (*entities.LoanApplication, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.LoanApplication, error)
	ListAll(ctx context.Context) ([]*entities.LoanApplicationWithUser, error)
	SetStatus(ctx context.Context, id uuid.UUID, status entities.LoanStatus) (*entities.LoanApplication, error)
}

// LoanHandler handles loan application endpoints
type LoanHandler struct {
	loanService LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// Submit files a new loan application for the caller
// POST /api/loans
func (h *LoanHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.SubmitLoanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	loan, err := h.loanService.Submit(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, loan)
}

// List returns the caller's loan applications
// GET /api/loans
func (h *LoanHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	loans, err := h.loanService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, loans)
}

// AdminList returns every loan application with applicant details
// GET /api/admin/loans
func (h *LoanHandler) AdminList(c *gin.Context) {
	loans, err := h.loanService.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, loans)
}

// SetStatus approves or rejects a loan application
// POST /api/admin/loans/:id/status
func (h *LoanHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid loan ID"))
		return
	}

	var input entities.SetLoanStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	loan, err := h.loanService.SetStatus(c.Request.Context(), id, entities.LoanStatus(input.Status))
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Loan application not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, loan)
}
