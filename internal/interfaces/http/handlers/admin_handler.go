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

// AdminService is the user administration behavior the handler depends on
type AdminService interface {
	ListAll(ctx context.Context) ([]*entities.User, error)
	ListPending(ctx context.Context) ([]*entities.User, error)
	Approve(ctx context.Context, id uuid.UUID) (*entities.User, *entities.Account, error)
	Reject(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

// ConversationService lists per-user conversation summaries for the admin inbox
type ConversationService interface {
	Conversations(ctx context.Context, adminID uuid.UUID) ([]*entities.ConversationSummary, error)
}

// AdminHandler handles admin-only endpoints
type AdminHandler struct {
	adminService AdminService
	messages     ConversationService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService AdminService, messages ConversationService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		messages:     messages,
	}
}

// ListUsers returns every registered customer with the SSN masked
// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, usersToProfiles(users))
}

// ListPendingUsers returns customers awaiting approval
// GET /api/admin/pending-users
func (h *AdminHandler) ListPendingUsers(c *gin.Context) {
	users, err := h.adminService.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, usersToProfiles(users))
}

// ApproveUser approves a pending customer and provisions their first account
// POST /api/admin/approve-user/:id
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	user, account, err := h.adminService.Approve(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	body := gin.H{
		"user": userProfile(user),
	}
	if account != nil {
		body["account"] = account
	}
	response.Success(c, http.StatusOK, body)
}

// RejectUser revokes a customer's approval
// POST /api/admin/reject-user/:id
func (h *AdminHandler) RejectUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	user, err := h.adminService.Reject(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": userProfile(user),
	})
}

// ListConversations returns one summary per customer, most recent first
// GET /api/admin/conversations
func (h *AdminHandler) ListConversations(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	conversations, err := h.messages.Conversations(c.Request.Context(), adminID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, conversations)
}

func userProfile(user *entities.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"email":         user.Email,
		"firstName":     user.FirstName,
		"lastName":      user.LastName,
		"phone":         user.Phone,
		"dateOfBirth":   user.DateOfBirth.Format("2006-01-02"),
		"ssn":           user.MaskedSSN(),
		"streetAddress": user.StreetAddress,
		"city":          user.City,
		"state":         user.State,
		"zipCode":       user.ZipCode,
		"isApproved":    user.IsApproved,
		"createdAt":     user.CreatedAt,
	}
}

func usersToProfiles(users []*entities.User) []gin.H {
	profiles := make([]gin.H, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, userProfile(u))
	}
	return profiles
}
