package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "bank-portal.backend/internal/domain/errors"
	"bank-portal.backend/internal/interfaces/http/middleware"
	"bank-portal.backend/internal/interfaces/http/response"
)

// TicketIssuer mints short-lived websocket tickets
type TicketIssuer interface {
	Issue(userID uuid.UUID, isAdmin bool) (string, error)
}

// WSTicketHandler exchanges a session for a websocket ticket
type WSTicketHandler struct {
	tickets TicketIssuer
}

// NewWSTicketHandler creates a new websocket ticket handler
func NewWSTicketHandler(tickets TicketIssuer) *WSTicketHandler {
	return &WSTicketHandler{tickets: tickets}
}

// Issue mints a ticket bound to the caller's identity
// GET /api/ws/ticket
func (h *WSTicketHandler) Issue(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	ticket, err := h.tickets.Issue(userID, middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"ticket": ticket,
	})
}
