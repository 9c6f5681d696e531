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

// MessageService is the messaging behavior the handler depends on
type MessageService interface {
	Send(ctx context.Context, senderID uuid.UUID, isSenderAdmin bool, input *entities.SendMessageInput) (*entities.Message, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entities.Message, error)
	ListForAdmin(ctx context.Context, adminID uuid.UUID) ([]*entities.Message, error)
}

// MessageHandler handles messaging endpoints
type MessageHandler struct {
	messageService MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// List returns the caller's conversation history.
// A customer sees their thread with support; the admin sees every
// message they have sent or received.
// GET /api/messages
func (h *MessageHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var (
		messages []*entities.Message
		err      error
	)
	if middleware.IsAdmin(c) {
		messages, err = h.messageService.ListForAdmin(c.Request.Context(), userID)
	} else {
		messages, err = h.messageService.ListForUser(c.Request.Context(), userID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, messages)
}

// Send persists a message and fans it out to connected peers
// POST /api/messages
func (h *MessageHandler) Send(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	message, err := h.messageService.Send(c.Request.Context(), userID, middleware.IsAdmin(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, message)
}
