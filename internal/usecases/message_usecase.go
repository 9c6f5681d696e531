package usecases

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"bank-portal.backend/internal/config"
	"bank-portal.backend/internal/domain/entities"
	domainerrors "bank-portal.backend/internal/domain/errors"
	"bank-portal.backend/internal/domain/repositories"
	"bank-portal.backend/internal/metrics"
	"bank-portal.backend/pkg/logger"
	"bank-portal.backend/pkg/utils"
	"go.uber.org/zap"
)

// Broadcaster pushes a persisted message to live websocket subscribers of a
// conversation topic. Delivery is best effort; the persisted list remains the
// source of truth.
type Broadcaster interface {
	Publish(topic string, message *entities.Message)
}

// MessageUsecase handles user<->admin messaging
type MessageUsecase struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
	broadcaster Broadcaster
	admin       config.AdminConfig
}

// NewMessageUsecase creates a new message usecase
func NewMessageUsecase(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	broadcaster Broadcaster,
	admin config.AdminConfig,
) *MessageUsecase {
	return &MessageUsecase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		broadcaster: broadcaster,
		admin:       admin,
	}
}

// Send persists a message and pushes it to live subscribers of the
// conversation. A regular user's message defaults to the administrator as
// recipient; the administrator must name a recipient. The broadcast happens
// after the insert succeeds and its failure never fails the send.
func (u *MessageUsecase) Send(ctx context.Context, senderID uuid.UUID, isSenderAdmin bool, input *entities.SendMessageInput) (*entities.Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domainerrors.BadRequest("message content must not be empty")
	}

	recipientID, err := u.resolveRecipient(ctx, isSenderAdmin, input.ToUserID)
	if err != nil {
		return nil, err
	}

	message := &entities.Message{
		ID:          utils.GenerateUUIDv7(),
		FromUserID:  senderID,
		ToUserID:    recipientID,
		Content:     content,
		IsFromAdmin: isSenderAdmin,
		CreatedAt:   time.Now(),
	}
	if err := u.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	metrics.MessagesSentTotal.Inc()

	if u.broadcaster != nil {
		// The topic is the non-admin participant's id: the admin side of
		// every conversation is the same identity.
		topic := message.FromUserID
		if isSenderAdmin {
			topic = message.ToUserID
		}
		u.broadcaster.Publish(topic.String(), message)
	}

	return message, nil
}

// ListForUser returns the caller's conversation with the administrator,
// oldest first
func (u *MessageUsecase) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entities.Message, error) {
	admin, err := ensureAdminUser(ctx, u.userRepo, u.admin)
	if err != nil {
		return nil, err
	}
	return u.messageRepo.ListBetween(ctx, userID, admin.ID)
}

// ListForAdmin returns every message touching the administrator, oldest first
func (u *MessageUsecase) ListForAdmin(ctx context.Context, adminID uuid.UUID) ([]*entities.Message, error) {
	return u.messageRepo.ListTouching(ctx, adminID)
}

// Conversations builds the administrator's inbox: one summary per regular
// user, most recently active first, users with no messages last. The unread
// count is the historical number of messages the user has sent to the admin;
// there is no read-receipt state, so it never resets.
func (u *MessageUsecase) Conversations(ctx context.Context, adminID uuid.UUID) ([]*entities.ConversationSummary, error) {
	users, err := u.userRepo.ListNonAdmin(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*entities.ConversationSummary, 0, len(users))
	for _, user := range users {
		messages, err := u.messageRepo.ListBetween(ctx, adminID, user.ID)
		if err != nil {
			return nil, err
		}

		var last *entities.Message
		if len(messages) > 0 {
			last = messages[len(messages)-1]
		}

		unread := 0
		for _, m := range messages {
			if m.FromUserID == user.ID && m.ToUserID == adminID {
				unread++
			}
		}

		summaries = append(summaries, &entities.ConversationSummary{
			User:        user,
			LastMessage: last,
			UnreadCount: unread,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].LastMessage, summaries[j].LastMessage
		if a == nil && b == nil {
			return false
		}
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return summaries, nil
}

func (u *MessageUsecase) resolveRecipient(ctx context.Context, isSenderAdmin bool, toUserID string) (uuid.UUID, error) {
	if toUserID != "" {
		id, err := uuid.Parse(toUserID)
		if err != nil {
			return uuid.Nil, domainerrors.BadRequest("toUserId must be a valid id")
		}
		return id, nil
	}

	if isSenderAdmin {
		return uuid.Nil, domainerrors.BadRequest("toUserId is required when sending as administrator")
	}

	admin, err := ensureAdminUser(ctx, u.userRepo, u.admin)
	if err != nil {
		logger.Error(ctx, "failed to resolve admin recipient", zap.Error(err))
		return uuid.Nil, err
	}
	return admin.ID, nil
}
