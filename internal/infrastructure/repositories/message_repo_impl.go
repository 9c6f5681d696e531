package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"bank-portal.backend/internal/domain/entities"
	"bank-portal.backend/internal/infrastructure/models"
)

// MessageRepository implements message data operations
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create creates a new message
func (r *MessageRepository) Create(ctx context.Context, message *entities.Message) error {
	m := &models.Message{
		ID:          message.ID,
		FromUserID:  message.FromUserID,
		ToUserID:    message.ToUserID,
		Content:     message.Content,
		IsFromAdmin: message.IsFromAdmin,
		CreatedAt:   message.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListBetween returns the exchange between two participants in either
// direction, oldest first. Insertion order is the conversation order.
func (r *MessageRepository) ListBetween(ctx context.Context, a, b uuid.UUID) ([]*entities.Message, error) {
	var messageModels []models.Message
	err := r.db.WithContext(ctx).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)", a, b, b, a).
		Order("created_at ASC").
		Find(&messageModels).Error
	if err != nil {
		return nil, err
	}
	return messagesToEntities(messageModels), nil
}

// ListTouching returns every message sent or received by one participant,
// oldest first
func (r *MessageRepository) ListTouching(ctx context.Context, id uuid.UUID) ([]*entities.Message, error) {
	var messageModels []models.Message
	err := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", id, id).
		Order("created_at ASC").
		Find(&messageModels).Error
	if err != nil {
		return nil, err
	}
	return messagesToEntities(messageModels), nil
}

func messagesToEntities(messageModels []models.Message) []*entities.Message {
	var messages []*entities.Message
	for _, m := range messageModels {
		model := m
		messages = append(messages, messageToEntity(&model))
	}
	return messages
}

func messageToEntity(m *models.Message) *entities.Message {
	return &entities.Message{
		ID:          m.ID,
		FromUserID:  m.FromUserID,
		ToUserID:    m.ToUserID,
		Content:     m.Content,
		IsFromAdmin: m.IsFromAdmin,
		CreatedAt:   m.CreatedAt,
	}
}
