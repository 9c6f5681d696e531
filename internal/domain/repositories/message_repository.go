package repositories

import (
	"context"

	"github.com/google/uuid"
	"bank-portal.backend/internal/domain/entities"
)

// MessageRepository defines message data operations. Messages are append-only;
// there is no update or delete.
type MessageRepository interface {
	Create(ctx context.Context, message *entities.Message) error
	// ListBetween returns the exchange between exactly two participants, in
	// either direction, ordered by creation time ascending.
	ListBetween(ctx context.Context, a, b uuid.UUID) ([]*entities.Message, error)
	// ListTouching returns every message sent or received by the given
	// participant, ordered by creation time ascending.
	ListTouching(ctx context.Context, id uuid.UUID) ([]*entities.Message, error)
}
