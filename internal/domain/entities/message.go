package entities

import (
	"time"

	"github.com/google/uuid"
)

// Message represents one entry in a (user, admin) conversation. Messages are
// immutable once created.
type Message struct {
	ID          uuid.UUID `json:"id"`
	FromUserID  uuid.UUID `json:"fromUserId"`
	ToUserID    uuid.UUID `json:"toUserId"`
	Content     string    `json:"content"`
	IsFromAdmin bool      `json:"isFromAdmin"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SendMessageInput represents input for sending a message. ToUserID is
// optional for regular users (it defaults to the administrator) and required
// for the administrator.
type SendMessageInput struct {
	Content  string `json:"content" binding:"required"`
	ToUserID string `json:"toUserId"`
}

// ConversationSummary is one row of the administrator's inbox: the user, the
// latest message exchanged with them, and the count of messages that user has
// sent to the admin. The count is historical, not a true unread tracker; no
// read-receipt state exists.
type ConversationSummary struct {
	User        *User    `json:"user"`
	LastMessage *Message `json:"lastMessage"`
	UnreadCount int      `json:"unreadCount"`
}
