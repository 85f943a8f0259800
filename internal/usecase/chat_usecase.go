package usecase

import (
	"context"

	"sharecare/internal/domain/entity"
)

// ChatView is one conversation as shown in the chat list: the chat itself,
// the item it concerns, the counterparty and the caller's unread count.
type ChatView struct {
	Chat         *entity.Chat `json:"chat"`
	Item         *entity.Item `json:"item,omitempty"`
	Counterparty *entity.User `json:"counterparty,omitempty"`
	UnreadCount  int          `json:"unread_count"`
}

// SendMessageInput is the payload for a text message.
type SendMessageInput struct {
	Text string `json:"message" validate:"required"`
}

// ChatUsecase defines the interface for donor-requester messaging.
type ChatUsecase interface {
	// List returns the caller's conversations with context for each.
	List(ctx context.Context, uid string) ([]*ChatView, error)

	// Messages returns a chat's messages in chronological order; parties
	// only.
	Messages(ctx context.Context, uid, chatID string) ([]*entity.Message, error)

	// SendText posts a text message to a chat; parties only.
	SendText(ctx context.Context, uid, chatID string, input *SendMessageInput) (*entity.Message, error)

	// SendImage stores an uploaded image and posts it as a message.
	SendImage(ctx context.Context, uid, chatID string, upload *ImageUpload) (*entity.Message, error)

	// MarkRead marks the counterparty's messages read, returning how many
	// were updated.
	MarkRead(ctx context.Context, uid, chatID string) (int, error)

	// UnreadCount counts unread counterparty messages across the caller's
	// chats.
	UnreadCount(ctx context.Context, uid string) (int, error)
}
