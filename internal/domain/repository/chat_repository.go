package repository

import (
	"context"
	"errors"

	"sharecare/internal/domain/entity"
)

// ErrChatNotFound is returned when a chat document is absent.
var ErrChatNotFound = errors.New("chat not found")

// ChatRepository defines the interface for the chats collection and its
// messages.
type ChatRepository interface {
	// Create persists a new chat and fills in its generated document ID.
	Create(ctx context.Context, chat *entity.Chat) error

	// FindByID retrieves a chat by its document ID.
	FindByID(ctx context.Context, id string) (*entity.Chat, error)

	// FindByParties retrieves the chat keyed by item, donor and requester, or
	// ErrChatNotFound when none exists.
	FindByParties(ctx context.Context, itemID, donorID, requesterID string) (*entity.Chat, error)

	// ListByUser retrieves every chat where the user is donor or requester.
	ListByUser(ctx context.Context, uid string) ([]*entity.Chat, error)

	// Update applies targeted field updates to a chat document.
	Update(ctx context.Context, id string, updates map[string]any) error

	// Delete removes the chat document and its messages.
	Delete(ctx context.Context, id string) error

	// CreateMessage persists a message in a chat and fills in its generated
	// document ID.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// ListMessages retrieves the messages of a chat in chronological order.
	ListMessages(ctx context.Context, chatID string) ([]*entity.Message, error)

	// MarkMessagesRead marks every message in the chat not sent by the reader
	// as read, returning the number of messages updated.
	MarkMessagesRead(ctx context.Context, chatID, readerID string) (int, error)

	// CountUnread counts messages across all of the user's chats that were
	// sent by the counterparty and are still unread.
	CountUnread(ctx context.Context, uid string) (int, error)
}
