package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/domain/repository"
)

// chatRepository implements the repository.ChatRepository interface. Messages
// live in a subcollection under each chat document.
type chatRepository struct {
	client *firestore.Client
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(client *firestore.Client) repository.ChatRepository {
	return &chatRepository{
		client: client,
	}
}

// Create persists a new chat and fills in its generated document ID.
func (repo *chatRepository) Create(ctx context.Context, chat *entity.Chat) error {
	ref, _, err := repo.client.Collection(chatsCollection).Add(ctx, chat)
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create chat")
	}
	chat.ID = ref.ID

	return nil
}

// FindByID retrieves a chat by its document ID.
func (repo *chatRepository) FindByID(ctx context.Context, id string) (*entity.Chat, error) {
	doc, err := repo.client.Collection(chatsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrChatNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find chat")
	}

	return decodeChat(doc)
}

// FindByParties retrieves the chat keyed by item, donor and requester.
func (repo *chatRepository) FindByParties(ctx context.Context, itemID, donorID, requesterID string) (*entity.Chat, error) {
	iter := repo.client.Collection(chatsCollection).
		Where("item_id", "==", itemID).
		Where("donor_id", "==", donorID).
		Where("requester_id", "==", requesterID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, repository.ErrChatNotFound
	}
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to find chat")
	}

	return decodeChat(doc)
}

// ListByUser retrieves every chat where the user is donor or requester.
func (repo *chatRepository) ListByUser(ctx context.Context, uid string) ([]*entity.Chat, error) {
	seen := make(map[string]bool)

	var chats []*entity.Chat
	for _, field := range []string{"donor_id", "requester_id"} {
		iter := repo.client.Collection(chatsCollection).Where(field, "==", uid).Documents(ctx)

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()

				return nil, domainerrors.NewStoreExecuteError(err, "failed to list chats")
			}

			if seen[doc.Ref.ID] {
				continue
			}
			seen[doc.Ref.ID] = true

			chat, err := decodeChat(doc)
			if err != nil {
				iter.Stop()

				return nil, err
			}
			chats = append(chats, chat)
		}
		iter.Stop()
	}

	return chats, nil
}

// Update applies targeted field updates to a chat document.
func (repo *chatRepository) Update(ctx context.Context, id string, updates map[string]any) error {
	if _, err := repo.client.Collection(chatsCollection).Doc(id).Update(ctx, toFirestoreUpdates(updates)); err != nil {
		if isNotFound(err) {
			return repository.ErrChatNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update chat")
	}

	return nil
}

// Delete removes the chat document and its messages.
func (repo *chatRepository) Delete(ctx context.Context, id string) error {
	chatRef := repo.client.Collection(chatsCollection).Doc(id)

	iter := chatRef.Collection(messagesSubcollection).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return domainerrors.NewStoreExecuteError(err, "failed to list chat messages")
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return domainerrors.NewStoreExecuteError(err, "failed to delete chat message")
		}
	}

	if _, err := chatRef.Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete chat")
	}

	return nil
}

// CreateMessage persists a message in a chat and fills in its generated
// document ID.
func (repo *chatRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	col := repo.client.Collection(chatsCollection).Doc(message.ChatID).Collection(messagesSubcollection)

	ref, _, err := col.Add(ctx, message)
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create message")
	}
	message.ID = ref.ID

	return nil
}

// ListMessages retrieves the messages of a chat in chronological order.
func (repo *chatRepository) ListMessages(ctx context.Context, chatID string) ([]*entity.Message, error) {
	iter := repo.client.Collection(chatsCollection).Doc(chatID).
		Collection(messagesSubcollection).
		OrderBy("created_at", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to list messages")
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to decode message")
		}
		message.ID = doc.Ref.ID
		messages = append(messages, &message)
	}

	return messages, nil
}

// MarkMessagesRead marks every message in the chat not sent by the reader as
// read, returning the number of messages updated.
func (repo *chatRepository) MarkMessagesRead(ctx context.Context, chatID, readerID string) (int, error) {
	iter := repo.client.Collection(chatsCollection).Doc(chatID).
		Collection(messagesSubcollection).
		Where("read", "==", false).
		Documents(ctx)
	defer iter.Stop()

	updated := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return updated, domainerrors.NewStoreExecuteError(err, "failed to list unread messages")
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return updated, domainerrors.NewStoreExecuteError(err, "failed to decode message")
		}
		if message.SenderID == readerID {
			continue
		}

		if _, err := doc.Ref.Update(ctx, []firestore.Update{{Path: "read", Value: true}}); err != nil {
			return updated, domainerrors.NewStoreExecuteError(err, "failed to mark message read")
		}
		updated++
	}

	return updated, nil
}

// CountUnread counts messages across all of the user's chats that were sent
// by the counterparty and are still unread.
func (repo *chatRepository) CountUnread(ctx context.Context, uid string) (int, error) {
	chats, err := repo.ListByUser(ctx, uid)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, chat := range chats {
		iter := repo.client.Collection(chatsCollection).Doc(chat.ID).
			Collection(messagesSubcollection).
			Where("read", "==", false).
			Documents(ctx)

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()

				return 0, domainerrors.NewStoreExecuteError(err, "failed to count unread messages")
			}

			var message entity.Message
			if err := doc.DataTo(&message); err != nil {
				iter.Stop()

				return 0, domainerrors.NewStoreExecuteError(err, "failed to decode message")
			}
			if message.SenderID != uid {
				total++
			}
		}
		iter.Stop()
	}

	return total, nil
}

func decodeChat(doc *firestore.DocumentSnapshot) (*entity.Chat, error) {
	var chat entity.Chat
	if err := doc.DataTo(&chat); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to decode chat")
	}
	chat.ID = doc.Ref.ID

	return &chat, nil
}
