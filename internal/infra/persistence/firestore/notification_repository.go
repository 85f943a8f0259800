package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/domain/repository"
)

// notificationDoc is the stored shape of a notification. The audience is
// persisted as a plain target_users array where empty means broadcast.
type notificationDoc struct {
	Title       string    `firestore:"title"`
	Message     string    `firestore:"message"`
	Type        string    `firestore:"type"`
	TargetUsers []string  `firestore:"target_users"`
	ReadBy      []string  `firestore:"read_by"`
	CreatedAt   time.Time `firestore:"created_at"`
	ReadAt      time.Time `firestore:"read_at"`
}

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	client *firestore.Client
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &notificationRepository{
		client: client,
	}
}

// Create persists a new notification and fills in its generated document ID.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	doc := fromNotificationDomain(notification)

	ref, _, err := repo.client.Collection(notificationsCollection).Add(ctx, doc)
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create notification")
	}
	notification.ID = ref.ID

	return nil
}

// FindByID retrieves a notification by its document ID.
func (repo *notificationRepository) FindByID(ctx context.Context, id string) (*entity.Notification, error) {
	doc, err := repo.client.Collection(notificationsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find notification")
	}

	return decodeNotification(doc)
}

// FindAll retrieves every notification, newest first.
func (repo *notificationRepository) FindAll(ctx context.Context) ([]*entity.Notification, error) {
	iter := repo.client.Collection(notificationsCollection).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var notifications []*entity.Notification
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to list notifications")
		}

		notification, err := decodeNotification(doc)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

// Update applies targeted field updates to a notification document.
func (repo *notificationRepository) Update(ctx context.Context, id string, updates map[string]any) error {
	if _, err := repo.client.Collection(notificationsCollection).Doc(id).Update(ctx, toFirestoreUpdates(updates)); err != nil {
		if isNotFound(err) {
			return repository.ErrNotificationNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update notification")
	}

	return nil
}

// Delete removes the notification document.
func (repo *notificationRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(notificationsCollection).Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete notification")
	}

	return nil
}

func fromNotificationDomain(notification *entity.Notification) *notificationDoc {
	return &notificationDoc{
		Title:       notification.Title,
		Message:     notification.Message,
		Type:        notification.Type,
		TargetUsers: notification.Audience.UserIDs(),
		ReadBy:      notification.ReadBy,
		CreatedAt:   notification.CreatedAt,
		ReadAt:      notification.ReadAt,
	}
}

func decodeNotification(doc *firestore.DocumentSnapshot) (*entity.Notification, error) {
	var stored notificationDoc
	if err := doc.DataTo(&stored); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to decode notification")
	}

	return &entity.Notification{
		ID:        doc.Ref.ID,
		Title:     stored.Title,
		Message:   stored.Message,
		Type:      stored.Type,
		Audience:  entity.TargetedTo(stored.TargetUsers...),
		ReadBy:    stored.ReadBy,
		CreatedAt: stored.CreatedAt,
		ReadAt:    stored.ReadAt,
	}, nil
}
