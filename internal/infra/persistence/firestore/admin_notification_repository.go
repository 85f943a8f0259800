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

// adminNotificationDoc is the stored shape of an admin notification record.
type adminNotificationDoc struct {
	NotificationID string    `firestore:"notification_id"`
	Title          string    `firestore:"title"`
	Message        string    `firestore:"message"`
	Type           string    `firestore:"type"`
	TargetUsers    []string  `firestore:"target_users"`
	SentBy         string    `firestore:"sent_by"`
	ResendCount    int       `firestore:"resend_count"`
	CreatedAt      time.Time `firestore:"created_at"`
}

// adminNotificationRepository implements the
// repository.AdminNotificationRepository interface.
type adminNotificationRepository struct {
	client *firestore.Client
}

// NewAdminNotificationRepository is the constructor for adminNotificationRepository.
func NewAdminNotificationRepository(client *firestore.Client) repository.AdminNotificationRepository {
	return &adminNotificationRepository{
		client: client,
	}
}

// Create persists a new admin notification record and fills in its generated
// document ID.
func (repo *adminNotificationRepository) Create(ctx context.Context, record *entity.AdminNotification) error {
	doc := &adminNotificationDoc{
		NotificationID: record.NotificationID,
		Title:          record.Title,
		Message:        record.Message,
		Type:           record.Type,
		TargetUsers:    record.Audience.UserIDs(),
		SentBy:         record.SentBy,
		ResendCount:    record.ResendCount,
		CreatedAt:      record.CreatedAt,
	}

	ref, _, err := repo.client.Collection(adminNotificationsCollection).Add(ctx, doc)
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create admin notification")
	}
	record.ID = ref.ID

	return nil
}

// FindByID retrieves a record by its document ID.
func (repo *adminNotificationRepository) FindByID(ctx context.Context, id string) (*entity.AdminNotification, error) {
	doc, err := repo.client.Collection(adminNotificationsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find admin notification")
	}

	return decodeAdminNotification(doc)
}

// FindAll retrieves every record, newest first.
func (repo *adminNotificationRepository) FindAll(ctx context.Context) ([]*entity.AdminNotification, error) {
	iter := repo.client.Collection(adminNotificationsCollection).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var records []*entity.AdminNotification
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to list admin notifications")
		}

		record, err := decodeAdminNotification(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Update applies targeted field updates to a record.
func (repo *adminNotificationRepository) Update(ctx context.Context, id string, updates map[string]any) error {
	if _, err := repo.client.Collection(adminNotificationsCollection).Doc(id).Update(ctx, toFirestoreUpdates(updates)); err != nil {
		if isNotFound(err) {
			return repository.ErrNotificationNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update admin notification")
	}

	return nil
}

// Delete removes the record.
func (repo *adminNotificationRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(adminNotificationsCollection).Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete admin notification")
	}

	return nil
}

func decodeAdminNotification(doc *firestore.DocumentSnapshot) (*entity.AdminNotification, error) {
	var stored adminNotificationDoc
	if err := doc.DataTo(&stored); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to decode admin notification")
	}

	return &entity.AdminNotification{
		ID:             doc.Ref.ID,
		NotificationID: stored.NotificationID,
		Title:          stored.Title,
		Message:        stored.Message,
		Type:           stored.Type,
		Audience:       entity.TargetedTo(stored.TargetUsers...),
		SentBy:         stored.SentBy,
		ResendCount:    stored.ResendCount,
		CreatedAt:      stored.CreatedAt,
	}, nil
}
