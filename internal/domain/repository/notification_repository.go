package repository

import (
	"context"
	"errors"

	"sharecare/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification document is absent.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for the notifications
// collection.
type NotificationRepository interface {
	// Create persists a new notification and fills in its generated document
	// ID.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its document ID.
	FindByID(ctx context.Context, id string) (*entity.Notification, error)

	// FindAll retrieves every notification, newest first.
	FindAll(ctx context.Context) ([]*entity.Notification, error)

	// Update applies targeted field updates to a notification document.
	Update(ctx context.Context, id string, updates map[string]any) error

	// Delete removes the notification document.
	Delete(ctx context.Context, id string) error
}

// AdminNotificationRepository defines the interface for the moderation
// console's notification audit collection.
type AdminNotificationRepository interface {
	// Create persists a new admin notification record and fills in its
	// generated document ID.
	Create(ctx context.Context, record *entity.AdminNotification) error

	// FindByID retrieves a record by its document ID.
	FindByID(ctx context.Context, id string) (*entity.AdminNotification, error)

	// FindAll retrieves every record, newest first.
	FindAll(ctx context.Context) ([]*entity.AdminNotification, error)

	// Update applies targeted field updates to a record.
	Update(ctx context.Context, id string, updates map[string]any) error

	// Delete removes the record.
	Delete(ctx context.Context, id string) error
}
