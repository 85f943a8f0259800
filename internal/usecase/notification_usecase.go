package usecase

import (
	"context"

	"sharecare/internal/domain/entity"
)

// NotificationView is a notification with the caller's read flag resolved.
type NotificationView struct {
	*entity.Notification
	Read bool `json:"read"`
}

// NotificationPage is one page of a user's notification feed.
type NotificationPage struct {
	Notifications []*NotificationView `json:"notifications"`
	Total         int                 `json:"total"`
	UnreadCount   int                 `json:"unread_count"`
	Page          int                 `json:"page"`
	TotalPages    int                 `json:"total_pages"`
}

// NotificationUsecase defines the interface for the in-app notification feed.
type NotificationUsecase interface {
	// List returns the caller's targeted and broadcast notifications, newest
	// first.
	List(ctx context.Context, uid string, page, limit int) (*NotificationPage, error)

	// Get retrieves one notification the caller may see.
	Get(ctx context.Context, uid, id string) (*NotificationView, error)

	// MarkRead adds the caller to the notification's read set.
	MarkRead(ctx context.Context, uid, id string) error

	// MarkAllRead adds the caller to the read set of every visible unread
	// notification, returning how many were updated.
	MarkAllRead(ctx context.Context, uid string) (int, error)

	// Delete removes a notification targeted at the caller. Broadcasts
	// cannot be deleted by users.
	Delete(ctx context.Context, uid, id string) error

	// UnreadCount counts the caller's visible unread notifications.
	UnreadCount(ctx context.Context, uid string) (int, error)

	// Notify creates a notification for the given audience. Used by the
	// other workflows; failures are the caller's to swallow.
	Notify(ctx context.Context, audience entity.Audience, title, message, notificationType string) (*entity.Notification, error)
}
