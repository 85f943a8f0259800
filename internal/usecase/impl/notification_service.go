package impl

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/domain/repository"
	"sharecare/internal/usecase"
	"sharecare/internal/util"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
	}
}

// List returns the caller's targeted and broadcast notifications, newest
// first.
func (s *notificationService) List(ctx context.Context, uid string, page, limit int) (*usecase.NotificationPage, error) {
	visible, err := s.visibleTo(ctx, uid)
	if err != nil {
		return nil, err
	}

	unread := 0
	views := make([]*usecase.NotificationView, 0, len(visible))
	for _, notification := range visible {
		read := notification.IsReadBy(uid)
		if !read {
			unread++
		}
		views = append(views, &usecase.NotificationView{Notification: notification, Read: read})
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	return &usecase.NotificationPage{
		Notifications: util.Paginate(views, page, limit),
		Total:         len(views),
		UnreadCount:   unread,
		Page:          page,
		TotalPages:    util.TotalPages(len(views), limit),
	}, nil
}

// Get retrieves one notification the caller may see.
func (s *notificationService) Get(ctx context.Context, uid, id string) (*usecase.NotificationView, error) {
	notification, err := s.visibleNotification(ctx, uid, id)
	if err != nil {
		return nil, err
	}

	return &usecase.NotificationView{
		Notification: notification,
		Read:         notification.IsReadBy(uid),
	}, nil
}

// MarkRead adds the caller to the notification's read set.
func (s *notificationService) MarkRead(ctx context.Context, uid, id string) error {
	notification, err := s.visibleNotification(ctx, uid, id)
	if err != nil {
		return err
	}
	if notification.IsReadBy(uid) {
		return nil
	}

	return s.notificationRepo.Update(ctx, id, map[string]any{
		"read_by": append(notification.ReadBy, uid),
		"read_at": time.Now(),
	})
}

// MarkAllRead adds the caller to the read set of every visible unread
// notification.
func (s *notificationService) MarkAllRead(ctx context.Context, uid string) (int, error) {
	visible, err := s.visibleTo(ctx, uid)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	updated := 0
	for _, notification := range visible {
		if notification.IsReadBy(uid) {
			continue
		}

		if err := s.notificationRepo.Update(ctx, notification.ID, map[string]any{
			"read_by": append(notification.ReadBy, uid),
			"read_at": now,
		}); err != nil {
			return updated, err
		}
		updated++
	}

	return updated, nil
}

// Delete removes a notification targeted at the caller. Broadcasts cannot be
// deleted by users.
func (s *notificationService) Delete(ctx context.Context, uid, id string) error {
	notification, err := s.visibleNotification(ctx, uid, id)
	if err != nil {
		return err
	}
	if notification.Audience.IsBroadcast() {
		return domainerrors.ErrForbidden.WithDetails("broadcast notifications cannot be deleted")
	}

	return s.notificationRepo.Delete(ctx, id)
}

// UnreadCount counts the caller's visible unread notifications.
func (s *notificationService) UnreadCount(ctx context.Context, uid string) (int, error) {
	visible, err := s.visibleTo(ctx, uid)
	if err != nil {
		return 0, err
	}

	unread := 0
	for _, notification := range visible {
		if !notification.IsReadBy(uid) {
			unread++
		}
	}

	return unread, nil
}

// Notify creates a notification for the given audience.
func (s *notificationService) Notify(ctx context.Context, audience entity.Audience, title, message, notificationType string) (*entity.Notification, error) {
	notification := &entity.Notification{
		Title:     title,
		Message:   message,
		Type:      notificationType,
		Audience:  audience,
		CreatedAt: time.Now(),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	return notification, nil
}

func (s *notificationService) visibleTo(ctx context.Context, uid string) ([]*entity.Notification, error) {
	all, err := s.notificationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := all[:0:0]
	for _, notification := range all {
		if notification.Audience.Includes(uid) {
			visible = append(visible, notification)
		}
	}

	return visible, nil
}

func (s *notificationService) visibleNotification(ctx context.Context, uid, id string) (*entity.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, err
	}
	if !notification.Audience.Includes(uid) {
		return nil, domainerrors.ErrForbidden
	}

	return notification, nil
}
