package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	mockRepo "sharecare/internal/mocks/repository"
	"sharecare/internal/usecase"
)

// notificationServiceFixtures holds all test dependencies for notification
// service tests.
type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	service := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
	})

	return notificationServiceFixtures{
		service:          service,
		notificationRepo: notificationRepo,
	}
}

func TestNotificationService_List_Visibility(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	broadcast := &entity.Notification{ID: "n-1", Title: "Maintenance", Audience: entity.Broadcast()}
	targeted := &entity.Notification{ID: "n-2", Title: "For you", Audience: entity.TargetedTo("user-1"), ReadBy: []string{"user-1"}}
	other := &entity.Notification{ID: "n-3", Title: "Not for you", Audience: entity.TargetedTo("user-2")}

	fx.notificationRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Notification{broadcast, targeted, other}, nil)

	page, err := fx.service.List(ctx, "user-1", 1, 20)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.UnreadCount)

	ids := []string{page.Notifications[0].Notification.ID, page.Notifications[1].Notification.ID}
	assert.ElementsMatch(t, []string{"n-1", "n-2"}, ids)
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	notification := &entity.Notification{
		ID:       "n-1",
		Audience: entity.Broadcast(),
		ReadBy:   []string{"someone-else"},
	}

	fx.notificationRepo.EXPECT().FindByID(ctx, "n-1").Return(notification, nil)
	fx.notificationRepo.EXPECT().
		Update(ctx, "n-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id string, updates map[string]interface{}) {
			assert.Equal(t, []string{"someone-else", "user-1"}, updates["read_by"])
		}).
		Return(nil)

	err := fx.service.MarkRead(ctx, "user-1", "n-1")

	require.NoError(t, err)
}

func TestNotificationService_MarkRead_AlreadyRead(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	notification := &entity.Notification{
		ID:       "n-1",
		Audience: entity.Broadcast(),
		ReadBy:   []string{"user-1"},
	}

	fx.notificationRepo.EXPECT().FindByID(ctx, "n-1").Return(notification, nil)

	err := fx.service.MarkRead(ctx, "user-1", "n-1")

	require.NoError(t, err)
}

func TestNotificationService_MarkAllRead_CountsUpdates(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().FindAll(ctx).Return([]*entity.Notification{
		{ID: "n-1", Audience: entity.Broadcast()},
		{ID: "n-2", Audience: entity.TargetedTo("user-1"), ReadBy: []string{"user-1"}},
		{ID: "n-3", Audience: entity.TargetedTo("user-1")},
	}, nil)
	fx.notificationRepo.EXPECT().
		Update(ctx, "n-1", mock.AnythingOfType("map[string]interface {}")).
		Return(nil)
	fx.notificationRepo.EXPECT().
		Update(ctx, "n-3", mock.AnythingOfType("map[string]interface {}")).
		Return(nil)

	updated, err := fx.service.MarkAllRead(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 2, updated)
}

func TestNotificationService_Get_NotVisible(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	notification := &entity.Notification{ID: "n-1", Audience: entity.TargetedTo("user-2")}

	fx.notificationRepo.EXPECT().FindByID(ctx, "n-1").Return(notification, nil)

	_, err := fx.service.Get(ctx, "user-1", "n-1")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestNotificationService_Delete_BroadcastForbidden(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	notification := &entity.Notification{ID: "n-1", Audience: entity.Broadcast()}

	fx.notificationRepo.EXPECT().FindByID(ctx, "n-1").Return(notification, nil)

	err := fx.service.Delete(ctx, "user-1", "n-1")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "broadcast")
}

func TestNotificationService_Delete_Targeted(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	notification := &entity.Notification{ID: "n-1", Audience: entity.TargetedTo("user-1")}

	fx.notificationRepo.EXPECT().FindByID(ctx, "n-1").Return(notification, nil)
	fx.notificationRepo.EXPECT().Delete(ctx, "n-1").Return(nil)

	err := fx.service.Delete(ctx, "user-1", "n-1")

	require.NoError(t, err)
}

func TestNotificationService_UnreadCount_Success(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().FindAll(ctx).Return([]*entity.Notification{
		{ID: "n-1", Audience: entity.Broadcast()},
		{ID: "n-2", Audience: entity.TargetedTo("user-1"), ReadBy: []string{"user-1"}},
		{ID: "n-3", Audience: entity.TargetedTo("user-2")},
	}, nil)

	count, err := fx.service.UnreadCount(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNotificationService_Notify_Success(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(ctx context.Context, notification *entity.Notification) {
			notification.ID = "n-1"
		}).
		Return(nil)

	notification, err := fx.service.Notify(ctx, entity.TargetedTo("user-1"), "Title", "Message", "reservation_request")

	require.NoError(t, err)
	assert.Equal(t, "n-1", notification.ID)
	assert.False(t, notification.Audience.IsBroadcast())
	assert.True(t, notification.Audience.Includes("user-1"))
	assert.False(t, notification.CreatedAt.IsZero())
}
