package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/domain/repository"
	mockRepo "sharecare/internal/mocks/repository"
	mockSvc "sharecare/internal/mocks/service"
	"sharecare/internal/usecase"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service           usecase.AdminUsecase
	userRepo          *mockRepo.MockUserRepository
	itemRepo          *mockRepo.MockItemRepository
	reservationRepo   *mockRepo.MockReservationRepository
	engagementRepo    *mockRepo.MockEngagementRepository
	notificationRepo  *mockRepo.MockNotificationRepository
	adminNotification *mockRepo.MockAdminNotificationRepository
	mailService       *mockSvc.MockMailService
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	reservationRepo := mockRepo.NewMockReservationRepository(t)
	engagementRepo := mockRepo.NewMockEngagementRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	adminNotification := mockRepo.NewMockAdminNotificationRepository(t)
	mailService := mockSvc.NewMockMailService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAdminService(AdminServiceParams{
		UserRepo:          userRepo,
		ItemRepo:          itemRepo,
		ReservationRepo:   reservationRepo,
		EngagementRepo:    engagementRepo,
		NotificationRepo:  notificationRepo,
		AdminNotification: adminNotification,
		MailService:       mailService,
		Logger:            logger,
	})

	return adminServiceFixtures{
		service:           service,
		userRepo:          userRepo,
		itemRepo:          itemRepo,
		reservationRepo:   reservationRepo,
		engagementRepo:    engagementRepo,
		notificationRepo:  notificationRepo,
		adminNotification: adminNotification,
		mailService:       mailService,
	}
}

func TestAdminService_ListUsers_ActiveFilter(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindAll(ctx).Return([]*entity.User{
		{UID: "user-1", IsActive: true},
		{UID: "user-2", IsActive: false},
		{UID: "user-3", IsActive: true},
	}, nil)

	page, err := fx.service.ListUsers(ctx, &usecase.AdminUserQuery{Active: "false"})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "user-2", page.Users[0].UID)
}

func TestAdminService_ListUsers_Search(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindAll(ctx).Return([]*entity.User{
		{UID: "user-1", FullName: "Alice Baker", Email: "alice@example.com"},
		{UID: "user-2", FullName: "Bob", Email: "bob@baker.example.com"},
		{UID: "user-3", FullName: "Carol", Email: "carol@example.com"},
	}, nil)

	page, err := fx.service.ListUsers(ctx, &usecase.AdminUserQuery{Search: "baker"})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestAdminService_SetUserStatus_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		Update(ctx, "user-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, uid string, updates map[string]interface{}) {
			assert.Equal(t, false, updates["is_active"])
		}).
		Return(nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(&entity.User{UID: "user-1", IsActive: false}, nil)

	user, err := fx.service.SetUserStatus(ctx, "user-1", false)

	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestAdminService_DeleteUser_Cascade(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	user := &entity.User{UID: "user-1", Email: "user@example.com", FullName: "User One"}

	fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(user, nil)
	fx.itemRepo.EXPECT().
		List(ctx, repository.ItemFilter{DonorID: "user-1"}).
		Return([]*entity.Item{{ID: "item-1"}}, nil)
	fx.reservationRepo.EXPECT().
		List(ctx, repository.ReservationFilter{ItemID: "item-1"}).
		Return([]*entity.Reservation{{ID: "res-1"}}, nil)
	fx.reservationRepo.EXPECT().Delete(ctx, "res-1").Return(nil)
	fx.engagementRepo.EXPECT().DeleteLikesByItem(ctx, "item-1").Return(nil)
	fx.itemRepo.EXPECT().Delete(ctx, "item-1").Return(nil)
	fx.reservationRepo.EXPECT().
		List(ctx, repository.ReservationFilter{RequesterID: "user-1"}).
		Return([]*entity.Reservation{{ID: "res-2"}}, nil)
	fx.reservationRepo.EXPECT().Delete(ctx, "res-2").Return(nil)
	fx.engagementRepo.EXPECT().DeleteLikesByUser(ctx, "user-1").Return(nil)
	fx.userRepo.EXPECT().Delete(ctx, "user-1").Return(nil)
	fx.mailService.EXPECT().
		SendAccountDeletion(ctx, "user@example.com", "User One").
		Return(nil)

	err := fx.service.DeleteUser(ctx, "user-1")

	require.NoError(t, err)
}

func TestAdminService_VerifyItem_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1"}, nil).Once()
	fx.itemRepo.EXPECT().
		Update(ctx, "item-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id string, updates map[string]interface{}) {
			assert.Equal(t, true, updates["is_verified"])
		}).
		Return(nil)
	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1", IsVerified: true}, nil).Once()

	item, err := fx.service.VerifyItem(ctx, "item-1", true)

	require.NoError(t, err)
	assert.True(t, item.IsVerified)
}

func TestAdminService_BulkDeleteItems_SkipsUnknown(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1"}, nil)
	fx.reservationRepo.EXPECT().
		List(ctx, repository.ReservationFilter{ItemID: "item-1"}).
		Return(nil, nil)
	fx.engagementRepo.EXPECT().DeleteLikesByItem(ctx, "item-1").Return(nil)
	fx.itemRepo.EXPECT().Delete(ctx, "item-1").Return(nil)
	fx.itemRepo.EXPECT().FindByID(ctx, "item-gone").Return(nil, repository.ErrItemNotFound)

	deleted, err := fx.service.BulkDeleteItems(ctx, &usecase.BulkDeleteInput{
		ItemIDs: []string{"item-1", "item-gone"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestAdminService_Statistics_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	thisMonth := time.Now()

	fx.userRepo.EXPECT().FindAll(ctx).Return([]*entity.User{
		{UID: "user-1", IsActive: true, AccountType: entity.AccountTypeIndividual},
		{UID: "user-2", IsActive: false, AccountType: entity.AccountTypeIndividual},
		{UID: "user-3", IsActive: true, AccountType: entity.AccountTypeBusiness},
	}, nil)
	fx.itemRepo.EXPECT().List(ctx, repository.ItemFilter{}).Return([]*entity.Item{
		{ID: "item-1", Status: entity.ItemStatusAvailable, Category: "food", DonorID: "user-1", DonorName: "User One", CreatedAt: thisMonth},
		{ID: "item-2", Status: entity.ItemStatusDonated, Category: "food", DonorID: "user-1", DonorName: "User One", CreatedAt: thisMonth},
		{ID: "item-3", Status: entity.ItemStatusAvailable, Category: "clothes", DonorID: "user-3", DonorName: "User Three", CreatedAt: thisMonth},
	}, nil)
	fx.reservationRepo.EXPECT().
		List(ctx, repository.ReservationFilter{}).
		Return([]*entity.Reservation{{ID: "res-1"}}, nil)

	stats, err := fx.service.Statistics(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 2, stats.ActiveUsers)
	assert.Equal(t, 2, stats.UsersByType["individual"])
	assert.Equal(t, 1, stats.UsersByType["business"])
	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 2, stats.ItemsByStatus["available"])
	assert.Equal(t, 2, stats.ItemsByCategory["food"])
	assert.Equal(t, 1, stats.TotalReservation)

	require.Len(t, stats.ItemsPerMonth, 6)
	assert.Equal(t, thisMonth.Format("2006-01"), stats.ItemsPerMonth[5].Month)
	assert.Equal(t, 3, stats.ItemsPerMonth[5].Count)

	require.Len(t, stats.TopDonors, 2)
	assert.Equal(t, "user-1", stats.TopDonors[0].UID)
	assert.Equal(t, 2, stats.TopDonors[0].Donations)
	assert.Equal(t, "User One", stats.TopDonors[0].Name)
}

func TestAdminService_SendNotification_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(ctx context.Context, notification *entity.Notification) {
			notification.ID = "n-1"
		}).
		Return(nil)
	fx.adminNotification.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AdminNotification")).
		Run(func(ctx context.Context, record *entity.AdminNotification) {
			record.ID = "audit-1"
		}).
		Return(nil)

	record, err := fx.service.SendNotification(ctx, "admin@sharecare.app", &usecase.SendNotificationInput{
		Title:   "Food drive",
		Message: "Saturday at the community center",
	})

	require.NoError(t, err)
	assert.Equal(t, "n-1", record.NotificationID)
	assert.Equal(t, "announcement", record.Type)
	assert.Equal(t, "admin@sharecare.app", record.SentBy)
	assert.True(t, record.Audience.IsBroadcast())
}

func TestAdminService_ResendNotification_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	record := &entity.AdminNotification{
		ID:             "audit-1",
		NotificationID: "n-old",
		Title:          "Food drive",
		Message:        "Saturday",
		Type:           "announcement",
		Audience:       entity.Broadcast(),
		ResendCount:    1,
	}

	fx.adminNotification.EXPECT().FindByID(ctx, "audit-1").Return(record, nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(ctx context.Context, notification *entity.Notification) {
			notification.ID = "n-new"
		}).
		Return(nil)
	fx.adminNotification.EXPECT().
		Update(ctx, "audit-1", map[string]interface{}{
			"notification_id": "n-new",
			"resend_count":    2,
		}).
		Return(nil)

	updated, err := fx.service.ResendNotification(ctx, "audit-1")

	require.NoError(t, err)
	assert.Equal(t, "n-new", updated.NotificationID)
	assert.Equal(t, 2, updated.ResendCount)
}

func TestAdminService_DeleteNotification_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	record := &entity.AdminNotification{ID: "audit-1", NotificationID: "n-1"}

	fx.adminNotification.EXPECT().FindByID(ctx, "audit-1").Return(record, nil)
	fx.notificationRepo.EXPECT().Delete(ctx, "n-1").Return(nil)
	fx.adminNotification.EXPECT().Delete(ctx, "audit-1").Return(nil)

	err := fx.service.DeleteNotification(ctx, "audit-1")

	require.NoError(t, err)
}

func TestAdminService_ResolveReport_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	report := &entity.Report{ID: "report-1", Status: entity.ReportStatusPending}

	fx.engagementRepo.EXPECT().FindReportByID(ctx, "report-1").Return(report, nil)
	fx.engagementRepo.EXPECT().
		UpdateReport(ctx, "report-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id string, updates map[string]interface{}) {
			assert.Equal(t, "resolved", updates["status"])
		}).
		Return(nil)

	resolved, err := fx.service.ResolveReport(ctx, "report-1")

	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusResolved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
}

func TestAdminService_ResolveReport_NotFound(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.engagementRepo.EXPECT().
		FindReportByID(ctx, "missing").
		Return(nil, repository.ErrReportNotFound)

	_, err := fx.service.ResolveReport(ctx, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrReportNotFound)
}

func TestAdminService_UserItems_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	user := &entity.User{UID: "user-1", FullName: "User One"}
	fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(user, nil)
	fx.itemRepo.EXPECT().
		List(ctx, repository.ItemFilter{DonorID: "user-1"}).
		Return([]*entity.Item{
			{ID: "item-1", DonorID: "user-1"},
			{ID: "item-2", DonorID: "user-1"},
		}, nil)
	fx.reservationRepo.EXPECT().
		List(ctx, repository.ReservationFilter{RequesterID: "user-1"}).
		Return([]*entity.Reservation{
			{ID: "res-1", UserID: "user-1"},
		}, nil)

	activity, err := fx.service.UserItems(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, user, activity.User)
	assert.Equal(t, 2, activity.TotalDonated)
	assert.Equal(t, 1, activity.TotalReserved)
	assert.Len(t, activity.DonatedItems, 2)
	assert.Len(t, activity.ReservedItems, 1)
}

func TestAdminService_UserItems_UserNotFound(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUID(ctx, "missing").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.UserItems(ctx, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAdminService_DemandAreas_GroupsAndRanks(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	cluster := entity.Location{Lat: 51.5001, Lng: -0.1201, Address: "Covent Garden"}
	reservations := []*entity.Reservation{
		{ID: "res-1", Location: cluster},
		{ID: "res-2", Location: entity.Location{Lat: 51.5003, Lng: -0.1199}},
		{ID: "res-3", Location: cluster},
		{ID: "res-4", Location: cluster},
		{ID: "res-5", Location: entity.Location{Lat: 51.5002, Lng: -0.1202}},
		{ID: "res-6", Location: entity.Location{Lat: 53.3, Lng: -2.2, Address: "Elsewhere"}},
		{ID: "res-7", Location: entity.Location{}}, // No location recorded.
	}
	fx.reservationRepo.EXPECT().
		List(ctx, repository.ReservationFilter{}).
		Return(reservations, nil)

	areas, err := fx.service.DemandAreas(ctx)

	require.NoError(t, err)
	require.Len(t, areas, 2)

	assert.Equal(t, 5, areas[0].Count)
	assert.Equal(t, "medium", areas[0].Level)
	assert.Equal(t, "orange", areas[0].Color)
	assert.Equal(t, "Covent Garden", areas[0].Location.Address)
	assert.InDelta(t, 51.5, areas[0].Location.Lat, 0.0005)

	assert.Equal(t, 1, areas[1].Count)
	assert.Equal(t, "low", areas[1].Level)
	assert.Equal(t, "yellow", areas[1].Color)
}

func TestAdminService_GetNotification_DeliveryStats(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	record := &entity.AdminNotification{
		ID:             "an-1",
		NotificationID: "n-1",
		Title:          "Maintenance window",
		Audience:       entity.TargetedTo("user-1", "user-2"),
	}
	fx.adminNotification.EXPECT().FindByID(ctx, "an-1").Return(record, nil)
	fx.notificationRepo.EXPECT().
		FindByID(ctx, "n-1").
		Return(&entity.Notification{ID: "n-1", ReadBy: []string{"user-1"}}, nil)

	detail, err := fx.service.GetNotification(ctx, "an-1")

	require.NoError(t, err)
	assert.Equal(t, "Maintenance window", detail.Title)
	assert.Equal(t, 2, detail.DeliveryStats.Recipients)
	assert.Equal(t, 1, detail.DeliveryStats.Read)
}

func TestAdminService_GetNotification_CopyDeleted(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	record := &entity.AdminNotification{
		ID:             "an-1",
		NotificationID: "n-gone",
		Audience:       entity.Broadcast(),
	}
	fx.adminNotification.EXPECT().FindByID(ctx, "an-1").Return(record, nil)
	fx.notificationRepo.EXPECT().
		FindByID(ctx, "n-gone").
		Return(nil, repository.ErrNotificationNotFound)

	detail, err := fx.service.GetNotification(ctx, "an-1")

	require.NoError(t, err)
	assert.Equal(t, 0, detail.DeliveryStats.Recipients)
	assert.Equal(t, 0, detail.DeliveryStats.Read)
}
