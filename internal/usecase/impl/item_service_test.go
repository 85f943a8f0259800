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
	mockUC "sharecare/internal/mocks/usecase"
	"sharecare/internal/usecase"
)

// itemServiceFixtures holds all test dependencies for item service tests.
type itemServiceFixtures struct {
	service         usecase.ItemUsecase
	itemRepo        *mockRepo.MockItemRepository
	userRepo        *mockRepo.MockUserRepository
	reservationRepo *mockRepo.MockReservationRepository
	engagementRepo  *mockRepo.MockEngagementRepository
	chats           *mockUC.MockChatUsecase
	notifications   *mockUC.MockNotificationUsecase
	blobService     *mockSvc.MockBlobService
	mailService     *mockSvc.MockMailService
}

func createTestItemService(t *testing.T) itemServiceFixtures {
	itemRepo := mockRepo.NewMockItemRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	reservationRepo := mockRepo.NewMockReservationRepository(t)
	engagementRepo := mockRepo.NewMockEngagementRepository(t)
	chats := mockUC.NewMockChatUsecase(t)
	notifications := mockUC.NewMockNotificationUsecase(t)
	blobService := mockSvc.NewMockBlobService(t)
	mailService := mockSvc.NewMockMailService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewItemService(ItemServiceParams{
		ItemRepo:        itemRepo,
		UserRepo:        userRepo,
		ReservationRepo: reservationRepo,
		EngagementRepo:  engagementRepo,
		Chats:           chats,
		Notifications:   notifications,
		BlobService:     blobService,
		MailService:     mailService,
		Logger:          logger,
	})

	return itemServiceFixtures{
		service:         service,
		itemRepo:        itemRepo,
		userRepo:        userRepo,
		reservationRepo: reservationRepo,
		engagementRepo:  engagementRepo,
		chats:           chats,
		notifications:   notifications,
		blobService:     blobService,
		mailService:     mailService,
	}
}

func TestItemService_List_WithCounters(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	items := []*entity.Item{
		{ID: "item-1", Name: "Bread", CreatedAt: time.Now().Add(-time.Hour)},
		{ID: "item-2", Name: "Winter coat", CreatedAt: time.Now()},
	}

	fx.itemRepo.EXPECT().List(ctx, repository.ItemFilter{}).Return(items, nil)
	fx.chats.EXPECT().UnreadCount(ctx, "user-1").Return(3, nil)
	fx.notifications.EXPECT().UnreadCount(ctx, "user-1").Return(2, nil)
	fx.reservationRepo.EXPECT().
		List(ctx, repository.ReservationFilter{DonorID: "user-1", Status: entity.ReservationStatusPending}).
		Return([]*entity.Reservation{{ID: "res-1"}}, nil)

	result, err := fx.service.List(ctx, "user-1", &usecase.ItemListQuery{})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Page)
	require.NotNil(t, result.Counters)
	assert.Equal(t, 3, result.Counters.UnreadMessages)
	assert.Equal(t, 2, result.Counters.UnreadNotifications)
	assert.Equal(t, 1, result.Counters.PendingRequests)
	// Default ordering is newest first.
	assert.Equal(t, "item-2", result.Items[0].ID)
}

func TestItemService_List_CountersDegradeToZero(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().List(ctx, repository.ItemFilter{}).Return(nil, nil)
	fx.chats.EXPECT().UnreadCount(ctx, "user-1").Return(0, assert.AnError)
	fx.notifications.EXPECT().UnreadCount(ctx, "user-1").Return(5, nil)
	fx.reservationRepo.EXPECT().
		List(ctx, repository.ReservationFilter{DonorID: "user-1", Status: entity.ReservationStatusPending}).
		Return(nil, assert.AnError)

	result, err := fx.service.List(ctx, "user-1", &usecase.ItemListQuery{})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Counters.UnreadMessages)
	assert.Equal(t, 5, result.Counters.UnreadNotifications)
	assert.Equal(t, 0, result.Counters.PendingRequests)
}

func TestItemService_List_SearchFilter(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	items := []*entity.Item{
		{ID: "item-1", Name: "Sourdough Bread"},
		{ID: "item-2", Name: "Coat", Description: "warm bread-colored coat"},
		{ID: "item-3", Name: "Table"},
	}

	fx.itemRepo.EXPECT().List(ctx, repository.ItemFilter{}).Return(items, nil)

	result, err := fx.service.List(ctx, "", &usecase.ItemListQuery{Search: "bread"})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Nil(t, result.Counters)
}

func TestItemService_Create_Success(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	donor := &entity.User{
		UID:         "donor-1",
		Email:       "donor@example.com",
		FullName:    "Donor One",
		AccountType: entity.AccountTypeBusiness,
	}

	fx.userRepo.EXPECT().FindByUID(ctx, "donor-1").Return(donor, nil)
	fx.itemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Item")).
		Run(func(ctx context.Context, item *entity.Item) {
			item.ID = "item-1"
		}).
		Return(nil)
	fx.mailService.EXPECT().
		SendDonationConfirmation(ctx, "donor@example.com", "Donor One", "Sourdough bread").
		Return(nil)

	item, err := fx.service.Create(ctx, "donor-1", &usecase.CreateItemInput{
		Name:     "Sourdough bread",
		Category: "food",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ItemStatusAvailable, item.Status)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, "donor-1", item.Donor.ID)
	assert.Equal(t, "business", item.Donor.Type)
}

func TestItemService_Get_BumpsViews(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1", Views: 4}, nil)
	fx.itemRepo.EXPECT().
		Update(ctx, "item-1", map[string]interface{}{"views": 5}).
		Return(nil)

	item, err := fx.service.Get(ctx, "item-1")

	require.NoError(t, err)
	assert.Equal(t, 5, item.Views)
}

func TestItemService_Update_NotOwner(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1", DonorID: "donor-1"}, nil)

	_, err := fx.service.Update(ctx, "stranger", "item-1", &usecase.UpdateItemInput{})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestItemService_Delete_Cascade(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1", DonorID: "donor-1"}, nil)
	fx.reservationRepo.EXPECT().
		List(ctx, repository.ReservationFilter{ItemID: "item-1"}).
		Return([]*entity.Reservation{{ID: "res-1"}, {ID: "res-2"}}, nil)
	fx.reservationRepo.EXPECT().Delete(ctx, "res-1").Return(nil)
	fx.reservationRepo.EXPECT().Delete(ctx, "res-2").Return(nil)
	fx.engagementRepo.EXPECT().DeleteLikesByItem(ctx, "item-1").Return(nil)
	fx.itemRepo.EXPECT().Delete(ctx, "item-1").Return(nil)

	err := fx.service.Delete(ctx, "donor-1", "item-1")

	require.NoError(t, err)
}

func TestItemService_AddImages_InvalidType(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1", DonorID: "donor-1"}, nil)

	_, err := fx.service.AddImages(ctx, "donor-1", "item-1", []usecase.ImageUpload{
		{Filename: "notes.pdf", ContentType: "application/pdf", Data: []byte("%PDF")},
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidFileType)
}

func TestItemService_AddImages_Success(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	item := &entity.Item{ID: "item-1", DonorID: "donor-1", Images: []string{"existing.jpg"}}
	payload := []byte{0xFF, 0xD8}

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(item, nil)
	fx.blobService.EXPECT().
		Put(ctx, payload, "photo.jpg", "image/jpeg").
		Return("https://cdn.example.com/photo.jpg", nil)
	fx.itemRepo.EXPECT().
		Update(ctx, "item-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id string, updates map[string]interface{}) {
			assert.Equal(t, []string{"existing.jpg", "https://cdn.example.com/photo.jpg"}, updates["images"])
		}).
		Return(nil)

	updated, err := fx.service.AddImages(ctx, "donor-1", "item-1", []usecase.ImageUpload{
		{Filename: "photo.jpg", ContentType: "image/jpeg", Data: payload},
	})

	require.NoError(t, err)
	assert.Len(t, updated.Images, 2)
}

func TestItemService_Search_Radius(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	// Roughly 1 km and 200 km away from the origin respectively.
	near := &entity.Item{ID: "near", Name: "Bread", Location: entity.Location{Lat: 51.509, Lng: -0.118}}
	far := &entity.Item{ID: "far", Name: "Bread", Location: entity.Location{Lat: 53.3, Lng: -2.2}}

	fx.itemRepo.EXPECT().
		List(ctx, repository.ItemFilter{Status: entity.ItemStatusAvailable}).
		Return([]*entity.Item{near, far}, nil)

	items, err := fx.service.Search(ctx, &usecase.ItemSearchQuery{Lat: 51.5, Lng: -0.12})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "near", items[0].ID)
}

func TestItemService_Like_Success(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1", Likes: 2}, nil)
	fx.engagementRepo.EXPECT().HasLike(ctx, "item-1", "user-1").Return(false, nil)
	fx.engagementRepo.EXPECT().CreateLike(ctx, mock.AnythingOfType("*entity.Like")).Return(nil)
	fx.itemRepo.EXPECT().
		Update(ctx, "item-1", map[string]interface{}{"likes": 3}).
		Return(nil)

	item, err := fx.service.Like(ctx, "user-1", "item-1")

	require.NoError(t, err)
	assert.Equal(t, 3, item.Likes)
}

func TestItemService_Like_Duplicate(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1"}, nil)
	fx.engagementRepo.EXPECT().HasLike(ctx, "item-1", "user-1").Return(true, nil)

	_, err := fx.service.Like(ctx, "user-1", "item-1")

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyLiked)
}

func TestItemService_Unlike_NotLiked(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1"}, nil)
	fx.engagementRepo.EXPECT().DeleteLike(ctx, "item-1", "user-1").Return(false, nil)

	_, err := fx.service.Unlike(ctx, "user-1", "item-1")

	assert.ErrorIs(t, err, domainerrors.ErrNotLiked)
}

func TestItemService_Favorite_Duplicate(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1"}, nil)
	fx.engagementRepo.EXPECT().HasFavorite(ctx, "item-1", "user-1").Return(true, nil)

	err := fx.service.Favorite(ctx, "user-1", "item-1")

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyFavorited)
}

func TestItemService_ListFavorites_SkipsDeletedItems(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.engagementRepo.EXPECT().
		ListFavoritesByUser(ctx, "user-1").
		Return([]*entity.Favorite{
			{ItemID: "item-1"},
			{ItemID: "item-gone"},
		}, nil)
	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1"}, nil)
	fx.itemRepo.EXPECT().FindByID(ctx, "item-gone").Return(nil, repository.ErrItemNotFound)

	items, err := fx.service.ListFavorites(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "item-1", items[0].ID)
}

func TestItemService_Report_Success(t *testing.T) {
	fx := createTestItemService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1"}, nil)
	fx.engagementRepo.EXPECT().
		CreateReport(ctx, mock.AnythingOfType("*entity.Report")).
		Run(func(ctx context.Context, report *entity.Report) {
			report.ID = "report-1"
		}).
		Return(nil)

	report, err := fx.service.Report(ctx, "user-1", "item-1", &usecase.ReportItemInput{Reason: "expired food"})

	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusPending, report.Status)
	assert.Equal(t, "user-1", report.ReporterID)
}
