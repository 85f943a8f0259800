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

// reservationServiceFixtures holds all test dependencies for reservation
// service tests.
type reservationServiceFixtures struct {
	service         usecase.ReservationUsecase
	reservationRepo *mockRepo.MockReservationRepository
	itemRepo        *mockRepo.MockItemRepository
	userRepo        *mockRepo.MockUserRepository
	trackingRepo    *mockRepo.MockTrackingRepository
	chatRepo        *mockRepo.MockChatRepository
	notifications   *mockUC.MockNotificationUsecase
	mailService     *mockSvc.MockMailService
}

func createTestReservationService(t *testing.T) reservationServiceFixtures {
	reservationRepo := mockRepo.NewMockReservationRepository(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	trackingRepo := mockRepo.NewMockTrackingRepository(t)
	chatRepo := mockRepo.NewMockChatRepository(t)
	notifications := mockUC.NewMockNotificationUsecase(t)
	mailService := mockSvc.NewMockMailService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewReservationService(ReservationServiceParams{
		ReservationRepo: reservationRepo,
		ItemRepo:        itemRepo,
		UserRepo:        userRepo,
		TrackingRepo:    trackingRepo,
		ChatRepo:        chatRepo,
		Notifications:   notifications,
		MailService:     mailService,
		Logger:          logger,
	})

	return reservationServiceFixtures{
		service:         service,
		reservationRepo: reservationRepo,
		itemRepo:        itemRepo,
		userRepo:        userRepo,
		trackingRepo:    trackingRepo,
		chatRepo:        chatRepo,
		notifications:   notifications,
		mailService:     mailService,
	}
}

func availableItem() *entity.Item {
	return &entity.Item{
		ID:          "item-1",
		Name:        "Sourdough bread",
		Category:    "food",
		DonorID:     "donor-1",
		DonorName:   "Donor One",
		Status:      entity.ItemStatusAvailable,
		Quantity:    1,
		PickupTimes: "weekdays after 6pm",
	}
}

func pendingReservation() *entity.Reservation {
	return &entity.Reservation{
		ID:                "res-1",
		ItemID:            "item-1",
		ItemName:          "Sourdough bread",
		UserID:            "user-1",
		UserName:          "User One",
		DonorID:           "donor-1",
		RequestedQuantity: 1,
		Status:            entity.ReservationStatusPending,
		CreatedAt:         time.Now().Add(-time.Hour),
	}
}

func TestReservationService_Reserve_Success(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	item := availableItem()
	requester := &entity.User{UID: "user-1", Email: "user@example.com", FullName: "User One"}
	donor := &entity.User{UID: "donor-1", Email: "donor@example.com", FullName: "Donor One"}

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(item, nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(requester, nil)
	fx.reservationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Reservation")).
		Run(func(ctx context.Context, reservation *entity.Reservation) {
			reservation.ID = "res-1"
		}).
		Return(nil)
	fx.notifications.EXPECT().
		Notify(ctx, entity.TargetedTo("donor-1"), "New reservation request", mock.AnythingOfType("string"), "reservation_request").
		Return(&entity.Notification{}, nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "donor-1").Return(donor, nil)
	fx.mailService.EXPECT().
		SendReservationRequest(ctx, "donor@example.com", "Donor One", "User One", "Sourdough bread").
		Return(nil)

	reservation, err := fx.service.Reserve(ctx, "user-1", &usecase.ReserveInput{ItemID: "item-1", Message: "May I?"})

	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusPending, reservation.Status)
	assert.Equal(t, 1, reservation.RequestedQuantity)
	assert.Equal(t, "Sourdough bread", reservation.Item.Name)
	assert.Equal(t, "weekdays after 6pm", reservation.Item.PickupTimes)
}

func TestReservationService_Reserve_ItemUnavailable(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	item := availableItem()
	item.Status = entity.ItemStatusReserved

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(item, nil)

	_, err := fx.service.Reserve(ctx, "user-1", &usecase.ReserveInput{ItemID: "item-1"})

	assert.ErrorIs(t, err, domainerrors.ErrItemUnavailable)
}

func TestReservationService_Reserve_OwnItem(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(availableItem(), nil)

	_, err := fx.service.Reserve(ctx, "donor-1", &usecase.ReserveInput{ItemID: "item-1"})

	assert.ErrorIs(t, err, domainerrors.ErrSelfReservation)
}

func TestReservationService_Decide_ApproveSingleItem(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	reservation := pendingReservation()
	item := availableItem()
	requester := &entity.User{UID: "user-1", Email: "user@example.com", FullName: "User One"}
	competitor := &entity.Reservation{
		ID:       "res-2",
		ItemID:   "item-1",
		ItemName: "Sourdough bread",
		UserID:   "user-2",
		DonorID:  "donor-1",
		Status:   entity.ReservationStatusPending,
	}

	fx.reservationRepo.EXPECT().FindByID(ctx, "res-1").Return(reservation, nil)
	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(item, nil)

	var seeded *entity.TrackingRecord
	fx.trackingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.TrackingRecord")).
		Run(func(ctx context.Context, record *entity.TrackingRecord) {
			seeded = record
		}).
		Return(nil)

	fx.reservationRepo.EXPECT().
		Update(ctx, "res-1", mock.AnythingOfType("map[string]interface {}")).
		Return(nil)

	var itemUpdates map[string]any
	fx.itemRepo.EXPECT().
		Update(ctx, "item-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id string, updates map[string]interface{}) {
			itemUpdates = updates
		}).
		Return(nil)

	fx.reservationRepo.EXPECT().
		List(ctx, repository.ReservationFilter{ItemID: "item-1", Status: entity.ReservationStatusPending}).
		Return([]*entity.Reservation{reservation, competitor}, nil)
	fx.reservationRepo.EXPECT().
		Update(ctx, "res-2", mock.AnythingOfType("map[string]interface {}")).
		Return(nil)
	fx.notifications.EXPECT().
		Notify(ctx, entity.TargetedTo("user-2"), "Request declined", mock.AnythingOfType("string"), "reservation_declined").
		Return(&entity.Notification{}, nil)

	fx.chatRepo.EXPECT().
		FindByParties(ctx, "item-1", "donor-1", "user-1").
		Return(nil, repository.ErrChatNotFound)
	fx.chatRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Chat")).Return(nil)

	fx.notifications.EXPECT().
		Notify(ctx, entity.TargetedTo("user-1"), "Request approved", mock.AnythingOfType("string"), "reservation_approved").
		Return(&entity.Notification{}, nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(requester, nil)
	fx.mailService.EXPECT().
		SendReservationConfirmation(ctx, "user@example.com", "User One", "Sourdough bread", mock.AnythingOfType("string")).
		Return(nil)

	approved, err := fx.service.Decide(ctx, "donor-1", "res-1", &usecase.ReservationDecision{Status: "approved"})

	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusApproved, approved.Status)
	assert.Regexp(t, `^SC\d{6}[A-Z0-9]{6}$`, approved.TrackingID)

	require.NotNil(t, seeded)
	require.Len(t, seeded.StatusHistory, 2)
	assert.Equal(t, entity.TrackingRequestSubmitted, seeded.StatusHistory[0].Status)
	assert.Equal(t, reservation.CreatedAt, seeded.StatusHistory[0].Timestamp)
	assert.Equal(t, entity.TrackingRequestAccepted, seeded.StatusHistory[1].Status)
	assert.Equal(t, seeded.StatusHistory[1].Status, seeded.CurrentStatus)

	assert.Equal(t, string(entity.ItemStatusReserved), itemUpdates["status"])
}

func TestReservationService_Decide_ApproveBulkKeepsCompetitors(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	reservation := pendingReservation()
	reservation.RequestedQuantity = 2
	item := availableItem()
	item.IsBulkItem = true
	item.Quantity = 5
	requester := &entity.User{UID: "user-1", Email: "user@example.com", FullName: "User One"}

	fx.reservationRepo.EXPECT().FindByID(ctx, "res-1").Return(reservation, nil)
	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(item, nil)
	fx.trackingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.TrackingRecord")).Return(nil)
	fx.reservationRepo.EXPECT().
		Update(ctx, "res-1", mock.AnythingOfType("map[string]interface {}")).
		Return(nil)

	var itemUpdates map[string]any
	fx.itemRepo.EXPECT().
		Update(ctx, "item-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id string, updates map[string]interface{}) {
			itemUpdates = updates
		}).
		Return(nil)

	fx.chatRepo.EXPECT().
		FindByParties(ctx, "item-1", "donor-1", "user-1").
		Return(&entity.Chat{ID: "chat-1"}, nil)
	fx.notifications.EXPECT().
		Notify(ctx, entity.TargetedTo("user-1"), "Request approved", mock.AnythingOfType("string"), "reservation_approved").
		Return(&entity.Notification{}, nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(requester, nil)
	fx.mailService.EXPECT().
		SendReservationConfirmation(ctx, "user@example.com", "User One", "Sourdough bread", mock.AnythingOfType("string")).
		Return(nil)

	approved, err := fx.service.Decide(ctx, "donor-1", "res-1", &usecase.ReservationDecision{Status: "approved"})

	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusApproved, approved.Status)
	assert.Equal(t, 3, itemUpdates["quantity"])
	assert.NotContains(t, itemUpdates, "status")
}

func TestReservationService_Decide_ApproveBulkExhaustedDeclinesRest(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	reservation := pendingReservation()
	reservation.RequestedQuantity = 2
	before := availableItem()
	before.IsBulkItem = true
	before.Quantity = 2
	after := availableItem()
	after.IsBulkItem = true
	after.Quantity = 0
	after.Status = entity.ItemStatusDonated
	requester := &entity.User{UID: "user-1", Email: "user@example.com", FullName: "User One"}
	competitor := &entity.Reservation{
		ID:       "res-2",
		ItemID:   "item-1",
		ItemName: "Sourdough bread",
		UserID:   "user-2",
		DonorID:  "donor-1",
		Status:   entity.ReservationStatusPending,
	}

	fx.reservationRepo.EXPECT().FindByID(ctx, "res-1").Return(reservation, nil)
	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(before, nil).Once()
	fx.trackingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.TrackingRecord")).Return(nil)
	fx.reservationRepo.EXPECT().
		Update(ctx, "res-1", mock.AnythingOfType("map[string]interface {}")).
		Return(nil)

	var itemUpdates map[string]any
	fx.itemRepo.EXPECT().
		Update(ctx, "item-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id string, updates map[string]interface{}) {
			itemUpdates = updates
		}).
		Return(nil)

	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(after, nil).Once()
	fx.reservationRepo.EXPECT().
		List(ctx, repository.ReservationFilter{ItemID: "item-1", Status: entity.ReservationStatusPending}).
		Return([]*entity.Reservation{competitor}, nil)
	fx.reservationRepo.EXPECT().
		Update(ctx, "res-2", mock.AnythingOfType("map[string]interface {}")).
		Return(nil)
	fx.notifications.EXPECT().
		Notify(ctx, entity.TargetedTo("user-2"), "Request declined", mock.AnythingOfType("string"), "reservation_declined").
		Return(&entity.Notification{}, nil)

	fx.chatRepo.EXPECT().
		FindByParties(ctx, "item-1", "donor-1", "user-1").
		Return(&entity.Chat{ID: "chat-1"}, nil)
	fx.notifications.EXPECT().
		Notify(ctx, entity.TargetedTo("user-1"), "Request approved", mock.AnythingOfType("string"), "reservation_approved").
		Return(&entity.Notification{}, nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(requester, nil)
	fx.mailService.EXPECT().
		SendReservationConfirmation(ctx, "user@example.com", "User One", "Sourdough bread", mock.AnythingOfType("string")).
		Return(nil)

	_, err := fx.service.Decide(ctx, "donor-1", "res-1", &usecase.ReservationDecision{Status: "approved"})

	require.NoError(t, err)
	assert.Equal(t, 0, itemUpdates["quantity"])
	assert.Equal(t, string(entity.ItemStatusDonated), itemUpdates["status"])
}

func TestReservationService_Decide_Decline(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	reservation := pendingReservation()

	fx.reservationRepo.EXPECT().FindByID(ctx, "res-1").Return(reservation, nil)
	fx.reservationRepo.EXPECT().
		Update(ctx, "res-1", mock.AnythingOfType("map[string]interface {}")).
		Return(nil)
	fx.notifications.EXPECT().
		Notify(ctx, entity.TargetedTo("user-1"), "Request declined", mock.AnythingOfType("string"), "reservation_declined").
		Return(&entity.Notification{}, nil)

	declined, err := fx.service.Decide(ctx, "donor-1", "res-1", &usecase.ReservationDecision{Status: "declined"})

	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusDeclined, declined.Status)
	assert.Empty(t, declined.TrackingID)
}

func TestReservationService_Decide_NotDonor(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	fx.reservationRepo.EXPECT().FindByID(ctx, "res-1").Return(pendingReservation(), nil)

	_, err := fx.service.Decide(ctx, "someone-else", "res-1", &usecase.ReservationDecision{Status: "approved"})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReservationService_Decide_AlreadyDecided(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	reservation := pendingReservation()
	reservation.Status = entity.ReservationStatusApproved

	fx.reservationRepo.EXPECT().FindByID(ctx, "res-1").Return(reservation, nil)

	_, err := fx.service.Decide(ctx, "donor-1", "res-1", &usecase.ReservationDecision{Status: "declined"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_RESERVATION_STATUS", appErr.ErrorCode())
}

func TestReservationService_Cancel_RestoresSingleItem(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	reservation := pendingReservation()
	reservation.Status = entity.ReservationStatusApproved
	item := availableItem()
	item.Status = entity.ItemStatusReserved

	fx.reservationRepo.EXPECT().FindByID(ctx, "res-1").Return(reservation, nil)
	fx.reservationRepo.EXPECT().
		Update(ctx, "res-1", mock.AnythingOfType("map[string]interface {}")).
		Return(nil)
	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(item, nil)

	var itemUpdates map[string]any
	fx.itemRepo.EXPECT().
		Update(ctx, "item-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id string, updates map[string]interface{}) {
			itemUpdates = updates
		}).
		Return(nil)
	fx.notifications.EXPECT().
		Notify(ctx, entity.TargetedTo("donor-1"), "Reservation cancelled", mock.AnythingOfType("string"), "reservation_cancelled").
		Return(&entity.Notification{}, nil)

	err := fx.service.Cancel(ctx, "user-1", "res-1")

	require.NoError(t, err)
	assert.Equal(t, string(entity.ItemStatusAvailable), itemUpdates["status"])
}

func TestReservationService_Cancel_NotRequester(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	fx.reservationRepo.EXPECT().FindByID(ctx, "res-1").Return(pendingReservation(), nil)

	err := fx.service.Cancel(ctx, "donor-1", "res-1")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReservationService_Pickup_Idempotent(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	collected := pendingReservation()
	collected.Status = entity.ReservationStatusPickedUp

	fx.reservationRepo.EXPECT().
		List(ctx, repository.ReservationFilter{ItemID: "item-1", RequesterID: "user-1"}).
		Return([]*entity.Reservation{collected}, nil)

	reservation, err := fx.service.Pickup(ctx, "user-1", "item-1")

	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusPickedUp, reservation.Status)
}

func TestReservationService_Pickup_Success(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	approved := pendingReservation()
	approved.Status = entity.ReservationStatusApproved
	approved.TrackingID = "SC250830ABC123"
	item := availableItem()
	item.Status = entity.ItemStatusReserved
	record := &entity.TrackingRecord{
		TrackingID:    "SC250830ABC123",
		ReservationID: "res-1",
		ItemID:        "item-1",
		DonorID:       "donor-1",
		RequesterID:   "user-1",
		CurrentStatus: entity.TrackingReadyForPickup,
	}

	fx.reservationRepo.EXPECT().
		List(ctx, repository.ReservationFilter{ItemID: "item-1", RequesterID: "user-1"}).
		Return([]*entity.Reservation{approved}, nil)
	fx.reservationRepo.EXPECT().
		Update(ctx, "res-1", mock.AnythingOfType("map[string]interface {}")).
		Return(nil)
	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(item, nil)
	fx.itemRepo.EXPECT().
		Update(ctx, "item-1", mock.AnythingOfType("map[string]interface {}")).
		Return(nil)
	fx.trackingRepo.EXPECT().FindByTrackingID(ctx, "SC250830ABC123").Return(record, nil)
	fx.trackingRepo.EXPECT().
		Update(ctx, "SC250830ABC123", mock.AnythingOfType("map[string]interface {}")).
		Return(nil)
	fx.notifications.EXPECT().
		Notify(ctx, entity.TargetedTo("donor-1"), "Item picked up", mock.AnythingOfType("string"), "pickup_confirmed").
		Return(&entity.Notification{}, nil)

	reservation, err := fx.service.Pickup(ctx, "user-1", "item-1")

	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusPickedUp, reservation.Status)
	require.NotNil(t, reservation.PickedUpAt)
	require.NotNil(t, reservation.CompletedAt)
	assert.Equal(t, entity.TrackingPickedUp, record.CurrentStatus)
}

func TestReservationService_Get_PartiesOnly(t *testing.T) {
	fx := createTestReservationService(t)
	ctx := context.Background()

	fx.reservationRepo.EXPECT().FindByID(ctx, "res-1").Return(pendingReservation(), nil)

	_, err := fx.service.Get(ctx, "stranger", "res-1")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
