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

// trackingServiceFixtures holds all test dependencies for tracking service
// tests.
type trackingServiceFixtures struct {
	service         usecase.TrackingUsecase
	trackingRepo    *mockRepo.MockTrackingRepository
	reservationRepo *mockRepo.MockReservationRepository
	itemRepo        *mockRepo.MockItemRepository
	userRepo        *mockRepo.MockUserRepository
	qrcodeService   *mockSvc.MockQRCodeService
	notifications   *mockUC.MockNotificationUsecase
	mailService     *mockSvc.MockMailService
}

func createTestTrackingService(t *testing.T) trackingServiceFixtures {
	trackingRepo := mockRepo.NewMockTrackingRepository(t)
	reservationRepo := mockRepo.NewMockReservationRepository(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	notifications := mockUC.NewMockNotificationUsecase(t)
	mailService := mockSvc.NewMockMailService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewTrackingService(TrackingServiceParams{
		TrackingRepo:    trackingRepo,
		ReservationRepo: reservationRepo,
		ItemRepo:        itemRepo,
		UserRepo:        userRepo,
		QRCodeService:   qrcodeService,
		Notifications:   notifications,
		MailService:     mailService,
		Logger:          logger,
	})

	return trackingServiceFixtures{
		service:         service,
		trackingRepo:    trackingRepo,
		reservationRepo: reservationRepo,
		itemRepo:        itemRepo,
		userRepo:        userRepo,
		qrcodeService:   qrcodeService,
		notifications:   notifications,
		mailService:     mailService,
	}
}

func trackingRecord() *entity.TrackingRecord {
	record := &entity.TrackingRecord{
		TrackingID:    "SC250830A1B2C3",
		ReservationID: "res-1",
		ItemID:        "item-1",
		DonorID:       "donor-1",
		RequesterID:   "user-1",
	}
	record.Append(entity.TrackingEvent{
		Status:    entity.TrackingRequestAccepted,
		Timestamp: time.Now().Add(-time.Hour),
		UpdatedBy: "donor-1",
	})

	return record
}

func TestTrackingService_Get_CaseInsensitive(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	record := trackingRecord()

	fx.trackingRepo.EXPECT().FindByTrackingID(ctx, "SC250830A1B2C3").Return(record, nil)
	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1"}, nil)
	fx.reservationRepo.EXPECT().FindByID(ctx, "res-1").Return(&entity.Reservation{ID: "res-1"}, nil)

	detail, err := fx.service.Get(ctx, "user-1", "  sc250830a1b2c3 ")

	require.NoError(t, err)
	assert.Equal(t, "SC250830A1B2C3", detail.Record.TrackingID)
	assert.NotNil(t, detail.Item)
	assert.NotNil(t, detail.Reservation)
	assert.Contains(t, detail.StatusDefinitions, entity.TrackingReadyForPickup)
}

func TestTrackingService_Get_PartiesOnly(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.trackingRepo.EXPECT().FindByTrackingID(ctx, "SC250830A1B2C3").Return(trackingRecord(), nil)

	_, err := fx.service.Get(ctx, "stranger", "SC250830A1B2C3")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTrackingService_Advance_UnknownStatus(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	_, err := fx.service.Advance(ctx, "donor-1", "SC250830A1B2C3", &usecase.AdvanceTrackingInput{
		Status: "teleported",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TRACKING_STATUS", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), `unknown status "teleported"`)
}

func TestTrackingService_Advance_NotDonor(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.trackingRepo.EXPECT().FindByTrackingID(ctx, "SC250830A1B2C3").Return(trackingRecord(), nil)

	_, err := fx.service.Advance(ctx, "user-1", "SC250830A1B2C3", &usecase.AdvanceTrackingInput{
		Status: "preparing_item",
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestTrackingService_Advance_Success(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	record := trackingRecord()
	requester := &entity.User{UID: "user-1", Email: "user@example.com", FullName: "User One"}

	fx.trackingRepo.EXPECT().FindByTrackingID(ctx, "SC250830A1B2C3").Return(record, nil)
	fx.trackingRepo.EXPECT().
		Update(ctx, "SC250830A1B2C3", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, trackingID string, updates map[string]interface{}) {
			assert.Equal(t, "ready_for_pickup", updates["current_status"])
		}).
		Return(nil)
	fx.notifications.EXPECT().
		Notify(ctx, entity.TargetedTo("user-1"), "Ready for Pickup", mock.AnythingOfType("string"), "tracking_update").
		Return(&entity.Notification{}, nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(requester, nil)
	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(&entity.Item{ID: "item-1", Name: "Bread"}, nil)
	fx.mailService.EXPECT().
		SendTrackingUpdate(ctx, "user@example.com", "User One", "Bread", "SC250830A1B2C3", "Ready for Pickup").
		Return(nil)

	updated, err := fx.service.Advance(ctx, "donor-1", "SC250830A1B2C3", &usecase.AdvanceTrackingInput{
		Status: "ready_for_pickup",
		Notes:  "on the porch",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TrackingReadyForPickup, updated.CurrentStatus)
	require.Len(t, updated.StatusHistory, 2)
	assert.Equal(t, updated.StatusHistory[1].Status, updated.CurrentStatus)
	assert.Equal(t, "on the porch", updated.StatusHistory[1].Notes)
}

func TestTrackingService_Advance_PickedUpCompletesReservation(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	record := trackingRecord()
	reservation := &entity.Reservation{ID: "res-1", Status: entity.ReservationStatusApproved}
	item := &entity.Item{ID: "item-1", Name: "Bread", Status: entity.ItemStatusReserved}
	requester := &entity.User{UID: "user-1", Email: "user@example.com", FullName: "User One"}

	fx.trackingRepo.EXPECT().FindByTrackingID(ctx, "SC250830A1B2C3").Return(record, nil)
	fx.trackingRepo.EXPECT().
		Update(ctx, "SC250830A1B2C3", mock.AnythingOfType("map[string]interface {}")).
		Return(nil)
	fx.reservationRepo.EXPECT().FindByID(ctx, "res-1").Return(reservation, nil)
	fx.reservationRepo.EXPECT().
		Update(ctx, "res-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id string, updates map[string]interface{}) {
			assert.Equal(t, "picked_up", updates["status"])
		}).
		Return(nil)
	fx.itemRepo.EXPECT().FindByID(ctx, "item-1").Return(item, nil)
	fx.itemRepo.EXPECT().
		Update(ctx, "item-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id string, updates map[string]interface{}) {
			assert.Equal(t, "donated", updates["status"])
		}).
		Return(nil)
	fx.notifications.EXPECT().
		Notify(ctx, entity.TargetedTo("user-1"), "Item Picked Up", mock.AnythingOfType("string"), "tracking_update").
		Return(&entity.Notification{}, nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(requester, nil)
	fx.mailService.EXPECT().
		SendTrackingUpdate(ctx, "user@example.com", "User One", "Bread", "SC250830A1B2C3", "Item Picked Up").
		Return(nil)

	updated, err := fx.service.Advance(ctx, "donor-1", "SC250830A1B2C3", &usecase.AdvanceTrackingInput{
		Status: "picked_up",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TrackingPickedUp, updated.CurrentStatus)
}

func TestTrackingService_QR_Success(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	png := []byte{0x89, 'P', 'N', 'G'}

	fx.trackingRepo.EXPECT().FindByTrackingID(ctx, "SC250830A1B2C3").Return(trackingRecord(), nil)
	fx.qrcodeService.EXPECT().GenerateTrackingQR("SC250830A1B2C3").Return(png, nil)

	data, err := fx.service.QR(ctx, "sc250830a1b2c3")

	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestTrackingService_ListForUser_FiltersByRole(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	asRequester := &entity.TrackingRecord{TrackingID: "SC1", RequesterID: "user-1", DonorID: "donor-1"}
	asDonor := &entity.TrackingRecord{TrackingID: "SC2", RequesterID: "user-2", DonorID: "user-1"}

	fx.trackingRepo.EXPECT().
		ListByUser(ctx, "user-1").
		Return([]*entity.TrackingRecord{asRequester, asDonor}, nil).
		Twice()

	requested, err := fx.service.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, requested, 1)
	assert.Equal(t, "SC1", requested[0].TrackingID)

	donated, err := fx.service.ListForDonor(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, donated, 1)
	assert.Equal(t, "SC2", donated[0].TrackingID)
}

func TestTrackingService_Get_NotFound(t *testing.T) {
	fx := createTestTrackingService(t)
	ctx := context.Background()

	fx.trackingRepo.EXPECT().
		FindByTrackingID(ctx, "SC000000XXXXXX").
		Return(nil, repository.ErrTrackingNotFound)

	_, err := fx.service.Get(ctx, "user-1", "SC000000XXXXXX")

	assert.ErrorIs(t, err, domainerrors.ErrTrackingNotFound)
}
