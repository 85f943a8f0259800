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

	"sharecare/config"
	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/domain/repository"
	mockRepo "sharecare/internal/mocks/repository"
	mockSvc "sharecare/internal/mocks/service"
	mockUC "sharecare/internal/mocks/usecase"
	"sharecare/internal/usecase"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service         usecase.UserUsecase
	userRepo        *mockRepo.MockUserRepository
	itemRepo        *mockRepo.MockItemRepository
	reservationRepo *mockRepo.MockReservationRepository
	tokenService    *mockSvc.MockTokenService
	passwordHasher  *mockSvc.MockPasswordHasher
	mailService     *mockSvc.MockMailService
	notifications   *mockUC.MockNotificationUsecase
	config          *config.Config
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	reservationRepo := mockRepo.NewMockReservationRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	passwordHasher := mockSvc.NewMockPasswordHasher(t)
	mailService := mockSvc.NewMockMailService(t)
	notifications := mockUC.NewMockNotificationUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Admin: &config.AdminConfig{
			Email:        "admin@sharecare.app",
			PasswordHash: "$2a$10$stored-hash",
		},
	}

	service := NewUserService(UserServiceParams{
		UserRepo:        userRepo,
		ItemRepo:        itemRepo,
		ReservationRepo: reservationRepo,
		TokenService:    tokenService,
		PasswordHasher:  passwordHasher,
		MailService:     mailService,
		Notifications:   notifications,
		Config:          cfg,
		Logger:          logger,
	})

	return userServiceFixtures{
		service:         service,
		userRepo:        userRepo,
		itemRepo:        itemRepo,
		reservationRepo: reservationRepo,
		tokenService:    tokenService,
		passwordHasher:  passwordHasher,
		mailService:     mailService,
		notifications:   notifications,
		config:          cfg,
	}
}

func TestUserService_VerifyAuth_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{UID: "user-1", Email: "user@example.com", FullName: "User One"}

	fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(user, nil)
	fx.mailService.EXPECT().
		SendLoginNotification(ctx, "user@example.com", "User One").
		Return(nil)

	result, err := fx.service.VerifyAuth(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "user-1", result.UID)
}

func TestUserService_VerifyAuth_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUID(ctx, "missing").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.VerifyAuth(ctx, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_AdminLogin_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.passwordHasher.EXPECT().Check("correct-password", "$2a$10$stored-hash").Return(true)
	fx.tokenService.EXPECT().GenerateAdminToken("admin@sharecare.app").Return("signed-token", nil)

	token, err := fx.service.AdminLogin(ctx, "admin@sharecare.app", "correct-password")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestUserService_AdminLogin_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.passwordHasher.EXPECT().Check("wrong", "$2a$10$stored-hash").Return(false)

	_, err := fx.service.AdminLogin(ctx, "admin@sharecare.app", "wrong")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidAdminCredentials)
}

func TestUserService_AdminLogin_NotConfigured(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.config.Admin = nil

	_, err := fx.service.AdminLogin(ctx, "admin@sharecare.app", "anything")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidAdminCredentials)
}

func TestUserService_CreateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	admins := []*entity.User{
		{UID: "admin-1", IsAdmin: true},
		{UID: "user-2"},
	}

	fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	fx.userRepo.EXPECT().FindAll(ctx).Return(admins, nil)
	fx.notifications.EXPECT().
		Notify(ctx, entity.TargetedTo("admin-1"), "New member joined", "User One just joined ShareCare", "registration").
		Return(&entity.Notification{}, nil)
	fx.mailService.EXPECT().
		SendWelcome(ctx, "user@example.com", "User One").
		Return(nil)

	user, created, err := fx.service.CreateProfile(ctx, "user-1", &usecase.CreateUserInput{
		Email:    "user@example.com",
		FullName: "User One",
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entity.AccountTypeIndividual, user.AccountType)
	assert.True(t, user.IsActive)
}

func TestUserService_CreateProfile_AlreadyExists(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{UID: "user-1", Email: "user@example.com"}

	fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(existing, nil)

	user, created, err := fx.service.CreateProfile(ctx, "user-1", &usecase.CreateUserInput{
		Email:    "other@example.com",
		FullName: "Someone Else",
	})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestUserService_UpdateProfile_Partial(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	name := "Renamed"
	updated := &entity.User{UID: "user-1", FullName: "Renamed"}

	fx.userRepo.EXPECT().
		Update(ctx, "user-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, uid string, updates map[string]interface{}) {
			assert.Equal(t, "Renamed", updates["full_name"])
			assert.NotContains(t, updates, "phone")
		}).
		Return(nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(updated, nil)

	user, err := fx.service.UpdateProfile(ctx, "user-1", &usecase.UpdateUserInput{FullName: &name})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", user.FullName)
}

func TestUserService_UpdateProfile_NoFields(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(&entity.User{UID: "user-1"}, nil)

	user, err := fx.service.UpdateProfile(ctx, "user-1", &usecase.UpdateUserInput{})

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.UID)
}

func TestUserService_GetPublicProfile_Stats(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(&entity.User{UID: "user-1"}, nil)
	fx.itemRepo.EXPECT().
		List(ctx, repository.ItemFilter{DonorID: "user-1"}).
		Return([]*entity.Item{{ID: "item-1"}, {ID: "item-2"}}, nil)
	fx.reservationRepo.EXPECT().
		List(ctx, repository.ReservationFilter{RequesterID: "user-1"}).
		Return([]*entity.Reservation{
			{ID: "res-1", Status: entity.ReservationStatusPickedUp},
			{ID: "res-2", Status: entity.ReservationStatusPending},
		}, nil)

	profile, err := fx.service.GetPublicProfile(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 2, profile.Stats.DonationsCount)
	assert.Equal(t, 2, profile.Stats.ReservationsCount)
	assert.Equal(t, 1, profile.Stats.PickupsCount)
}

func TestUserService_GetStatus_OnlineWindow(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		lastSeen time.Time
		want     bool
	}{
		{name: "recent heartbeat", lastSeen: time.Now().Add(-time.Minute), want: true},
		{name: "stale heartbeat", lastSeen: time.Now().Add(-10 * time.Minute), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &entity.User{UID: "user-1", IsOnline: true, LastSeen: tt.lastSeen}
			fx.userRepo.EXPECT().FindByUID(ctx, "user-1").Return(user, nil).Once()

			status, err := fx.service.GetStatus(ctx, "user-1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, status.IsOnline)
		})
	}
}

func TestUserService_UpdateStatus_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		Update(ctx, "user-1", mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, uid string, updates map[string]interface{}) {
			assert.Equal(t, true, updates["is_online"])
			assert.Equal(t, "chat-1", updates["typing_in_chat"])
		}).
		Return(nil)

	err := fx.service.UpdateStatus(ctx, "user-1", &usecase.UpdateStatusInput{
		IsOnline:     true,
		TypingInChat: "chat-1",
	})

	require.NoError(t, err)
}
