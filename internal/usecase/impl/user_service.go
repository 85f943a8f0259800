// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"sharecare/config"
	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/domain/repository"
	"sharecare/internal/domain/service"
	"sharecare/internal/usecase"
)

type userService struct {
	userRepo        repository.UserRepository
	itemRepo        repository.ItemRepository
	reservationRepo repository.ReservationRepository
	tokenService    service.TokenService
	passwordHasher  service.PasswordHasher
	mailService     service.MailService
	notifications   usecase.NotificationUsecase
	config          *config.Config
	logger          *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	ItemRepo        repository.ItemRepository
	ReservationRepo repository.ReservationRepository
	TokenService    service.TokenService
	PasswordHasher  service.PasswordHasher
	MailService     service.MailService
	Notifications   usecase.NotificationUsecase
	Config          *config.Config
	Logger          *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:        params.UserRepo,
		itemRepo:        params.ItemRepo,
		reservationRepo: params.ReservationRepo,
		tokenService:    params.TokenService,
		passwordHasher:  params.PasswordHasher,
		mailService:     params.MailService,
		notifications:   params.Notifications,
		config:          params.Config,
		logger:          params.Logger,
	}
}

// VerifyAuth resolves a bearer uid to its profile and records the sign-in.
func (s *userService) VerifyAuth(ctx context.Context, uid string) (*entity.User, error) {
	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	if err := s.mailService.SendLoginNotification(ctx, user.Email, user.FullName); err != nil {
		s.logger.WarnContext(ctx, "login email failed",
			slog.String("uid", uid),
			slog.Any("error", err))
	}

	return user, nil
}

// AdminLogin exchanges admin credentials for a session token.
func (s *userService) AdminLogin(ctx context.Context, email, password string) (string, error) {
	admin := s.config.Admin
	if admin == nil || admin.Email == "" || admin.PasswordHash == "" {
		return "", domainerrors.ErrInvalidAdminCredentials
	}

	if email != admin.Email || !s.passwordHasher.Check(password, admin.PasswordHash) {
		return "", domainerrors.ErrInvalidAdminCredentials
	}

	token, err := s.tokenService.GenerateAdminToken(email)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate admin token")
	}

	return token, nil
}

// CreateProfile registers a profile for the uid. An existing profile is
// returned unchanged.
func (s *userService) CreateProfile(ctx context.Context, uid string, input *usecase.CreateUserInput) (*entity.User, bool, error) {
	existing, err := s.userRepo.FindByUID(ctx, uid)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, err
	}

	accountType := entity.AccountType(input.AccountType)
	if accountType == "" {
		accountType = entity.AccountTypeIndividual
	}

	now := time.Now()
	user := &entity.User{
		UID:         uid,
		Email:       input.Email,
		FullName:    input.FullName,
		Phone:       input.Phone,
		Address:     input.Address,
		Bio:         input.Bio,
		PhotoURL:    input.PhotoURL,
		AccountType: accountType,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, false, err
	}

	s.notifyAdmins(ctx, user)

	if err := s.mailService.SendWelcome(ctx, user.Email, user.FullName); err != nil {
		s.logger.WarnContext(ctx, "welcome email failed",
			slog.String("uid", uid),
			slog.Any("error", err))
	}

	return user, true, nil
}

// notifyAdmins tells the moderation team about a new registration. Failures
// are logged and swallowed; registration must not depend on it.
func (s *userService) notifyAdmins(ctx context.Context, user *entity.User) {
	all, err := s.userRepo.FindAll(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "admin lookup for registration notification failed",
			slog.Any("error", err))

		return
	}

	var adminUIDs []string
	for _, candidate := range all {
		if candidate.IsAdmin {
			adminUIDs = append(adminUIDs, candidate.UID)
		}
	}
	if len(adminUIDs) == 0 {
		return
	}

	if _, err := s.notifications.Notify(ctx, entity.TargetedTo(adminUIDs...),
		"New member joined", user.FullName+" just joined ShareCare", "registration"); err != nil {
		s.logger.WarnContext(ctx, "registration notification failed",
			slog.String("uid", user.UID),
			slog.Any("error", err))
	}
}

// GetProfile retrieves the caller's own profile.
func (s *userService) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

// UpdateProfile applies a partial update to the caller's profile.
func (s *userService) UpdateProfile(ctx context.Context, uid string, input *usecase.UpdateUserInput) (*entity.User, error) {
	updates := map[string]any{}
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.PhotoURL != nil {
		updates["photo_url"] = *input.PhotoURL
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := s.userRepo.Update(ctx, uid, updates); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrUserNotFound
			}

			return nil, err
		}
	}

	return s.GetProfile(ctx, uid)
}

// GetPublicProfile retrieves another user's profile with activity stats.
func (s *userService) GetPublicProfile(ctx context.Context, uid string) (*usecase.PublicProfile, error) {
	user, err := s.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	donations, err := s.itemRepo.List(ctx, repository.ItemFilter{DonorID: uid})
	if err != nil {
		return nil, err
	}

	reservations, err := s.reservationRepo.List(ctx, repository.ReservationFilter{RequesterID: uid})
	if err != nil {
		return nil, err
	}

	stats := &entity.UserStats{
		DonationsCount:    len(donations),
		ReservationsCount: len(reservations),
	}
	for _, reservation := range reservations {
		if reservation.Status == entity.ReservationStatusPickedUp {
			stats.PickupsCount++
		}
	}

	return &usecase.PublicProfile{User: user, Stats: stats}, nil
}

// GetStatus retrieves a user's presence.
func (s *userService) GetStatus(ctx context.Context, uid string) (*usecase.UserStatus, error) {
	user, err := s.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &usecase.UserStatus{
		UID:          user.UID,
		IsOnline:     user.IsOnline && user.Online(time.Now()),
		LastSeen:     user.LastSeen,
		TypingInChat: user.TypingInChat,
	}, nil
}

// UpdateStatus records a presence heartbeat for the caller.
func (s *userService) UpdateStatus(ctx context.Context, uid string, input *usecase.UpdateStatusInput) error {
	updates := map[string]any{
		"is_online":      input.IsOnline,
		"typing_in_chat": input.TypingInChat,
		"last_seen":      time.Now(),
	}

	if err := s.userRepo.Update(ctx, uid, updates); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	return nil
}
