// Package usecase defines the application's use case interfaces and their
// request/response shapes. Implementations live in the impl subpackage.
package usecase

import (
	"context"
	"time"

	"sharecare/internal/domain/entity"
)

// CreateUserInput is the payload for registering a profile.
type CreateUserInput struct {
	Email       string `json:"email" validate:"required,email"`
	FullName    string `json:"full_name" validate:"required"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Bio         string `json:"bio"`
	PhotoURL    string `json:"photo_url"`
	AccountType string `json:"account_type" validate:"omitempty,oneof=individual business"`
}

// UpdateUserInput carries a partial profile update; nil fields are left
// untouched.
type UpdateUserInput struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Bio      *string `json:"bio"`
	PhotoURL *string `json:"photo_url"`
}

// UpdateStatusInput carries a presence heartbeat from the mobile client.
type UpdateStatusInput struct {
	IsOnline     bool   `json:"is_online"`
	TypingInChat string `json:"typing_in_chat"`
}

// UserStatus is the presence view of a user returned to chat counterparties.
type UserStatus struct {
	UID          string    `json:"uid"`
	IsOnline     bool      `json:"is_online"`
	LastSeen     time.Time `json:"last_seen"`
	TypingInChat string    `json:"typing_in_chat"`
}

// PublicProfile is a user profile with activity stats, as shown to other
// users.
type PublicProfile struct {
	User  *entity.User      `json:"user"`
	Stats *entity.UserStats `json:"stats"`
}

// UserUsecase defines the interface for identity and profile use cases.
type UserUsecase interface {
	// VerifyAuth resolves a bearer uid to its profile and records the
	// sign-in.
	VerifyAuth(ctx context.Context, uid string) (*entity.User, error)

	// AdminLogin exchanges admin credentials for a session token.
	AdminLogin(ctx context.Context, email, password string) (string, error)

	// CreateProfile registers a profile for the uid. Creation is idempotent:
	// an existing profile is returned unchanged with created == false.
	CreateProfile(ctx context.Context, uid string, input *CreateUserInput) (user *entity.User, created bool, err error)

	// GetProfile retrieves the caller's own profile.
	GetProfile(ctx context.Context, uid string) (*entity.User, error)

	// UpdateProfile applies a partial update to the caller's profile.
	UpdateProfile(ctx context.Context, uid string, input *UpdateUserInput) (*entity.User, error)

	// GetPublicProfile retrieves another user's profile with activity stats.
	GetPublicProfile(ctx context.Context, uid string) (*PublicProfile, error)

	// GetStatus retrieves a user's presence.
	GetStatus(ctx context.Context, uid string) (*UserStatus, error)

	// UpdateStatus records a presence heartbeat for the caller.
	UpdateStatus(ctx context.Context, uid string, input *UpdateStatusInput) error
}
