// Package repository defines the interfaces for the persistence layer.
// Implementations wrap named collections of the document store; referential
// integrity across collections is maintained by the callers.
package repository

import (
	"context"
	"errors"

	"sharecare/internal/domain/entity"
)

// ErrUserNotFound is returned when a user document is absent.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for the users collection.
type UserRepository interface {
	// Create persists a new user profile keyed by its uid.
	Create(ctx context.Context, user *entity.User) error

	// FindByUID retrieves a user by the identity provider uid.
	FindByUID(ctx context.Context, uid string) (*entity.User, error)

	// FindAll retrieves every user document.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update applies targeted field updates to a user document.
	Update(ctx context.Context, uid string, updates map[string]any) error

	// Delete removes the user document. Dependent documents are removed by
	// the caller; the store enforces no cascade.
	Delete(ctx context.Context, uid string) error
}
