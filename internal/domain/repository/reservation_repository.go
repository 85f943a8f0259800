package repository

import (
	"context"
	"errors"

	"sharecare/internal/domain/entity"
)

// ErrReservationNotFound is returned when a reservation document is absent.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationFilter narrows a reservation listing. Zero values mean "no
// constraint".
type ReservationFilter struct {
	ItemID      string
	RequesterID string
	DonorID     string
	Status      entity.ReservationStatus
}

// ReservationRepository defines the interface for the reservations
// collection.
type ReservationRepository interface {
	// Create persists a new reservation and fills in its generated document
	// ID.
	Create(ctx context.Context, reservation *entity.Reservation) error

	// FindByID retrieves a reservation by its document ID.
	FindByID(ctx context.Context, id string) (*entity.Reservation, error)

	// List retrieves reservations matching the filter.
	List(ctx context.Context, filter ReservationFilter) ([]*entity.Reservation, error)

	// Update applies targeted field updates to a reservation document.
	Update(ctx context.Context, id string, updates map[string]any) error

	// Delete removes the reservation document.
	Delete(ctx context.Context, id string) error
}
