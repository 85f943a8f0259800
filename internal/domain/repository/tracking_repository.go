package repository

import (
	"context"
	"errors"

	"sharecare/internal/domain/entity"
)

// ErrTrackingNotFound is returned when no tracking record carries the
// requested tracking ID.
var ErrTrackingNotFound = errors.New("tracking record not found")

// TrackingRepository defines the interface for the tracking collection.
// Records are addressed by their public tracking ID rather than the document
// ID.
type TrackingRepository interface {
	// Create persists a new tracking record and fills in its generated
	// document ID.
	Create(ctx context.Context, record *entity.TrackingRecord) error

	// FindByTrackingID retrieves the record carrying the given tracking ID.
	FindByTrackingID(ctx context.Context, trackingID string) (*entity.TrackingRecord, error)

	// FindByReservationID retrieves the record attached to a reservation.
	FindByReservationID(ctx context.Context, reservationID string) (*entity.TrackingRecord, error)

	// ListByUser retrieves every record where the user is donor or requester.
	ListByUser(ctx context.Context, uid string) ([]*entity.TrackingRecord, error)

	// Update applies targeted field updates to the record carrying the given
	// tracking ID.
	Update(ctx context.Context, trackingID string, updates map[string]any) error
}
