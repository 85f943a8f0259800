package usecase

import (
	"context"

	"sharecare/internal/domain/entity"
)

// TrackingDetail is the full client view of a tracking record.
type TrackingDetail struct {
	Record            *entity.TrackingRecord                             `json:"record"`
	Item              *entity.Item                                       `json:"item,omitempty"`
	Reservation       *entity.Reservation                                `json:"reservation,omitempty"`
	StatusDefinitions map[entity.TrackingStatus]entity.TrackingStatusInfo `json:"status_definitions"`
}

// AdvanceTrackingInput moves a tracking record to a new status.
type AdvanceTrackingInput struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

// TrackingUsecase defines the interface for pickup tracking use cases.
type TrackingUsecase interface {
	// Get retrieves a tracking record with its item and reservation; parties
	// only. The tracking ID is matched case-insensitively.
	Get(ctx context.Context, uid, trackingID string) (*TrackingDetail, error)

	// Advance appends a status event; donor only. Statuses picked_up and
	// completed also complete the reservation and settle the item.
	Advance(ctx context.Context, uid, trackingID string, input *AdvanceTrackingInput) (*entity.TrackingRecord, error)

	// QR renders the tracking ID as a PNG QR code.
	QR(ctx context.Context, trackingID string) ([]byte, error)

	// ListForUser returns records where the caller is the requester.
	ListForUser(ctx context.Context, uid string) ([]*entity.TrackingRecord, error)

	// ListForDonor returns records where the caller is the donor.
	ListForDonor(ctx context.Context, uid string) ([]*entity.TrackingRecord, error)
}
