package usecase

import (
	"context"

	"sharecare/internal/domain/entity"
)

// ReserveInput is the payload for requesting an item.
type ReserveInput struct {
	ItemID   string `json:"item_id"`
	Message  string `json:"message"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
}

// ReservationDecision is the donor's verdict on a pending reservation.
type ReservationDecision struct {
	Status string `json:"status" validate:"required,oneof=approved declined"`
}

// ReservationDetail pairs a reservation with its current item state.
type ReservationDetail struct {
	Reservation *entity.Reservation `json:"reservation"`
	Item        *entity.Item        `json:"item,omitempty"`
}

// ReservationUsecase defines the interface for the reservation workflow.
type ReservationUsecase interface {
	// Reserve creates a pending reservation for the caller, notifying the
	// donor.
	Reserve(ctx context.Context, uid string, input *ReserveInput) (*entity.Reservation, error)

	// Decide lets the donor approve or decline a pending reservation.
	// Approval seeds the tracking record, adjusts the item, auto-declines
	// competing pending reservations and opens the chat.
	Decide(ctx context.Context, donorUID, reservationID string, decision *ReservationDecision) (*entity.Reservation, error)

	// Cancel lets the requester withdraw their reservation.
	Cancel(ctx context.Context, uid, reservationID string) error

	// Pickup lets the requester confirm collection of an approved item.
	// Repeating the call does not change the outcome.
	Pickup(ctx context.Context, uid, itemID string) (*entity.Reservation, error)

	// Get retrieves a reservation with its item; parties only.
	Get(ctx context.Context, uid, reservationID string) (*ReservationDetail, error)

	// ListForRequester returns the caller's reservations.
	ListForRequester(ctx context.Context, uid string) ([]*entity.Reservation, error)

	// ListForDonor returns reservations on the caller's items.
	ListForDonor(ctx context.Context, uid string) ([]*entity.Reservation, error)

	// ListPickups returns the caller's completed pickups.
	ListPickups(ctx context.Context, uid string) ([]*entity.Reservation, error)

	// ListForItem returns the reservations on one item; donor only.
	ListForItem(ctx context.Context, donorUID, itemID string) ([]*entity.Reservation, error)
}
