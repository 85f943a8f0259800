package entity

import (
	"time"
)

// ReservationStatus is the lifecycle state of a requester's claim on an item.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusApproved  ReservationStatus = "approved"
	ReservationStatusDeclined  ReservationStatus = "declined"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusPickedUp  ReservationStatus = "picked_up"
)

// ItemSummary is the denormalized slice of an item embedded in a reservation
// so list views do not need a second read.
type ItemSummary struct {
	Name        string   `json:"name" firestore:"name"`
	Category    string   `json:"category" firestore:"category"`
	Images      []string `json:"images" firestore:"images"`
	PickupTimes string   `json:"pickup_times" firestore:"pickup_times"`
}

// Reservation is a requester's claim on an item, subject to donor approval.
//
// At most one reservation per non-bulk item may hold status approved;
// approving one pending reservation forces all other pending reservations on
// the same item to declined.
type Reservation struct {
	ID                string            `json:"id" firestore:"-"`
	ItemID            string            `json:"item_id" firestore:"item_id"`
	ItemName          string            `json:"item_name" firestore:"item_name"`
	UserID            string            `json:"user_id" firestore:"user_id"` // The requester.
	UserName          string            `json:"user_name" firestore:"user_name"`
	DonorID           string            `json:"donor_id" firestore:"donor_id"`
	Message           string            `json:"message,omitempty" firestore:"message"`
	RequestedQuantity int               `json:"requested_quantity" firestore:"requested_quantity"`
	Status            ReservationStatus `json:"status" firestore:"status"`
	TrackingID        string            `json:"tracking_id,omitempty" firestore:"tracking_id"` // Set only once approved.
	Location          Location          `json:"location" firestore:"location"`
	Item              ItemSummary       `json:"item" firestore:"item"`
	CreatedAt         time.Time         `json:"created_at" firestore:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" firestore:"updated_at"`
	PickedUpAt        *time.Time        `json:"picked_up_at,omitempty" firestore:"picked_up_at"`
	CancelledAt       *time.Time        `json:"cancelled_at,omitempty" firestore:"cancelled_at"`
	CompletedAt       *time.Time        `json:"completed_at,omitempty" firestore:"completed_at"`
}
