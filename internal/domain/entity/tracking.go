package entity

import (
	"time"
)

// TrackingStatus is one of the fixed fulfillment stages of an approved
// reservation. The vocabulary is ordered logically but transitions are not
// enforced; the only rule is membership.
type TrackingStatus string

const (
	TrackingRequestSubmitted TrackingStatus = "request_submitted"
	TrackingRequestAccepted  TrackingStatus = "request_accepted"
	TrackingPreparingItem    TrackingStatus = "preparing_item"
	TrackingPackingCompleted TrackingStatus = "packing_completed"
	TrackingReadyForPickup   TrackingStatus = "ready_for_pickup"
	TrackingPickedUp         TrackingStatus = "picked_up"
	TrackingCompleted        TrackingStatus = "completed"
	TrackingCancelled        TrackingStatus = "cancelled"
)

// TrackingStatusInfo is the client-facing description of a tracking stage.
type TrackingStatusInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// TrackingStatusDefinitions maps every valid status to its presentation
// metadata. Membership in this map is the only validation applied when a
// tracking record advances.
var TrackingStatusDefinitions = map[TrackingStatus]TrackingStatusInfo{
	TrackingRequestSubmitted: {
		Title:       "Request Submitted",
		Description: "Your request has been submitted to the donor",
		Icon:        "send",
	},
	TrackingRequestAccepted: {
		Title:       "Request Accepted",
		Description: "Great! The donor has accepted your request",
		Icon:        "check_circle",
	},
	TrackingPreparingItem: {
		Title:       "Preparing Item",
		Description: "The donor is preparing your item",
		Icon:        "inventory",
	},
	TrackingPackingCompleted: {
		Title:       "Packing Completed",
		Description: "Your item has been packed and is ready",
		Icon:        "package",
	},
	TrackingReadyForPickup: {
		Title:       "Ready for Pickup",
		Description: "Your item is ready for pickup! Contact the donor to arrange collection",
		Icon:        "local_shipping",
	},
	TrackingPickedUp: {
		Title:       "Item Picked Up",
		Description: "Item has been successfully picked up",
		Icon:        "done_all",
	},
	TrackingCompleted: {
		Title:       "Completed",
		Description: "Transaction completed successfully",
		Icon:        "celebration",
	},
	TrackingCancelled: {
		Title:       "Cancelled",
		Description: "The request has been cancelled",
		Icon:        "cancel",
	},
}

// Valid reports whether s belongs to the fixed tracking vocabulary.
func (s TrackingStatus) Valid() bool {
	_, ok := TrackingStatusDefinitions[s]

	return ok
}

// TrackingEvent is one entry of a tracking record's append-only history.
type TrackingEvent struct {
	Status    TrackingStatus `json:"status" firestore:"status"`
	Timestamp time.Time      `json:"timestamp" firestore:"timestamp"`
	Notes     string         `json:"notes" firestore:"notes"`
	UpdatedBy string         `json:"updated_by" firestore:"updated_by"`
}

// TrackingRecord is the append-only audit trail of an approved reservation's
// fulfillment progress.
//
// Invariants: StatusHistory only grows, and CurrentStatus always equals the
// status of the last history entry.
type TrackingRecord struct {
	ID            string          `json:"id" firestore:"-"`
	TrackingID    string          `json:"tracking_id" firestore:"tracking_id"` // Human-readable code, e.g. SC250830A1B2C3.
	ReservationID string          `json:"reservation_id" firestore:"reservation_id"`
	ItemID        string          `json:"item_id" firestore:"item_id"`
	DonorID       string          `json:"donor_id" firestore:"donor_id"`
	RequesterID   string          `json:"requester_id" firestore:"requester_id"`
	CurrentStatus TrackingStatus  `json:"current_status" firestore:"current_status"`
	StatusHistory []TrackingEvent `json:"status_history" firestore:"status_history"`
	CreatedAt     time.Time       `json:"created_at" firestore:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" firestore:"updated_at"`
}

// Append records a new event and keeps CurrentStatus in sync with the tail of
// the history.
func (t *TrackingRecord) Append(event TrackingEvent) {
	t.StatusHistory = append(t.StatusHistory, event)
	t.CurrentStatus = event.Status
	t.UpdatedAt = event.Timestamp
}
