package entity

import (
	"time"
)

// Like is a join document recording that a user liked an item. The item's
// likes counter is maintained alongside but not derived from these documents.
type Like struct {
	ID        string    `json:"id" firestore:"-"`
	ItemID    string    `json:"item_id" firestore:"item_id"`
	UserID    string    `json:"user_id" firestore:"user_id"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
}

// Favorite is a join document recording that a user bookmarked an item.
type Favorite struct {
	ID        string    `json:"id" firestore:"-"`
	ItemID    string    `json:"item_id" firestore:"item_id"`
	UserID    string    `json:"user_id" firestore:"user_id"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
}

// ReportStatus is the moderation state of a report.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusResolved ReportStatus = "resolved"
)

// Report is a user complaint about an item, resolved by an admin.
type Report struct {
	ID          string       `json:"id" firestore:"-"`
	ItemID      string       `json:"item_id" firestore:"item_id"`
	ReporterID  string       `json:"reporter_id" firestore:"reporter_id"`
	Reason      string       `json:"reason" firestore:"reason"`
	Description string       `json:"description" firestore:"description"`
	Status      ReportStatus `json:"status" firestore:"status"`
	CreatedAt   time.Time    `json:"created_at" firestore:"created_at"`
	ResolvedAt  *time.Time   `json:"resolved_at,omitempty" firestore:"resolved_at"`
}
