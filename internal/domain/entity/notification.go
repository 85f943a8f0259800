package entity

import (
	"slices"
	"time"
)

// Audience identifies who may see a notification: either everyone
// (broadcast) or an explicit set of user IDs. The stored form is a plain
// target_users array where empty means broadcast; the tagged type keeps that
// convention out of business logic.
type Audience struct {
	broadcast bool
	userIDs   []string
}

// Broadcast returns an audience visible to every user.
func Broadcast() Audience {
	return Audience{broadcast: true}
}

// TargetedTo returns an audience restricted to the given user IDs. An empty
// id list is treated as a broadcast, matching the stored convention.
func TargetedTo(userIDs ...string) Audience {
	if len(userIDs) == 0 {
		return Broadcast()
	}

	return Audience{userIDs: slices.Clone(userIDs)}
}

// IsBroadcast reports whether the audience is unrestricted.
func (a Audience) IsBroadcast() bool {
	return a.broadcast
}

// Includes reports whether uid may see a notification with this audience.
func (a Audience) Includes(uid string) bool {
	return a.broadcast || slices.Contains(a.userIDs, uid)
}

// UserIDs returns the explicit target list; empty for a broadcast.
func (a Audience) UserIDs() []string {
	return slices.Clone(a.userIDs)
}

// Notification is an in-app notification document. Read receipts accumulate
// in ReadBy; there is no separate read-state collection.
type Notification struct {
	ID        string    `json:"id" firestore:"-"`
	Title     string    `json:"title" firestore:"title"`
	Message   string    `json:"message" firestore:"message"`
	Type      string    `json:"type" firestore:"type"`
	Audience  Audience  `json:"-" firestore:"-"`
	ReadBy    []string  `json:"read_by" firestore:"read_by"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
	ReadAt    time.Time `json:"read_at,omitempty" firestore:"read_at"`
}

// IsReadBy reports whether uid has marked the notification read.
func (n *Notification) IsReadBy(uid string) bool {
	return slices.Contains(n.ReadBy, uid)
}

// AdminNotification is the moderation console's record of a notification it
// sent out. Resending produces a fresh user-facing notification while this
// record keeps the audit trail.
type AdminNotification struct {
	ID             string    `json:"id" firestore:"-"`
	NotificationID string    `json:"notification_id" firestore:"notification_id"` // Latest user-facing copy.
	Title          string    `json:"title" firestore:"title"`
	Message        string    `json:"message" firestore:"message"`
	Type           string    `json:"type" firestore:"type"`
	Audience       Audience  `json:"-" firestore:"-"`
	SentBy         string    `json:"sent_by" firestore:"sent_by"`
	ResendCount    int       `json:"resend_count" firestore:"resend_count"`
	CreatedAt      time.Time `json:"created_at" firestore:"created_at"`
}
