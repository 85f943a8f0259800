package entity

import (
	"time"
)

// Chat is a conversation between a donor and a requester about one item.
// A chat is uniquely identified by the triple (item, donor, requester) and is
// created once when a reservation is approved. The existence check before
// creation is idempotent by intent only; it races under concurrent approvals.
type Chat struct {
	ID            string    `json:"id" firestore:"-"`
	ReservationID string    `json:"reservation_id" firestore:"reservation_id"`
	ItemID        string    `json:"item_id" firestore:"item_id"`
	DonorID       string    `json:"donor_id" firestore:"donor_id"`
	RequesterID   string    `json:"requester_id" firestore:"requester_id"`
	IsActive      bool      `json:"is_active" firestore:"is_active"`
	LastMessage   string    `json:"last_message,omitempty" firestore:"last_message"`
	LastMessageAt time.Time `json:"last_message_at" firestore:"last_message_at"`
	CreatedAt     time.Time `json:"created_at" firestore:"created_at"`
}

// HasParty reports whether uid is one of the two chat participants.
func (c *Chat) HasParty(uid string) bool {
	return c.DonorID == uid || c.RequesterID == uid
}

// Counterparty returns the participant other than uid.
func (c *Chat) Counterparty(uid string) string {
	if c.RequesterID == uid {
		return c.DonorID
	}

	return c.RequesterID
}

// Message is one entry of a chat, ordered by creation time. Either Text or
// ImageURL is set.
type Message struct {
	ID        string    `json:"id" firestore:"-"`
	ChatID    string    `json:"chat_id" firestore:"chat_id"`
	SenderID  string    `json:"sender_id" firestore:"sender_id"`
	Text      string    `json:"message" firestore:"message"`
	ImageURL  string    `json:"image_url,omitempty" firestore:"image_url"`
	Read      bool      `json:"read" firestore:"read"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
}
