// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// AccountType distinguishes the kinds of accounts that can sign up.
type AccountType string

const (
	AccountTypeIndividual AccountType = "individual"
	AccountTypeBusiness   AccountType = "business"
	AccountTypeAdmin      AccountType = "admin"
)

// User is the core identity in the system. The document ID in the users
// collection is the identity provider's uid.
type User struct {
	UID           string      `json:"uid" firestore:"-"`                          // Identity-provider uid, also the document ID.
	Email         string      `json:"email" firestore:"email"`                    // Primary contact email.
	FullName      string      `json:"full_name" firestore:"full_name"`            // Display name.
	Phone         string      `json:"phone" firestore:"phone"`                    // Contact phone number.
	Address       string      `json:"address" firestore:"address"`                // Free-form postal address.
	Bio           string      `json:"bio" firestore:"bio"`                        // Short self-description shown on the profile.
	PhotoURL      string      `json:"photo_url" firestore:"photo_url"`            // Avatar URL.
	AccountType   AccountType `json:"account_type" firestore:"account_type"`      // individual, business or admin.
	EmailVerified bool        `json:"email_verified" firestore:"email_verified"`  // Whether the identity provider confirmed the email.
	IsActive      bool        `json:"is_active" firestore:"is_active"`            // False when the account is banned by an admin.
	IsAdmin       bool        `json:"is_admin" firestore:"is_admin"`              // Grants access to the moderation API.
	Rating        float64     `json:"rating" firestore:"rating"`                  // Aggregate community rating.
	IsOnline      bool        `json:"is_online" firestore:"is_online"`            // Presence flag maintained by the mobile client.
	LastSeen      time.Time   `json:"last_seen" firestore:"last_seen"`            // Last presence heartbeat.
	TypingInChat  string      `json:"typing_in_chat" firestore:"typing_in_chat"`  // Chat ID the user is currently typing in, if any.
	CreatedAt     time.Time   `json:"created_at" firestore:"created_at"`          // Timestamp of profile creation.
	UpdatedAt     time.Time   `json:"updated_at" firestore:"updated_at"`          // Timestamp of the last modification.
}

// UserStats aggregates activity counters computed on read; they are not
// stored on the user document.
type UserStats struct {
	DonationsCount    int `json:"donations_count"`
	ReservationsCount int `json:"reservations_count"`
	PickupsCount      int `json:"pickups_count"`
}

// OnlineWindow is how recent a presence heartbeat must be for a user to be
// reported as online.
const OnlineWindow = 2 * time.Minute

// Online reports whether the user's last heartbeat falls within OnlineWindow
// of now.
func (u *User) Online(now time.Time) bool {
	if u.LastSeen.IsZero() {
		return false
	}

	return now.Sub(u.LastSeen) < OnlineWindow
}
