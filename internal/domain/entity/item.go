package entity

import (
	"time"
)

// ItemStatus is the lifecycle state of a donatable item.
type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "available"
	ItemStatusReserved  ItemStatus = "reserved"
	ItemStatusDonated   ItemStatus = "donated"
)

// Location is a point with a human-readable address.
type Location struct {
	Lat     float64 `json:"lat" firestore:"lat"`
	Lng     float64 `json:"lng" firestore:"lng"`
	Address string  `json:"address" firestore:"address"`
}

// DonorSnapshot is the denormalized donor profile embedded in an item at
// creation time. It is never refreshed when the donor edits their profile.
type DonorSnapshot struct {
	ID       string  `json:"id" firestore:"id"`
	Name     string  `json:"name" firestore:"name"`
	Type     string  `json:"type" firestore:"type"`
	Rating   float64 `json:"rating" firestore:"rating"`
	PhotoURL string  `json:"photo_url" firestore:"photo_url"`
	Phone    string  `json:"phone" firestore:"phone"`
	Email    string  `json:"email" firestore:"email"`
}

// Item is a donatable unit of food or clothing posted by a donor.
//
// Status transitions available -> reserved|donated are driven only by
// reservation approval and pickup; a bulk item keeps status available while
// its remaining quantity is positive.
type Item struct {
	ID          string        `json:"id" firestore:"-"`
	Name        string        `json:"name" firestore:"name"`
	Description string        `json:"description" firestore:"description"`
	Category    string        `json:"category" firestore:"category"`
	FoodType    string        `json:"food_type,omitempty" firestore:"food_type"`
	IsBulkItem  bool          `json:"is_bulk_item" firestore:"is_bulk_item"`
	Quantity    int           `json:"quantity" firestore:"quantity"`
	Donor       DonorSnapshot `json:"donor" firestore:"donor"`
	DonorID     string        `json:"donor_id" firestore:"donor_id"`
	DonorName   string        `json:"donor_name" firestore:"donor_name"`
	Location    Location      `json:"location" firestore:"location"`
	PickupTimes string        `json:"pickup_times" firestore:"pickup_times"`
	ExpiryDate  string        `json:"expiry_date,omitempty" firestore:"expiry_date"`
	IsForSale   bool          `json:"is_for_sale" firestore:"is_for_sale"`
	Price       float64       `json:"price" firestore:"price"`
	Images      []string      `json:"images" firestore:"images"`
	Status      ItemStatus    `json:"status" firestore:"status"`
	IsVerified  bool          `json:"is_verified" firestore:"is_verified"`
	Likes       int           `json:"likes" firestore:"likes"`
	Views       int           `json:"views" firestore:"views"`
	CreatedAt   time.Time     `json:"created_at" firestore:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" firestore:"updated_at"`
}
