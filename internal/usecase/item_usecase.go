package usecase

import (
	"context"

	"sharecare/internal/domain/entity"
)

// ItemListQuery selects, orders and pages the item feed.
type ItemListQuery struct {
	Category string `query:"category"`
	Status   string `query:"status"`
	Search   string `query:"search"`
	SortBy   string `query:"sort_by" validate:"omitempty,oneof=created_at name expiry_date"`
	SortDir  string `query:"sort_dir" validate:"omitempty,oneof=asc desc"`
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

// DashboardCounters are the badge counts the app shows on the home feed.
type DashboardCounters struct {
	UnreadMessages      int `json:"unread_messages"`
	UnreadNotifications int `json:"unread_notifications"`
	PendingRequests     int `json:"pending_requests"`
}

// ItemListResult is one page of the item feed plus the caller's dashboard
// counters.
type ItemListResult struct {
	Items      []*entity.Item     `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
	Counters   *DashboardCounters `json:"counters,omitempty"`
}

// CreateItemInput is the payload for posting a donation.
type CreateItemInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" validate:"required"`
	FoodType    string          `json:"food_type"`
	IsBulkItem  bool            `json:"is_bulk_item"`
	Quantity    int             `json:"quantity" validate:"omitempty,min=1"`
	Location    entity.Location `json:"location"`
	PickupTimes string          `json:"pickup_times"`
	ExpiryDate  string          `json:"expiry_date"`
	IsForSale   bool            `json:"is_for_sale"`
	Price       float64         `json:"price" validate:"omitempty,min=0"`
	Images      []string        `json:"images"`
}

// UpdateItemInput carries a partial item update; nil fields are left
// untouched.
type UpdateItemInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	FoodType    *string          `json:"food_type"`
	Quantity    *int             `json:"quantity" validate:"omitempty,min=0"`
	Location    *entity.Location `json:"location"`
	PickupTimes *string          `json:"pickup_times"`
	ExpiryDate  *string          `json:"expiry_date"`
	IsForSale   *bool            `json:"is_for_sale"`
	Price       *float64         `json:"price" validate:"omitempty,min=0"`
	Images      *[]string        `json:"images"`
}

// ItemSearchQuery selects items by text, category and optional geography.
type ItemSearchQuery struct {
	Query    string  `query:"q"`
	Category string  `query:"category"`
	Lat      float64 `query:"lat"`
	Lng      float64 `query:"lng"`
	RadiusKM float64 `query:"radius_km"`
}

// ReportItemInput is the payload for reporting an item to moderation.
type ReportItemInput struct {
	Reason      string `json:"reason" validate:"required"`
	Description string `json:"description"`
}

// ItemUsecase defines the interface for the donation catalogue use cases.
type ItemUsecase interface {
	// List returns one page of the feed. When uid is non-empty the result
	// carries the caller's dashboard counters.
	List(ctx context.Context, uid string, query *ItemListQuery) (*ItemListResult, error)

	// Create posts a donation on behalf of the donor, embedding the donor
	// snapshot and sending the confirmation email.
	Create(ctx context.Context, donorUID string, input *CreateItemInput) (*entity.Item, error)

	// Get retrieves one item and bumps its view counter.
	Get(ctx context.Context, id string) (*entity.Item, error)

	// Update applies a partial update; only the owner may modify an item.
	Update(ctx context.Context, uid, id string, input *UpdateItemInput) (*entity.Item, error)

	// Delete removes the item with its reservations and likes; owner only.
	Delete(ctx context.Context, uid, id string) error

	// AddImages stores uploaded images and appends their URLs to the item.
	AddImages(ctx context.Context, uid, id string, uploads []ImageUpload) (*entity.Item, error)

	// Search filters available items by text, category and an optional
	// radius around a point.
	Search(ctx context.Context, query *ItemSearchQuery) ([]*entity.Item, error)

	// ListByCategory returns available items in a category.
	ListByCategory(ctx context.Context, category string) ([]*entity.Item, error)

	// Like records a like; a duplicate like is a conflict.
	Like(ctx context.Context, uid, id string) (*entity.Item, error)

	// Unlike withdraws a like; withdrawing a missing like is a conflict.
	Unlike(ctx context.Context, uid, id string) (*entity.Item, error)

	// Favorite bookmarks an item for the caller.
	Favorite(ctx context.Context, uid, id string) error

	// Unfavorite removes the caller's bookmark.
	Unfavorite(ctx context.Context, uid, id string) error

	// ListFavorites returns the caller's bookmarked items.
	ListFavorites(ctx context.Context, uid string) ([]*entity.Item, error)

	// ListDonations returns the items posted by the caller.
	ListDonations(ctx context.Context, uid string) ([]*entity.Item, error)

	// Report files a moderation report against an item.
	Report(ctx context.Context, uid, id string, input *ReportItemInput) (*entity.Report, error)
}

// ImageUpload is one uploaded file held in memory.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
