package usecase

import (
	"context"

	"sharecare/internal/domain/entity"
)

// AdminUserQuery filters, orders and pages the moderation user list.
type AdminUserQuery struct {
	Search      string `query:"search"`
	AccountType string `query:"account_type"`
	Active      string `query:"active" validate:"omitempty,oneof=true false"`
	SortBy      string `query:"sort_by" validate:"omitempty,oneof=created_at full_name email"`
	SortDir     string `query:"sort_dir" validate:"omitempty,oneof=asc desc"`
	Page        int    `query:"page"`
	Limit       int    `query:"limit"`
}

// AdminUserPage is one page of the moderation user list.
type AdminUserPage struct {
	Users      []*entity.User `json:"users"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

// AdminItemQuery filters and pages the moderation item list.
type AdminItemQuery struct {
	Category string `query:"category"`
	Status   string `query:"status"`
	Search   string `query:"search"`
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
}

// AdminItemPage is one page of the moderation item list.
type AdminItemPage struct {
	Items      []*entity.Item `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

// MonthlyCount is one point of a time series keyed by month ("2006-01").
type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// DonorRanking is one entry of the top-donor leaderboard.
type DonorRanking struct {
	UID       string `json:"uid"`
	Name      string `json:"name"`
	Donations int    `json:"donations"`
}

// Statistics is the moderation dashboard summary.
type Statistics struct {
	TotalUsers       int            `json:"total_users"`
	ActiveUsers      int            `json:"active_users"`
	UsersByType      map[string]int `json:"users_by_type"`
	TotalItems       int            `json:"total_items"`
	ItemsByStatus    map[string]int `json:"items_by_status"`
	ItemsByCategory  map[string]int `json:"items_by_category"`
	ItemsPerMonth    []MonthlyCount `json:"items_per_month"`
	TopDonors        []DonorRanking `json:"top_donors"`
	TotalReservation int            `json:"total_reservations"`
}

// AdminUserItems is one user's donation and reservation activity, as shown
// in the moderation console.
type AdminUserItems struct {
	User          *entity.User          `json:"user"`
	DonatedItems  []*entity.Item        `json:"donated_items"`
	ReservedItems []*entity.Reservation `json:"reserved_items"`
	TotalDonated  int                   `json:"total_donated"`
	TotalReserved int                   `json:"total_reserved"`
}

// DemandArea aggregates reservations around a rounded coordinate for the
// moderation map overlay.
type DemandArea struct {
	Location entity.Location `json:"location"`
	Count    int             `json:"demand_count"`
	Level    string          `json:"demand_level"`
	Color    string          `json:"color"`
}

// DeliveryStats summarizes how a sent notification landed. Recipients is
// zero for a broadcast.
type DeliveryStats struct {
	Recipients int `json:"recipients"`
	Read       int `json:"read"`
}

// AdminNotificationDetail pairs an audit record with its delivery stats.
type AdminNotificationDetail struct {
	*entity.AdminNotification
	DeliveryStats DeliveryStats `json:"delivery_stats"`
}

// SendNotificationInput is the payload for an admin-sent notification. An
// empty target list broadcasts to everyone.
type SendNotificationInput struct {
	Title       string   `json:"title" validate:"required"`
	Message     string   `json:"message" validate:"required"`
	Type        string   `json:"type"`
	TargetUsers []string `json:"target_users"`
}

// BulkDeleteInput names the items to remove in one sweep.
type BulkDeleteInput struct {
	ItemIDs []string `json:"item_ids" validate:"required,min=1"`
}

// AdminUsecase defines the interface for the moderation console.
type AdminUsecase interface {
	// ListUsers returns one page of the user list.
	ListUsers(ctx context.Context, query *AdminUserQuery) (*AdminUserPage, error)

	// SetUserStatus bans or reinstates a user.
	SetUserStatus(ctx context.Context, uid string, active bool) (*entity.User, error)

	// DeleteUser removes a user with their items, reservations and likes,
	// then sends the deletion email.
	DeleteUser(ctx context.Context, uid string) error

	// UserItems returns one user's donations and reservations.
	UserItems(ctx context.Context, uid string) (*AdminUserItems, error)

	// ListItems returns one page of the item list.
	ListItems(ctx context.Context, query *AdminItemQuery) (*AdminItemPage, error)

	// GetItem retrieves one item without touching its counters.
	GetItem(ctx context.Context, id string) (*entity.Item, error)

	// UpdateItem applies a partial update without an ownership check.
	UpdateItem(ctx context.Context, id string, input *UpdateItemInput) (*entity.Item, error)

	// VerifyItem toggles the item's verified badge.
	VerifyItem(ctx context.Context, id string, verified bool) (*entity.Item, error)

	// DeleteItem removes an item with its reservations and likes.
	DeleteItem(ctx context.Context, id string) error

	// BulkDeleteItems removes several items, returning how many were
	// deleted.
	BulkDeleteItems(ctx context.Context, input *BulkDeleteInput) (int, error)

	// Statistics computes the dashboard summary.
	Statistics(ctx context.Context) (*Statistics, error)

	// DemandAreas ranks rounded reservation coordinates by demand.
	DemandAreas(ctx context.Context) ([]*DemandArea, error)

	// SendNotification publishes a notification and records it in the admin
	// audit collection.
	SendNotification(ctx context.Context, adminEmail string, input *SendNotificationInput) (*entity.AdminNotification, error)

	// ListNotifications returns the admin audit records, newest first.
	ListNotifications(ctx context.Context) ([]*entity.AdminNotification, error)

	// GetNotification returns one audit record with its delivery stats.
	GetNotification(ctx context.Context, id string) (*AdminNotificationDetail, error)

	// DeleteNotification removes an audit record and its latest user-facing
	// copy.
	DeleteNotification(ctx context.Context, id string) error

	// ResendNotification publishes a fresh user-facing copy of a previously
	// sent notification.
	ResendNotification(ctx context.Context, id string) (*entity.AdminNotification, error)

	// ListReports returns moderation reports, optionally by status.
	ListReports(ctx context.Context, status string) ([]*entity.Report, error)

	// ResolveReport closes a report.
	ResolveReport(ctx context.Context, id string) (*entity.Report, error)
}
