package repository

import (
	"context"
	"errors"

	"sharecare/internal/domain/entity"
)

// ErrReportNotFound is returned when a report document is absent.
var ErrReportNotFound = errors.New("report not found")

// EngagementRepository defines the interface for the likes, favorites and
// reports collections.
type EngagementRepository interface {
	// CreateLike records a like for an item by a user.
	CreateLike(ctx context.Context, like *entity.Like) error

	// DeleteLike removes a user's like on an item, reporting whether one
	// existed.
	DeleteLike(ctx context.Context, itemID, uid string) (bool, error)

	// HasLike reports whether the user has liked the item.
	HasLike(ctx context.Context, itemID, uid string) (bool, error)

	// DeleteLikesByItem removes every like attached to the item.
	DeleteLikesByItem(ctx context.Context, itemID string) error

	// DeleteLikesByUser removes every like made by the user.
	DeleteLikesByUser(ctx context.Context, uid string) error

	// CreateFavorite records a favorite for an item by a user.
	CreateFavorite(ctx context.Context, favorite *entity.Favorite) error

	// DeleteFavorite removes a user's favorite on an item, reporting whether
	// one existed.
	DeleteFavorite(ctx context.Context, itemID, uid string) (bool, error)

	// HasFavorite reports whether the user has favorited the item.
	HasFavorite(ctx context.Context, itemID, uid string) (bool, error)

	// ListFavoritesByUser retrieves the user's favorites, newest first.
	ListFavoritesByUser(ctx context.Context, uid string) ([]*entity.Favorite, error)

	// CreateReport persists a new report and fills in its generated document
	// ID.
	CreateReport(ctx context.Context, report *entity.Report) error

	// FindReportByID retrieves a report by its document ID.
	FindReportByID(ctx context.Context, id string) (*entity.Report, error)

	// ListReports retrieves reports, optionally filtered by status.
	ListReports(ctx context.Context, status entity.ReportStatus) ([]*entity.Report, error)

	// UpdateReport applies targeted field updates to a report document.
	UpdateReport(ctx context.Context, id string, updates map[string]any) error
}
