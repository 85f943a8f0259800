package repository

import (
	"context"
	"errors"

	"sharecare/internal/domain/entity"
)

// ErrItemNotFound is returned when an item document is absent.
var ErrItemNotFound = errors.New("item not found")

// ItemFilter narrows an item listing. Zero values mean "no constraint"; any
// further filtering (text search, radius) happens in application memory.
type ItemFilter struct {
	Category string
	Status   entity.ItemStatus
	DonorID  string
}

// ItemRepository defines the interface for the items collection.
type ItemRepository interface {
	// Create persists a new item and fills in its generated document ID.
	Create(ctx context.Context, item *entity.Item) error

	// FindByID retrieves an item by its document ID.
	FindByID(ctx context.Context, id string) (*entity.Item, error)

	// List retrieves items matching the filter.
	List(ctx context.Context, filter ItemFilter) ([]*entity.Item, error)

	// Update applies targeted field updates to an item document.
	Update(ctx context.Context, id string, updates map[string]any) error

	// Delete removes the item document.
	Delete(ctx context.Context, id string) error
}
