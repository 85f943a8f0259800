package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/domain/repository"
)

// itemRepository implements the repository.ItemRepository interface.
type itemRepository struct {
	client *firestore.Client
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(client *firestore.Client) repository.ItemRepository {
	return &itemRepository{
		client: client,
	}
}

// Create persists a new item and fills in its generated document ID.
func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	ref, _, err := repo.client.Collection(itemsCollection).Add(ctx, item)
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create item")
	}
	item.ID = ref.ID

	return nil
}

// FindByID retrieves an item by its document ID.
func (repo *itemRepository) FindByID(ctx context.Context, id string) (*entity.Item, error) {
	doc, err := repo.client.Collection(itemsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrItemNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find item")
	}

	var item entity.Item
	if err := doc.DataTo(&item); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to decode item")
	}
	item.ID = doc.Ref.ID

	return &item, nil
}

// List retrieves items matching the filter.
func (repo *itemRepository) List(ctx context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	query := repo.client.Collection(itemsCollection).Query
	if filter.Category != "" {
		query = query.Where("category", "==", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status", "==", string(filter.Status))
	}
	if filter.DonorID != "" {
		query = query.Where("donor_id", "==", filter.DonorID)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var items []*entity.Item
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to list items")
		}

		var item entity.Item
		if err := doc.DataTo(&item); err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to decode item")
		}
		item.ID = doc.Ref.ID
		items = append(items, &item)
	}

	return items, nil
}

// Update applies targeted field updates to an item document.
func (repo *itemRepository) Update(ctx context.Context, id string, updates map[string]any) error {
	if _, err := repo.client.Collection(itemsCollection).Doc(id).Update(ctx, toFirestoreUpdates(updates)); err != nil {
		if isNotFound(err) {
			return repository.ErrItemNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update item")
	}

	return nil
}

// Delete removes the item document.
func (repo *itemRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(itemsCollection).Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete item")
	}

	return nil
}
