package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/domain/repository"
)

// engagementRepository implements the repository.EngagementRepository
// interface across the likes, favorites and reports collections.
type engagementRepository struct {
	client *firestore.Client
}

// NewEngagementRepository is the constructor for engagementRepository.
func NewEngagementRepository(client *firestore.Client) repository.EngagementRepository {
	return &engagementRepository{
		client: client,
	}
}

// CreateLike records a like for an item by a user.
func (repo *engagementRepository) CreateLike(ctx context.Context, like *entity.Like) error {
	ref, _, err := repo.client.Collection(likesCollection).Add(ctx, like)
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create like")
	}
	like.ID = ref.ID

	return nil
}

// DeleteLike removes a user's like on an item, reporting whether one existed.
func (repo *engagementRepository) DeleteLike(ctx context.Context, itemID, uid string) (bool, error) {
	return repo.deleteJoin(ctx, likesCollection, itemID, uid)
}

// HasLike reports whether the user has liked the item.
func (repo *engagementRepository) HasLike(ctx context.Context, itemID, uid string) (bool, error) {
	return repo.hasJoin(ctx, likesCollection, itemID, uid)
}

// DeleteLikesByItem removes every like attached to the item.
func (repo *engagementRepository) DeleteLikesByItem(ctx context.Context, itemID string) error {
	iter := repo.client.Collection(likesCollection).Where("item_id", "==", itemID).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return domainerrors.NewStoreExecuteError(err, "failed to list likes")
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return domainerrors.NewStoreExecuteError(err, "failed to delete like")
		}
	}

	return nil
}

// DeleteLikesByUser removes every like made by the user.
func (repo *engagementRepository) DeleteLikesByUser(ctx context.Context, uid string) error {
	iter := repo.client.Collection(likesCollection).Where("user_id", "==", uid).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return domainerrors.NewStoreExecuteError(err, "failed to list likes")
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return domainerrors.NewStoreExecuteError(err, "failed to delete like")
		}
	}

	return nil
}

// CreateFavorite records a favorite for an item by a user.
func (repo *engagementRepository) CreateFavorite(ctx context.Context, favorite *entity.Favorite) error {
	ref, _, err := repo.client.Collection(favoritesCollection).Add(ctx, favorite)
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create favorite")
	}
	favorite.ID = ref.ID

	return nil
}

// DeleteFavorite removes a user's favorite on an item, reporting whether one
// existed.
func (repo *engagementRepository) DeleteFavorite(ctx context.Context, itemID, uid string) (bool, error) {
	return repo.deleteJoin(ctx, favoritesCollection, itemID, uid)
}

// HasFavorite reports whether the user has favorited the item.
func (repo *engagementRepository) HasFavorite(ctx context.Context, itemID, uid string) (bool, error) {
	return repo.hasJoin(ctx, favoritesCollection, itemID, uid)
}

// ListFavoritesByUser retrieves the user's favorites, newest first.
func (repo *engagementRepository) ListFavoritesByUser(ctx context.Context, uid string) ([]*entity.Favorite, error) {
	iter := repo.client.Collection(favoritesCollection).
		Where("user_id", "==", uid).
		Documents(ctx)
	defer iter.Stop()

	var favorites []*entity.Favorite
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to list favorites")
		}

		var favorite entity.Favorite
		if err := doc.DataTo(&favorite); err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to decode favorite")
		}
		favorite.ID = doc.Ref.ID
		favorites = append(favorites, &favorite)
	}

	return favorites, nil
}

// CreateReport persists a new report and fills in its generated document ID.
func (repo *engagementRepository) CreateReport(ctx context.Context, report *entity.Report) error {
	ref, _, err := repo.client.Collection(reportsCollection).Add(ctx, report)
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create report")
	}
	report.ID = ref.ID

	return nil
}

// FindReportByID retrieves a report by its document ID.
func (repo *engagementRepository) FindReportByID(ctx context.Context, id string) (*entity.Report, error) {
	doc, err := repo.client.Collection(reportsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrReportNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find report")
	}

	var report entity.Report
	if err := doc.DataTo(&report); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to decode report")
	}
	report.ID = doc.Ref.ID

	return &report, nil
}

// ListReports retrieves reports, optionally filtered by status.
func (repo *engagementRepository) ListReports(ctx context.Context, status entity.ReportStatus) ([]*entity.Report, error) {
	query := repo.client.Collection(reportsCollection).Query
	if status != "" {
		query = query.Where("status", "==", string(status))
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var reports []*entity.Report
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to list reports")
		}

		var report entity.Report
		if err := doc.DataTo(&report); err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to decode report")
		}
		report.ID = doc.Ref.ID
		reports = append(reports, &report)
	}

	return reports, nil
}

// UpdateReport applies targeted field updates to a report document.
func (repo *engagementRepository) UpdateReport(ctx context.Context, id string, updates map[string]any) error {
	if _, err := repo.client.Collection(reportsCollection).Doc(id).Update(ctx, toFirestoreUpdates(updates)); err != nil {
		if isNotFound(err) {
			return repository.ErrReportNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update report")
	}

	return nil
}

func (repo *engagementRepository) hasJoin(ctx context.Context, collection, itemID, uid string) (bool, error) {
	iter := repo.client.Collection(collection).
		Where("item_id", "==", itemID).
		Where("user_id", "==", uid).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, domainerrors.NewStoreExecuteError(err, "failed to query engagement")
	}

	return true, nil
}

func (repo *engagementRepository) deleteJoin(ctx context.Context, collection, itemID, uid string) (bool, error) {
	iter := repo.client.Collection(collection).
		Where("item_id", "==", itemID).
		Where("user_id", "==", uid).
		Documents(ctx)
	defer iter.Stop()

	deleted := false
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, domainerrors.NewStoreExecuteError(err, "failed to query engagement")
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return deleted, domainerrors.NewStoreExecuteError(err, "failed to delete engagement")
		}
		deleted = true
	}

	return deleted, nil
}
