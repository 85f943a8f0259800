package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/domain/repository"
)

// trackingRepository implements the repository.TrackingRepository interface.
type trackingRepository struct {
	client *firestore.Client
}

// NewTrackingRepository is the constructor for trackingRepository.
func NewTrackingRepository(client *firestore.Client) repository.TrackingRepository {
	return &trackingRepository{
		client: client,
	}
}

// Create persists a new tracking record and fills in its generated document ID.
func (repo *trackingRepository) Create(ctx context.Context, record *entity.TrackingRecord) error {
	ref, _, err := repo.client.Collection(trackingCollection).Add(ctx, record)
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create tracking record")
	}
	record.ID = ref.ID

	return nil
}

// FindByTrackingID retrieves the record carrying the given tracking ID.
func (repo *trackingRepository) FindByTrackingID(ctx context.Context, trackingID string) (*entity.TrackingRecord, error) {
	return repo.findOne(ctx, "tracking_id", trackingID)
}

// FindByReservationID retrieves the record attached to a reservation.
func (repo *trackingRepository) FindByReservationID(ctx context.Context, reservationID string) (*entity.TrackingRecord, error) {
	return repo.findOne(ctx, "reservation_id", reservationID)
}

// ListByUser retrieves every record where the user is donor or requester.
// The store cannot express a disjunction across fields, so two queries are
// merged with the donor side winning duplicates.
func (repo *trackingRepository) ListByUser(ctx context.Context, uid string) ([]*entity.TrackingRecord, error) {
	seen := make(map[string]bool)

	var records []*entity.TrackingRecord
	for _, field := range []string{"donor_id", "requester_id"} {
		iter := repo.client.Collection(trackingCollection).Where(field, "==", uid).Documents(ctx)

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()

				return nil, domainerrors.NewStoreExecuteError(err, "failed to list tracking records")
			}

			if seen[doc.Ref.ID] {
				continue
			}
			seen[doc.Ref.ID] = true

			record, err := decodeTracking(doc)
			if err != nil {
				iter.Stop()

				return nil, err
			}
			records = append(records, record)
		}
		iter.Stop()
	}

	return records, nil
}

// Update applies targeted field updates to the record carrying the given
// tracking ID.
func (repo *trackingRepository) Update(ctx context.Context, trackingID string, updates map[string]any) error {
	record, err := repo.FindByTrackingID(ctx, trackingID)
	if err != nil {
		return err
	}

	ref := repo.client.Collection(trackingCollection).Doc(record.ID)
	if _, err := ref.Update(ctx, toFirestoreUpdates(updates)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to update tracking record")
	}

	return nil
}

func (repo *trackingRepository) findOne(ctx context.Context, field, value string) (*entity.TrackingRecord, error) {
	iter := repo.client.Collection(trackingCollection).Where(field, "==", value).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, repository.ErrTrackingNotFound
	}
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to find tracking record")
	}

	return decodeTracking(doc)
}

func decodeTracking(doc *firestore.DocumentSnapshot) (*entity.TrackingRecord, error) {
	var record entity.TrackingRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to decode tracking record")
	}
	record.ID = doc.Ref.ID

	return &record, nil
}
