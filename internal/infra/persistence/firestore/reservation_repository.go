package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/domain/repository"
)

// reservationRepository implements the repository.ReservationRepository interface.
type reservationRepository struct {
	client *firestore.Client
}

// NewReservationRepository is the constructor for reservationRepository.
func NewReservationRepository(client *firestore.Client) repository.ReservationRepository {
	return &reservationRepository{
		client: client,
	}
}

// Create persists a new reservation and fills in its generated document ID.
func (repo *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	ref, _, err := repo.client.Collection(reservationsCollection).Add(ctx, reservation)
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create reservation")
	}
	reservation.ID = ref.ID

	return nil
}

// FindByID retrieves a reservation by its document ID.
func (repo *reservationRepository) FindByID(ctx context.Context, id string) (*entity.Reservation, error) {
	doc, err := repo.client.Collection(reservationsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrReservationNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find reservation")
	}

	return decodeReservation(doc)
}

// List retrieves reservations matching the filter.
func (repo *reservationRepository) List(ctx context.Context, filter repository.ReservationFilter) ([]*entity.Reservation, error) {
	query := repo.client.Collection(reservationsCollection).Query
	if filter.ItemID != "" {
		query = query.Where("item_id", "==", filter.ItemID)
	}
	if filter.RequesterID != "" {
		query = query.Where("user_id", "==", filter.RequesterID)
	}
	if filter.DonorID != "" {
		query = query.Where("donor_id", "==", filter.DonorID)
	}
	if filter.Status != "" {
		query = query.Where("status", "==", string(filter.Status))
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var reservations []*entity.Reservation
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to list reservations")
		}

		reservation, err := decodeReservation(doc)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

// Update applies targeted field updates to a reservation document.
func (repo *reservationRepository) Update(ctx context.Context, id string, updates map[string]any) error {
	if _, err := repo.client.Collection(reservationsCollection).Doc(id).Update(ctx, toFirestoreUpdates(updates)); err != nil {
		if isNotFound(err) {
			return repository.ErrReservationNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update reservation")
	}

	return nil
}

// Delete removes the reservation document.
func (repo *reservationRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.client.Collection(reservationsCollection).Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete reservation")
	}

	return nil
}

func decodeReservation(doc *firestore.DocumentSnapshot) (*entity.Reservation, error) {
	var reservation entity.Reservation
	if err := doc.DataTo(&reservation); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to decode reservation")
	}
	reservation.ID = doc.Ref.ID

	return &reservation, nil
}
