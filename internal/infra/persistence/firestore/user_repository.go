package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"sharecare/internal/domain/entity"
	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/domain/repository"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{
		client: client,
	}
}

// Create persists a new user profile keyed by its uid.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := repo.client.Collection(usersCollection).Doc(user.UID).Set(ctx, user); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create user")
	}

	return nil
}

// FindByUID retrieves a user by the identity provider uid.
func (repo *userRepository) FindByUID(ctx context.Context, uid string) (*entity.User, error) {
	doc, err := repo.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find user")
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to decode user")
	}
	user.UID = doc.Ref.ID

	return &user, nil
}

// FindAll retrieves every user document.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	iter := repo.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	var users []*entity.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to list users")
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, domainerrors.NewStoreExecuteError(err, "failed to decode user")
		}
		user.UID = doc.Ref.ID
		users = append(users, &user)
	}

	return users, nil
}

// Update applies targeted field updates to a user document.
func (repo *userRepository) Update(ctx context.Context, uid string, updates map[string]any) error {
	if _, err := repo.client.Collection(usersCollection).Doc(uid).Update(ctx, toFirestoreUpdates(updates)); err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update user")
	}

	return nil
}

// Delete removes the user document.
func (repo *userRepository) Delete(ctx context.Context, uid string) error {
	if _, err := repo.client.Collection(usersCollection).Doc(uid).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete user")
	}

	return nil
}

// toFirestoreUpdates converts a field map into the store's update list.
func toFirestoreUpdates(updates map[string]any) []firestore.Update {
	out := make([]firestore.Update, 0, len(updates))
	for path, value := range updates {
		out = append(out, firestore.Update{Path: path, Value: value})
	}

	return out
}
