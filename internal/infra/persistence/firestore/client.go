// Package firestore implements the repository interfaces on top of Cloud
// Firestore. Each repository wraps one top-level collection; cross-collection
// consistency is the responsibility of the use cases.
package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"sharecare/config"
)

// Collection names used across the repositories.
const (
	usersCollection              = "users"
	itemsCollection              = "items"
	reservationsCollection       = "reservations"
	trackingCollection           = "tracking"
	chatsCollection              = "chats"
	messagesSubcollection        = "messages"
	notificationsCollection      = "notifications"
	likesCollection              = "likes"
	favoritesCollection          = "favorites"
	reportsCollection            = "reports"
	adminNotificationsCollection = "admin_notifications"
)

// NewClient creates a Firestore client through the Firebase app so the same
// credentials serve both the store and any future Firebase services.
func NewClient(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	if cfg.Firestore == nil || cfg.Firestore.ProjectID == "" {
		return nil, errors.New("firestore project id must be provided")
	}

	fbConfig := &firebase.Config{ProjectID: cfg.Firestore.ProjectID}

	var opts []option.ClientOption
	if cfg.Firestore.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firestore client")
	}

	return client, nil
}

// isNotFound reports whether err is the store's document-missing error.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
