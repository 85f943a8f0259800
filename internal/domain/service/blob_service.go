package service

import "context"

// BlobService defines the interface for binary object storage used for item
// and chat images.
type BlobService interface {
	// Put stores the payload under a generated key and returns its public URL.
	Put(ctx context.Context, data []byte, filename, contentType string) (string, error)

	// Delete removes the object behind a previously returned URL. Unknown
	// URLs are ignored.
	Delete(ctx context.Context, url string) error
}
