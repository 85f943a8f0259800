// Package storage implements binary object storage for uploaded images on
// top of gocloud.dev blob buckets, so the same code serves a local directory
// in development and a cloud bucket in production.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"

	"sharecare/config"
	"sharecare/internal/domain/service"
)

// blobService implements the BlobService interface.
type blobService struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobService opens the configured bucket. The returned close function
// must run on shutdown.
func NewBlobService(ctx context.Context, cfg *config.Config) (service.BlobService, func() error, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, nil, fmt.Errorf("storage bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, nil, fmt.Errorf("open bucket %s: %w", cfg.Storage.BucketURL, err)
	}

	svc := &blobService{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.Storage.PublicBaseURL, "/"),
	}

	return svc, bucket.Close, nil
}

// Put stores the payload under a generated key and returns its public URL.
func (s *blobService) Put(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s%s",
		time.Now().UTC().Format("2006/01"),
		uuid.NewString(),
		strings.ToLower(path.Ext(filename)))

	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", fmt.Errorf("write blob %s: %w", key, err)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the object behind a previously returned URL. Unknown URLs
// are ignored.
func (s *blobService) Delete(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, s.publicBaseURL+"/")
	if !ok {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}

	return nil
}
