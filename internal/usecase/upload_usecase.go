package usecase

import "context"

// UploadUsecase defines the interface for the standalone file upload
// endpoint.
type UploadUsecase interface {
	// Upload stores one image and returns its public URL.
	Upload(ctx context.Context, upload *ImageUpload) (string, error)
}
