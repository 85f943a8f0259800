package impl

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	domainerrors "sharecare/internal/domain/errors"
	"sharecare/internal/domain/service"
	"sharecare/internal/usecase"
)

type uploadService struct {
	blobService service.BlobService
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	BlobService service.BlobService
}

// NewUploadService creates a new upload service instance
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{blobService: params.BlobService}
}

// Upload stores one image and returns its public URL.
func (s *uploadService) Upload(ctx context.Context, upload *usecase.ImageUpload) (string, error) {
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return "", domainerrors.ErrInvalidFileType
	}

	url, err := s.blobService.Put(ctx, upload.Data, upload.Filename, upload.ContentType)
	if err != nil {
		return "", errors.Wrap(err, "failed to store upload")
	}

	return url, nil
}
