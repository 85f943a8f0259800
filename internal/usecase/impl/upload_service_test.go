package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "sharecare/internal/domain/errors"
	mockSvc "sharecare/internal/mocks/service"
	"sharecare/internal/usecase"
)

type uploadServiceFixtures struct {
	service     usecase.UploadUsecase
	blobService *mockSvc.MockBlobService
}

func createTestUploadService(t *testing.T) uploadServiceFixtures {
	blobService := mockSvc.NewMockBlobService(t)

	service := NewUploadService(UploadServiceParams{
		BlobService: blobService,
	})

	return uploadServiceFixtures{
		service:     service,
		blobService: blobService,
	}
}

func TestUploadService_Upload_Success(t *testing.T) {
	fx := createTestUploadService(t)
	ctx := context.Background()

	payload := []byte{0xFF, 0xD8, 0xFF}
	fx.blobService.EXPECT().
		Put(ctx, payload, "photo.jpg", "image/jpeg").
		Return("https://cdn.sharecare.app/photo.jpg", nil)

	url, err := fx.service.Upload(ctx, &usecase.ImageUpload{
		Filename:    "photo.jpg",
		ContentType: "image/jpeg",
		Data:        payload,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.sharecare.app/photo.jpg", url)
}

func TestUploadService_Upload_InvalidType(t *testing.T) {
	fx := createTestUploadService(t)
	ctx := context.Background()

	url, err := fx.service.Upload(ctx, &usecase.ImageUpload{
		Filename:    "notes.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidFileType)
	assert.Empty(t, url)
}
