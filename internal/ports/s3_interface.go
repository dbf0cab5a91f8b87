package ports

import (
	"context"

	"multipoles-backend/internal/model"
)

// S3Storage : presigned access to the asset bucket
type S3Storage interface {
	PresignUpload(ctx context.Context, folder, filename string) (*model.UploadTarget, error)
	PresignDownload(ctx context.Context, key string) (string, error)
	DeleteByURL(ctx context.Context, fileURL string) error
}
