package upload

import (
	"context"
	"io"

	"transcribeflow/internal/s3"
)

// S3API is the slice of the S3 client the uploader needs, kept as an
// interface for dependency injection and testing.
type S3API interface {
	PutObject(ctx context.Context, key string, body io.Reader) error
	CreateMultipartUpload(ctx context.Context, key string) (string, error)
	UploadPart(ctx context.Context, key, uploadID string, partNumber int32, body io.Reader) (string, error)
	CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []s3.PartInfo) error
	AbortMultipartUpload(ctx context.Context, key, uploadID string) error
	DeleteObject(ctx context.Context, key string) error
}
