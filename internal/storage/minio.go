// Package storage archives rendered report documents in S3-compatible
// object storage.
package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"audit_funnel_backend/internal/audit/ports"
	"audit_funnel_backend/platform/config"
)

// MinIOArchiver stores report PDFs in a MinIO bucket.
type MinIOArchiver struct {
	client *minio.Client
	bucket string
}

// NewMinIOArchiver creates an archiver against the configured MinIO
// endpoint.
func NewMinIOArchiver(cfg config.MinIOConfig) (*MinIOArchiver, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, fmt.Errorf("MinIO is not configured")
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinIOArchiver{
		client: client,
		bucket: cfg.GetMinioBucketReportPDFs(),
	}, nil
}

// EnsureBucketExists creates the report bucket if it doesn't exist.
func (a *MinIOArchiver) EnsureBucketExists(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
		}
	}

	return nil
}

// ArchiveReportPDF stores a rendered report PDF under the given object
// name, overwriting any previous render.
func (a *MinIOArchiver) ArchiveReportPDF(ctx context.Context, objectName string, pdf []byte) error {
	_, err := a.client.PutObject(ctx, a.bucket, objectName, bytes.NewReader(pdf), int64(len(pdf)), minio.PutObjectOptions{
		ContentType: "application/pdf",
	})
	if err != nil {
		return fmt.Errorf("failed to store object %s: %w", objectName, err)
	}
	return nil
}

var _ ports.ReportArchiver = (*MinIOArchiver)(nil)
