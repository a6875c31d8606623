package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"poros-portal/config"
)

// ObjectStore is the write-only contract the upload pipeline needs.
// Keys are opaque; nothing in the portal reads objects back.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// MinioStore writes objects to an S3-compatible bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore builds a store from config. Access keys come from the
// STORAGE_ACCESS_KEY_ID and STORAGE_SECRET_ACCESS_KEY environment variables.
func NewMinioStore(cfg config.StorageConfig) (*MinioStore, error) {
	accessKey := os.Getenv("STORAGE_ACCESS_KEY_ID")
	secretKey := os.Getenv("STORAGE_SECRET_ACCESS_KEY")
	if accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("STORAGE_ACCESS_KEY_ID and STORAGE_SECRET_ACCESS_KEY are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is not configured")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init object store client: %w", err)
	}

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

func (s *MinioStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

// CheckPublicBaseURL reports configuration problems with the public base URL.
// A misconfigured base means uploads succeed but images never render
// publicly, so this is checked once at startup (warn, don't crash).
func CheckPublicBaseURL(cfg config.StorageConfig) []string {
	var warnings []string
	base := strings.TrimSpace(cfg.PublicBaseURL)
	if base == "" {
		warnings = append(warnings, "storage public_base_url is not set; uploaded image URLs will be unusable")
		return warnings
	}
	if cfg.Endpoint != "" && strings.Contains(base, cfg.Endpoint) {
		warnings = append(warnings,
			"storage public_base_url points at the storage API endpoint; use the public-read host or images will not load")
	}
	return warnings
}
