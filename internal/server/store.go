package server

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// ObjectStore is the gateway to the bucket backing uploads and downloads.
// Put overwrites silently when the key already exists. Get reads the whole
// object into memory; there is no range or partial read support.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	URL(key string) string
}

type minioStore struct {
	client *minio.Client
	bucket string
	region string
}

// NewMinioStore wraps a MinIO client as an ObjectStore for the given bucket.
func NewMinioStore(client *minio.Client, bucket, region string) ObjectStore {
	return &minioStore{client: client, bucket: bucket, region: region}
}

func (s *minioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

func (s *minioStore) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}
	defer func() { _ = obj.Close() }()

	// GetObject is lazy; Stat forces the first round trip so a missing key
	// fails here instead of midway through the read.
	if _, err := obj.Stat(); err != nil {
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, obj); err != nil {
		return nil, fmt.Errorf("read object %q: %w", key, err)
	}
	return buf.Bytes(), nil
}

// URL returns the shareable address of an uploaded object.
func (s *minioStore) URL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
