package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	BucketAthleteFiles    = "athlete-files"
	BucketProfilePictures = "profile-pictures"
)

// MinIOStorage implements ObjectStorage against any S3-compatible
// endpoint. Buckets are created lazily on first use so an unreachable
// store does not block startup.
type MinIOStorage struct {
	client   *minio.Client
	endpoint string
	useSSL   bool

	mu      sync.Mutex
	ensured map[string]bool
}

func NewMinIOStorage(endpoint, accessKey, secretKey string, useSSL bool) (*MinIOStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &MinIOStorage{
		client:   client,
		endpoint: endpoint,
		useSSL:   useSSL,
		ensured:  map[string]bool{},
	}, nil
}

func (s *MinIOStorage) ensureBucket(ctx context.Context, bucket string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ensured[bucket] {
		return nil
	}
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", bucket, err)
		}
	}
	s.ensured[bucket] = true
	return nil
}

func (s *MinIOStorage) Upload(ctx context.Context, bucket string, key string, r io.Reader, size int64, contentType string) error {
	if err := s.ensureBucket(ctx, bucket); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"Uploaded-At": time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("upload %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (s *MinIOStorage) Download(ctx context.Context, bucket string, key string) (io.ReadCloser, error) {
	object, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("download %s/%s: %w", bucket, key, err)
	}
	return object, nil
}

// PublicURL builds the unauthenticated object URL; buckets holding
// profile and ID pictures are expected to carry a public read policy.
func (s *MinIOStorage) PublicURL(bucket string, key string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, bucket, key)
}

func (s *MinIOStorage) PresignedURL(ctx context.Context, bucket string, key string, ttl time.Duration) (string, error) {
	presigned, err := s.client.PresignedGetObject(ctx, bucket, key, ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign %s/%s: %w", bucket, key, err)
	}
	return presigned.String(), nil
}

func (s *MinIOStorage) Delete(ctx context.Context, bucket string, key string) error {
	if err := s.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete %s/%s: %w", bucket, key, err)
	}
	return nil
}
