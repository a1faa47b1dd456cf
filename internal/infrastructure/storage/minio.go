package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rudraa01/it-submission/internal/core/domain"
)

// Config captures the settings for the S3-compatible image host.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicBaseURL is the externally reachable base for object URLs,
	// e.g. "http://localhost:9000". Defaults to the endpoint scheme+host.
	PublicBaseURL string
}

// ImageStore stores task screenshots in an S3-compatible bucket. The object
// key doubles as the deletion handle recorded on the task.
type ImageStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewImageStore connects to the object store and ensures the bucket exists.
func NewImageStore(ctx context.Context, cfg Config) (*ImageStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	ensureCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ensureCtx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ensureCtx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}

	return &ImageStore{client: client, bucket: cfg.Bucket, baseURL: baseURL}, nil
}

// Upload stores the image under a fresh object key and returns the public
// URL plus the key as deletion handle.
func (s *ImageStore) Upload(ctx context.Context, r io.Reader, size int64, contentType, filename string) (*domain.Screenshot, error) {
	objectName := fmt.Sprintf("%s_%s", primitive.NewObjectID().Hex(), filename)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, fmt.Errorf("minio put object: %w", err)
	}

	return &domain.Screenshot{
		URL:      fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, objectName),
		PublicID: objectName,
	}, nil
}

// Remove deletes an uploaded image by its object key.
func (s *ImageStore) Remove(ctx context.Context, publicID string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio remove object: %w", err)
	}
	return nil
}

// Ping verifies the bucket is still reachable, for readiness probes.
func (s *ImageStore) Ping(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucket)
	return err
}
