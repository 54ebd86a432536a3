package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/shammazp/restaurant-backend/internal/config"
	apperrors "github.com/shammazp/restaurant-backend/internal/errors"
)

// S3Store talks to any S3-compatible bucket through the minio client.
type S3Store struct {
	client *minio.Client
	bucket string
	cdnURL string
}

func NewS3Store(cfg config.S3Config) (*S3Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("creating s3 client: %w", err)
	}

	cdnURL := cfg.CDNURL
	if cdnURL == "" {
		cdnURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3Store{
		client: client,
		bucket: cfg.Bucket,
		cdnURL: strings.TrimRight(cdnURL, "/"),
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key string, body []byte, contentType string) (*PutResult, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "max-age=31536000",
		UserMetadata: map[string]string{
			"uploaded-by": "restaurant-api",
		},
	})
	if err != nil {
		return nil, apperrors.NewStorageError("putting object "+key, err)
	}

	return &PutResult{
		URL: s.cdnURL + "/" + key,
		Key: key,
	}, nil
}

// Delete is idempotent: S3 removal of a missing key is not an error, and the
// minio client surfaces it as success, which cleanup callers depend on.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
			return nil
		}
		return apperrors.NewStorageError("deleting object "+key, err)
	}
	return nil
}
