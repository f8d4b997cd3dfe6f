package repository

import (
	"bytes"
	"context"
	"net/url"
	"time"

	"resume-builder/internal/domain"

	"github.com/minio/minio-go/v7"
)

// MinIOArtifacts stores finished exports and hands out presigned links.
type MinIOArtifacts struct {
	client  *minio.Client
	bucket  string
	expires time.Duration
}

func NewMinIOArtifacts(client *minio.Client, bucket string, expires time.Duration) *MinIOArtifacts {
	if expires <= 0 {
		expires = 15 * time.Minute
	}
	return &MinIOArtifacts{client: client, bucket: bucket, expires: expires}
}

func (s *MinIOArtifacts) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return &domain.PersistenceError{Op: "upload artifact", Cause: err}
	}
	return nil
}

// URL returns a presigned GET link that names the download file.
func (s *MinIOArtifacts) URL(ctx context.Context, key, fileName string) (string, error) {
	params := make(url.Values)
	if fileName != "" {
		params.Set("response-content-disposition", `attachment; filename="`+fileName+`"`)
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.expires, params)
	if err != nil {
		return "", &domain.PersistenceError{Op: "presign artifact", Cause: err}
	}
	return u.String(), nil
}
