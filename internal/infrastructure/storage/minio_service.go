package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/you/vaultsvc/domain"
)

// minioAPI is the narrow slice of the MinIO client used here, kept as an
// interface so tests can run without a real server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

type minioClientWrapper struct{ c *minio.Client }

func (w minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return w.c.BucketExists(ctx, bucketName)
}
func (w minioClientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return w.c.MakeBucket(ctx, bucketName, opts)
}
func (w minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return w.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}
func (w minioClientWrapper) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return w.c.RemoveObject(ctx, bucketName, objectName, opts)
}

var _ domain.BlobStorage = (*MinioService)(nil)

// MinioService implements domain.BlobStorage. Public URLs take the shape
// <publicBase>/object/public/<bucket>/<key>.
type MinioService struct {
	api        minioAPI
	bucket     string
	publicBase string
}

// Options configures a MinioService.
type Options struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	UseSSL     bool
	Bucket     string
	PublicBase string
}

// NewMinioService creates a blob storage service backed by a real MinIO
// client and ensures the bucket exists.
func NewMinioService(ctx context.Context, opts Options) (*MinioService, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return NewMinioServiceWithAPI(ctx, minioClientWrapper{c: client}, opts.Bucket, opts.PublicBase)
}

// NewMinioServiceWithAPI allows injecting a mockable API (used in tests).
func NewMinioServiceWithAPI(ctx context.Context, api minioAPI, bucket, publicBase string) (*MinioService, error) {
	s := &MinioService{
		api:        api,
		bucket:     bucket,
		publicBase: publicBase,
	}
	if err := s.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}
	return s, nil
}

func (s *MinioService) ensureBucketExists(ctx context.Context) error {
	exists, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := s.api.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// Upload implements domain.BlobStorage
func (s *MinioService) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.api.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return fmt.Sprintf("%s/object/public/%s/%s", s.publicBase, s.bucket, key), nil
}

// Delete implements domain.BlobStorage
func (s *MinioService) Delete(ctx context.Context, key string) error {
	if err := s.api.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
