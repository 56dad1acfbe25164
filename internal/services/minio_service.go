package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"reviewboard-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// presignExpiry bounds how long a generated upload URL stays valid.
const presignExpiry = 15 * time.Minute

// MinIOService hands out presigned PUT URLs so the client can upload review
// thumbnails directly to object storage.
type MinIOService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURL,
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure thumbnail bucket, continuing")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created")
	}

	// Thumbnails are fetched straight from the bucket by the browser, so the
	// bucket needs anonymous read.
	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	return nil
}

// PresignThumbnailUpload returns a short-lived PUT URL plus the public URL
// the uploaded thumbnail will be served from. The stored object name gets a
// random suffix so repeated uploads of the same filename never collide.
func (s *MinIOService) PresignThumbnailUpload(filename string) (string, string, error) {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	objectName := fmt.Sprintf("%s_%s%s", base, uuid.New().String()[:8], ext)

	presignedURL, err := s.client.PresignedPutObject(
		context.Background(),
		s.bucket,
		objectName,
		presignExpiry,
	)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"filename": filename,
		"object":   objectName,
	}).Info("Generated thumbnail upload URL")

	return presignedURL.String(), s.publicObjectURL(objectName), nil
}

// DeleteThumbnail removes an uploaded object. Accepts either a bare object
// name or a full public URL.
func (s *MinIOService) DeleteThumbnail(object string) error {
	if strings.Contains(object, "/") {
		parts := strings.Split(object, "/")
		object = parts[len(parts)-1]
	}
	if idx := strings.Index(object, "?"); idx != -1 {
		object = object[:idx]
	}

	err := s.client.RemoveObject(context.Background(), s.bucket, object, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("object", object).Error("Failed to delete thumbnail")
		return fmt.Errorf("failed to delete thumbnail: %w", err)
	}

	s.logger.WithField("object", object).Info("Thumbnail deleted")
	return nil
}

func (s *MinIOService) publicObjectURL(objectName string) string {
	base := strings.TrimSuffix(s.publicURL, "/")
	if base == "" {
		scheme := "http"
		if s.client.EndpointURL().Scheme == "https" {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, s.client.EndpointURL().Host, s.bucket)
	}
	return base + "/" + objectName
}
