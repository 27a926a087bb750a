package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/verandalabs/veranda-stays/backend/internal/config"
	apperrors "github.com/verandalabs/veranda-stays/backend/internal/errors"
	"github.com/verandalabs/veranda-stays/backend/internal/storage"
)

// Service implements the ObjectStorage interface against S3 or any
// S3-compatible endpoint
type Service struct {
	client   *awss3.S3
	uploader *s3manager.Uploader
	bucket   string
	region   string
	endpoint string
	logger   storage.Logger
}

// NewService creates a new S3 service instance
func NewService(cfg *config.S3Config, logger storage.Logger) (*Service, error) {
	endpoint := endpointURL(cfg)

	awsConfig := &aws.Config{
		Region:      aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}
	if endpoint != "" {
		// Compatible providers (MinIO, Spaces) route by path, not subdomain.
		awsConfig.Endpoint = aws.String(endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %v", err)
	}

	return &Service{
		client:   awss3.New(sess),
		uploader: s3manager.NewUploader(sess),
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: endpoint,
		logger:   logger,
	}, nil
}

// UploadStream uploads an object to S3 and returns its public URL
func (s *Service) UploadStream(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	input := &s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   reader,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	result, err := s.uploader.UploadWithContext(ctx, input)
	if err != nil {
		return "", apperrors.NewStorageError("failed to upload object to S3", err)
	}

	s.logger.LogInfo("Object uploaded", map[string]interface{}{
		"key":  key,
		"size": size,
	})

	if result.Location != "" {
		return result.Location, nil
	}
	return s.ObjectURL(key), nil
}

// Delete removes an object from S3
func (s *Service) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return apperrors.NewStorageError("failed to delete object from S3", err)
	}
	return nil
}

// ObjectURL returns the public URL of an object
func (s *Service) ObjectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// Close closes any open S3 connections and resources
func (s *Service) Close() error {
	return nil
}

// endpointURL normalizes a configured endpoint to include a scheme
func endpointURL(cfg *config.S3Config) string {
	if cfg.Endpoint == "" {
		return ""
	}
	if strings.Contains(cfg.Endpoint, "://") {
		return cfg.Endpoint
	}
	scheme := "https"
	if !cfg.UseSSL {
		scheme = "http"
	}
	return scheme + "://" + cfg.Endpoint
}
