package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"vcg-backend/internal/logger"
)

// S3StorageService stores documents in an S3 bucket with public-read objects.
type S3StorageService struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

// NewS3StorageService creates an S3-backed storage service. Credentials come
// from the default AWS chain (env, shared config, instance role). An optional
// endpoint switches the client to path-style addressing for S3-compatible
// providers.
func NewS3StorageService(ctx context.Context, bucket, region, endpoint string) (*S3StorageService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3StorageService{
		client:   client,
		bucket:   bucket,
		region:   region,
		endpoint: endpoint,
	}, nil
}

// EnsureBucket checks the bucket exists and creates it when missing
func (s *S3StorageService) EnsureBucket(ctx context.Context) error {
	logger.ExternalServiceCall("s3", "HeadBucket", "bucket", s.bucket)
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to check bucket %q: %w", s.bucket, err)
	}

	logger.ExternalServiceCall("s3", "CreateBucket", "bucket", s.bucket)
	input := &s3.CreateBucketInput{Bucket: aws.String(s.bucket)}
	if s.region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(s.region),
		}
	}
	if _, err := s.client.CreateBucket(ctx, input); err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &owned) {
			return nil
		}
		return fmt.Errorf("failed to create bucket %q: %w", s.bucket, err)
	}
	return nil
}

// Put uploads the object with public-read access
func (s *S3StorageService) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	logger.ExternalServiceCall("s3", "PutObject", "bucket", s.bucket, "key", key)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		ACL:           types.ObjectCannedACLPublicRead,
	})
	logger.ExternalServiceResult("s3", "PutObject", err, "key", key)
	if err != nil {
		return fmt.Errorf("failed to upload object %q: %w", key, err)
	}
	return nil
}

// Delete removes the object
func (s *S3StorageService) Delete(ctx context.Context, key string) error {
	logger.ExternalServiceCall("s3", "DeleteObject", "bucket", s.bucket, "key", key)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	logger.ExternalServiceResult("s3", "DeleteObject", err, "key", key)
	if err != nil {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}
	return nil
}

// PublicURL returns the object's bucket URL
func (s *S3StorageService) PublicURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// Open is not served locally for S3; clients fetch the public URL directly
func (s *S3StorageService) Open(key string) (io.ReadCloser, error) {
	return nil, errors.New("s3 storage does not serve reads through the server")
}
