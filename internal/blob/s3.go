package blob

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Ensure S3Store implements Store
var _ Store = (*S3Store)(nil)

// S3Store stores blobs in an S3-compatible bucket (AWS S3, DigitalOcean
// Spaces, MinIO). Objects are uploaded publicly readable so image URLs
// can go straight into recipe pages.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
	// baseURL is the public URL of the bucket, without trailing slash.
	baseURL string
}

// S3Config carries the settings for an S3-backed blob store.
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// Prefix is an optional key prefix inside the bucket, e.g. "uploads".
	Prefix string
}

// NewS3Store creates an S3Store against the configured endpoint.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := strings.TrimSuffix(cfg.Endpoint, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	} else {
		baseURL = baseURL + "/" + cfg.Bucket
	}

	return &S3Store{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  strings.Trim(cfg.Prefix, "/"),
		baseURL: baseURL,
	}, nil
}

// Put uploads the blob and returns its public object URL.
func (s *S3Store) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	objectKey := s.objectKey(key)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(objectKey),
		Body:         r,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
		ACL:          types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload blob: %w", err)
	}

	return s.baseURL + "/" + objectKey, nil
}

// Delete removes the object behind a reference returned by Put.
// S3 DeleteObject succeeds for missing keys, which matches the Store
// contract.
func (s *S3Store) Delete(ctx context.Context, ref string) error {
	objectKey := s.objectKey(path.Base(ref))

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

func (s *S3Store) objectKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}
