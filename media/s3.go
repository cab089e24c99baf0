package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// S3Options configures the S3-backed media store.
type S3Options struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint overrides the AWS endpoint for S3-compatible providers.
	Endpoint string
	// PublicBaseURL, when set, is used to build the reference returned by
	// Save (e.g. a CDN or custom domain fronting the bucket).
	PublicBaseURL string
}

// S3Store keeps uploads in an object storage bucket under the uploads/
// key prefix.
type S3Store struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string
	logger  zerolog.Logger
}

func NewS3Store(opts S3Options) (*S3Store, error) {
	if opts.Bucket == "" || opts.Region == "" || opts.AccessKeyID == "" || opts.SecretAccessKey == "" {
		return nil, fmt.Errorf("incomplete s3 config: bucket/region/access_key_id/secret_access_key are required")
	}

	s3Opts := s3.Options{
		Region:      opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
	}
	if opts.Endpoint != "" {
		s3Opts.BaseEndpoint = aws.String(opts.Endpoint)
		s3Opts.UsePathStyle = true
	}

	return &S3Store{
		client:  s3.New(s3Opts),
		bucket:  opts.Bucket,
		region:  opts.Region,
		baseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
		logger:  log.With().Str("component", "s3Store").Logger(),
	}, nil
}

func (s *S3Store) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	key := "uploads/" + uuid.NewString() + strings.ToLower(filepath.Ext(originalName))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", err
	}

	if s.baseURL != "" {
		return s.baseURL + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func (s *S3Store) Delete(ctx context.Context, ref string) error {
	key := s.keyFromRef(ref)
	if key == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to delete media object")
	}
	return err
}

func (s *S3Store) keyFromRef(ref string) string {
	name := path.Base(ref)
	if name == "." || name == "/" || name == "" {
		return ""
	}
	return "uploads/" + name
}
