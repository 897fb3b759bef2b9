package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"
)

// DefaultUploadTimeout bounds a single object upload
const DefaultUploadTimeout = 30 * time.Second

// Sink stores an encoded image and returns where it went
type Sink interface {
	Put(ctx context.Context, name string, data []byte, format Format) (string, error)
}

// ObjectName builds a unique name like "<scene>/<uuid>.png"
func ObjectName(sceneName string, format Format) string {
	return path.Join(sceneName, uuid.NewString()+format.Extension())
}

// FileSink writes images below a local directory
type FileSink struct {
	Dir string
}

// Put writes data to Dir/name, creating parent directories
func (s FileSink) Put(_ context.Context, name string, data []byte, _ Format) (string, error) {
	target := filepath.Join(s.Dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	return target, nil
}

// S3Config describes an S3 compatible bucket
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // Empty uses AWS; set for MinIO or other providers
	AccessKey string
	SecretKey string
	Prefix    string // Prepended to every key
}

// S3Sink uploads images to a bucket
type S3Sink struct {
	client  s3iface.S3API
	bucket  string
	prefix  string
	timeout time.Duration
}

// NewS3Sink creates a session from static credentials and returns a sink
func NewS3Sink(cfg S3Config) (*S3Sink, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is not configured")
	}

	awsConfig := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(cfg.Endpoint != ""),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return NewS3SinkWithClient(s3.New(sess), cfg.Bucket, cfg.Prefix), nil
}

// NewS3SinkWithClient wraps an existing client
func NewS3SinkWithClient(client s3iface.S3API, bucket, prefix string) *S3Sink {
	return &S3Sink{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		timeout: DefaultUploadTimeout,
	}
}

// Put uploads data under prefix/name and returns the s3:// URL
func (s *S3Sink) Put(ctx context.Context, name string, data []byte, format Format) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key := path.Join(s.prefix, name)
	size := int64(len(data))
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(format.ContentType()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	slog.Debug("uploaded render", "bucket", s.bucket, "key", key, "bytes", size)
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
