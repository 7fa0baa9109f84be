package asset

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client defines the S3 operations used by the S3 loader.
type S3Client interface {
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
}

// S3Config contains configuration for serving assets from a bucket.
type S3Config struct {
	Bucket         string `env:"ASSETS_S3_BUCKET"`
	Region         string `env:"ASSETS_S3_REGION"`
	Prefix         string `env:"ASSETS_S3_PREFIX"`
	AccessKeyID    string `env:"ASSETS_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"ASSETS_S3_SECRET_KEY"`
	Endpoint       string `env:"ASSETS_S3_ENDPOINT"` // For S3-compatible services like MinIO
	ForcePathStyle bool   `env:"ASSETS_S3_FORCE_PATH_STYLE" envDefault:"false"`
}

// S3Option configures the S3 loader.
type S3Option func(*s3Options)

type s3Options struct {
	httpClient      *http.Client
	s3Client        S3Client
	s3ConfigOptions []func(*config.LoadOptions) error
}

// WithS3Client sets a pre-configured S3 client, typically a mock in tests.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.s3Client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

type s3Loader struct {
	client S3Client
	bucket string
	prefix string
}

// S3 serves assets from an S3 bucket, optionally below a key prefix.
func S3(ctx context.Context, cfg S3Config, opts ...S3Option) (Loader, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.s3Client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		if options.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
		}
		awsOptions = append(awsOptions, options.s3ConfigOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(o *s3aws.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return &s3Loader{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
	}, nil
}

func (l *s3Loader) Load(ctx context.Context, name string) (*Asset, error) {
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	if clean == "." {
		clean = indexFile
	}

	out, err := l.get(ctx, clean)
	if errors.Is(err, ErrNotFound) && path.Ext(clean) == "" {
		// Extensionless names may be directories; serve their index like FS.
		clean = path.Join(clean, indexFile)
		out, err = l.get(ctx, clean)
	}
	if err != nil {
		return nil, err
	}

	a := &Asset{
		Name:        clean,
		Content:     out.Body,
		Length:      aws.ToInt64(out.ContentLength),
		ContentType: aws.ToString(out.ContentType),
	}
	if out.ContentLength == nil {
		a.Length = -1
	}
	if a.ContentType == "" {
		a.ContentType = ContentType(clean)
	}
	if out.LastModified != nil {
		a.ModTime = *out.LastModified
	}
	return a, nil
}

func (l *s3Loader) get(ctx context.Context, name string) (*s3aws.GetObjectOutput, error) {
	key := name
	if l.prefix != "" {
		key = path.Join(l.prefix, name)
	}

	out, err := l.client.GetObject(ctx, &s3aws.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyS3Error(err, key)
	}
	return out, nil
}

// classifyS3Error maps missing objects to ErrNotFound and keeps every other
// failure intact for the exception handler.
func classifyS3Error(err error, key string) error {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		default:
			return fmt.Errorf("get object %s failed (code: %s): %w", key, apiErr.ErrorCode(), err)
		}
	}

	return fmt.Errorf("get object %s failed: %w", key, err)
}
