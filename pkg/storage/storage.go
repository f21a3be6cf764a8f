package storage

import (
	"context"
	"io"
)

// Storage defines the interface for file storage operations.
type Storage interface {
	// Put uploads data from a reader to storage.
	// The key must be set with WithKey. The size parameter is used for
	// the content-length header.
	Put(ctx context.Context, r io.Reader, size int64, opts ...Option) (*FileInfo, error)

	// Get retrieves a file from storage.
	// The caller is responsible for closing the returned reader.
	// Returns ErrNotFound if no file is stored under key.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file from storage.
	Delete(ctx context.Context, key string) error
}

// Config holds S3-compatible storage configuration.
type Config struct {
	// Bucket is the S3 bucket name (required).
	Bucket string `env:"STORAGE_BUCKET"`

	// AccessKey is the AWS access key ID (required).
	AccessKey string `env:"STORAGE_ACCESS_KEY"`

	// SecretKey is the AWS secret access key (required).
	SecretKey string `env:"STORAGE_SECRET_KEY"`

	// Endpoint is the custom S3 endpoint URL (optional, for MinIO or other S3-compatible services).
	Endpoint string `env:"STORAGE_ENDPOINT"`

	// Region is the AWS region (default: us-east-1).
	Region string `env:"STORAGE_REGION" envDefault:"us-east-1"`

	// DefaultACL is the default ACL for uploaded files (default: private).
	DefaultACL ACL `env:"STORAGE_DEFAULT_ACL" envDefault:"private"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"STORAGE_PATH_STYLE" envDefault:"false"`
}

// FileInfo contains metadata about a stored file.
type FileInfo struct {
	// Key is the storage key (path) for the file.
	Key string

	// ContentType is the MIME type.
	ContentType string

	// ACL is the access control setting.
	ACL ACL

	// Size is the file size in bytes.
	Size int64
}

// ACL represents access control levels for stored files.
type ACL string

const (
	// ACLPrivate makes the file accessible only with credentials.
	ACLPrivate ACL = "private"

	// ACLPublicRead makes the file publicly readable.
	ACLPublicRead ACL = "public-read"
)

// DefaultRegion is used when Config.Region is empty.
const DefaultRegion = "us-east-1"

// applyDefaults fills in default values for empty config fields.
func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.DefaultACL == "" {
		c.DefaultACL = ACLPrivate
	}
}

// validate checks that required configuration fields are set.
func (c *Config) validate() error {
	if c.Bucket == "" {
		return ErrInvalidConfig
	}
	if c.AccessKey == "" {
		return ErrInvalidConfig
	}
	if c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}
