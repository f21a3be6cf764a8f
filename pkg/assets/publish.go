package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/openauthenticator/site/pkg/logger"
	"github.com/openauthenticator/site/pkg/storage"
)

// DefaultConcurrency bounds the number of parallel uploads.
const DefaultConcurrency = 8

type publishConfig struct {
	concurrency int
	logger      *slog.Logger
	acl         storage.ACL
}

// PublishOption configures Publish.
type PublishOption func(*publishConfig)

// WithConcurrency sets the maximum number of uploads in flight.
func WithConcurrency(n int) PublishOption {
	return func(c *publishConfig) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLogger sets the logger used to report uploads.
func WithLogger(l *slog.Logger) PublishOption {
	return func(c *publishConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithACL overrides the storage default ACL for every uploaded file.
func WithACL(acl storage.ACL) PublishOption {
	return func(c *publishConfig) {
		c.acl = acl
	}
}

// Publish uploads every regular file under dir to s, keyed by its
// slash-separated path relative to dir and joined to prefix.
// It returns the uploaded files in walk order.
func Publish(ctx context.Context, dir string, s storage.Storage, prefix string, opts ...PublishOption) ([]*storage.FileInfo, error) {
	cfg := &publishConfig{
		concurrency: DefaultConcurrency,
		logger:      logger.NewNope(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidDir, dir)
	}

	var files []string
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDir, err)
	}

	uploaded := make([]*storage.FileInfo, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)

	for i, p := range files {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDir, err)
		}
		key := path.Join(prefix, filepath.ToSlash(rel))

		g.Go(func() error {
			fi, err := upload(gctx, s, p, key, cfg.acl)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			cfg.logger.DebugContext(gctx, "uploaded", "key", fi.Key, "size", fi.Size)
			uploaded[i] = fi
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Join(ErrPublishFailed, err)
	}

	cfg.logger.InfoContext(ctx, "published", "dir", dir, "prefix", prefix, "files", len(uploaded))
	return uploaded, nil
}

func upload(ctx context.Context, s storage.Storage, p, key string, acl storage.ACL) (*storage.FileInfo, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}

	opts := []storage.Option{storage.WithKey(key)}
	if acl != "" {
		opts = append(opts, storage.WithACL(acl))
	}
	return s.Put(ctx, f, st.Size(), opts...)
}
