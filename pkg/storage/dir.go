package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir implements Storage on top of a local directory.
// Keys map to slash-separated paths below the root.
type Dir struct {
	root string
}

// NewDir returns a Storage rooted at dir. The directory is not required to
// exist until the first Put.
func NewDir(dir string) *Dir {
	return &Dir{root: dir}
}

// Root returns the directory the storage reads from.
func (d *Dir) Root() string {
	return d.root
}

// Put writes the reader's content to the file named by the key.
// The file is written to a temporary name first and renamed into place.
func (d *Dir) Put(ctx context.Context, r io.Reader, size int64, opts ...Option) (*FileInfo, error) {
	o := buildPutOptions(ACLPrivate, opts)
	if o.key == "" {
		return nil, ErrMissingKey
	}
	name, err := d.path(o.key)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(name), ".put-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if size >= 0 && n != size {
		return nil, fmt.Errorf("%w: wrote %d bytes, expected %d", ErrUploadFailed, n, size)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return &FileInfo{
		Key:         o.key,
		Size:        n,
		ContentType: o.contentType,
		ACL:         o.acl,
	}, nil
}

// Get opens the file named by the key.
func (d *Dir) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	name, err := d.path(key)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	return f, nil
}

// Delete removes the file named by the key. Deleting a missing file is not an error.
func (d *Dir) Delete(ctx context.Context, key string) error {
	name, err := d.path(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	return nil
}

// path validates the key and resolves it below the root.
func (d *Dir) path(key string) (string, error) {
	if key == "" || key == "." || !fs.ValidPath(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(d.root, filepath.FromSlash(key)), nil
}

// Ensure Dir implements Storage.
var _ Storage = (*Dir)(nil)
