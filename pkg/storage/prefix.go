package storage

import (
	"context"
	"io"
	"io/fs"
	"path"
)

// Prefixed scopes a backend to the keys below prefix. Keys passed to it
// must be valid relative paths, so they cannot escape the prefix.
type Prefixed struct {
	s      Storage
	prefix string
}

// WithPrefix returns s scoped to prefix. An empty prefix returns s itself.
func WithPrefix(s Storage, prefix string) Storage {
	if prefix == "" || prefix == "." {
		return s
	}
	return &Prefixed{s: s, prefix: path.Clean(prefix)}
}

func (p *Prefixed) key(key string) (string, error) {
	if !fs.ValidPath(key) || key == "." {
		return "", ErrInvalidKey
	}
	return path.Join(p.prefix, key), nil
}

func (p *Prefixed) Put(ctx context.Context, r io.Reader, size int64, opts ...Option) (*FileInfo, error) {
	o := buildPutOptions("", opts)
	if o.key == "" {
		return nil, ErrMissingKey
	}
	full, err := p.key(o.key)
	if err != nil {
		return nil, err
	}
	return p.s.Put(ctx, r, size, append(opts, WithKey(full))...)
}

func (p *Prefixed) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	full, err := p.key(key)
	if err != nil {
		return nil, err
	}
	return p.s.Get(ctx, full)
}

func (p *Prefixed) Delete(ctx context.Context, key string) error {
	full, err := p.key(key)
	if err != nil {
		return err
	}
	return p.s.Delete(ctx, full)
}
