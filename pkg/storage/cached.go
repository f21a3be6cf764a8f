package storage

import (
	"bytes"
	"context"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type cachedObject struct {
	data      []byte
	expiresAt time.Time
}

// Cached is a read-through in-memory cache in front of a slower backend.
// Concurrent misses for the same key share one backend read. Put and Delete
// go straight to the backend and drop the cached copy.
type Cached struct {
	s     Storage
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu    sync.RWMutex
	items map[string]cachedObject
}

// WithCache wraps s with a cache keeping objects for ttl.
// A non-positive ttl disables caching and returns s unchanged.
func WithCache(s Storage, ttl time.Duration) Storage {
	if ttl <= 0 {
		return s
	}
	return &Cached{
		s:     s,
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]cachedObject),
	}
}

func (c *Cached) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if data, ok := c.lookup(key); ok {
		return io.NopCloser(bytes.NewReader(data)), nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		rc, err := c.s.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.items[key] = cachedObject{data: data, expiresAt: c.now().Add(c.ttl)}
		c.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(v.([]byte))), nil
}

func (c *Cached) Put(ctx context.Context, r io.Reader, size int64, opts ...Option) (*FileInfo, error) {
	info, err := c.s.Put(ctx, r, size, opts...)
	if info != nil {
		c.forget(info.Key)
	}
	return info, err
}

func (c *Cached) Delete(ctx context.Context, key string) error {
	c.forget(key)
	return c.s.Delete(ctx, key)
}

// Purge drops every cached object.
func (c *Cached) Purge() {
	c.mu.Lock()
	clear(c.items)
	c.mu.Unlock()
}

func (c *Cached) lookup(key string) ([]byte, bool) {
	c.mu.RLock()
	obj, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || !c.now().Before(obj.expiresAt) {
		return nil, false
	}
	return obj.data, true
}

func (c *Cached) forget(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}
