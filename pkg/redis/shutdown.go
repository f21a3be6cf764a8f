package redis

import (
	"context"
	"io"
)

// Shutdown returns a function that closes the Redis client.
// Use with site.ShutdownHook().
//
// Example:
//
//	err := app.Run(addr, site.ShutdownHook(redis.Shutdown(client)))
func Shutdown(client io.Closer) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return client.Close()
	}
}
