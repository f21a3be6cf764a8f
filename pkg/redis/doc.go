// Package redis provides Redis client helpers for the counter store and health probes.
//
// It wraps [github.com/redis/go-redis/v9] with connection retries at startup,
// a health check closure and a shutdown hook.
//
// # Configuration
//
// Config is parsed from the environment (REDIS_URL, REDIS_POOL_SIZE,
// REDIS_RETRY_ATTEMPTS, REDIS_RETRY_INTERVAL). Functional options cover the rest:
//
//   - WithPoolSize(n int): Maximum number of connections (default: 10)
//   - WithMinIdleConns(n int): Minimum idle connections (default: 2)
//   - WithRetry(attempts int, interval time.Duration): Startup retries (default: 3, 2s)
//   - WithTimeouts(read, write, dial time.Duration): I/O timeouts (default: 3s, 3s, 5s)
//   - WithLogger(l *slog.Logger): Report failed connection attempts
//
// # Usage
//
//	client, err := redis.Open(ctx, cfg.URL, append(cfg.Options(), redis.WithLogger(log))...)
//	if err != nil {
//		return err
//	}
//
//	app := site.New(site.WithHealthChecks(
//		site.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	))
//	err = app.Run(addr, site.ShutdownHook(redis.Shutdown(client)))
//
// # Errors
//
//   - ErrEmptyConnectionURL: URL is empty
//   - ErrFailedToParseURL: URL has the wrong scheme or cannot be parsed
//   - ErrConnectionFailed: all connection attempts failed
//   - ErrHealthcheckFailed: PING failed during a health check
package redis
