package site

import (
	"io/fs"
	"log/slog"

	"github.com/openauthenticator/site/internal"
	"github.com/openauthenticator/site/pkg/health"
	"github.com/openauthenticator/site/pkg/storage"
)

// App options

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes.
// Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithPublicAssets serves files from fsys under baseURL ahead of routing.
// With fallThrough set, requests for files that do not exist continue to
// the router; otherwise they answer 404.
//
// Example:
//
//	site.New(
//	    site.WithPublicAssets("/", os.DirFS("public"), true),
//	)
func WithPublicAssets(baseURL string, fsys fs.FS, fallThrough bool) Option {
	return internal.WithPublicAssets(baseURL, fsys, fallThrough)
}

// WithStorageNamespace mounts a storage backend under name. Handlers reach
// it through Context.Storage(name). Mounting the same name twice panics.
func WithStorageNamespace(name string, s storage.Storage) Option {
	return internal.WithStorageNamespace(name, s)
}

// WithErrorHandler sets a custom error handler for handler errors.
// Called when a handler returns a non-nil error.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks enables health check endpoints with optional configuration.
// Liveness (/health/live): Always returns OK if process is running.
// Readiness (/health/ready): Runs all configured checks.
//
// Example:
//
//	site.WithHealthChecks(
//	    site.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithLogger creates a JSON logger tagged with a component name.
// Extractors pull values from context (e.g. request_id).
func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// Health check options

// WithLivenessPath sets a custom liveness endpoint path.
// Defaults to "/health/live".
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath sets a custom readiness endpoint path.
// Defaults to "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithReadinessCheck adds a named readiness check.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}
