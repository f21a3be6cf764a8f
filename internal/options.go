package internal

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/openauthenticator/site/pkg/logger"
	"github.com/openauthenticator/site/pkg/storage"
)

// Option configures the application.
type Option func(*App)

// publicAsset is a static file facade mounted in front of the router.
type publicAsset struct {
	middleware func(http.Handler) http.Handler
}

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
// Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithPublicAssets serves the files of fsys under baseURL.
// A path ending in "/" serves that directory's index.html; listings are
// never produced. When fallThrough is true, requests for
// files that do not exist continue to the router instead of answering 404,
// so route handlers can share the same prefix.
//
// Example:
//
//	site.New(
//	    site.WithPublicAssets("/_app/", os.DirFS(out), true),
//	)
func WithPublicAssets(baseURL string, fsys fs.FS, fallThrough bool) Option {
	prefix := "/" + strings.Trim(baseURL, "/") + "/"
	if prefix == "//" {
		prefix = "/"
	}

	return func(a *App) {
		mw := func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if (r.Method != http.MethodGet && r.Method != http.MethodHead) || !strings.HasPrefix(r.URL.Path, prefix) {
					next.ServeHTTP(w, r)
					return
				}

				name := strings.TrimPrefix(r.URL.Path, prefix)
				if name == "" || strings.HasSuffix(name, "/") {
					name += "index.html"
				}
				if !isServableFile(fsys, name) {
					if fallThrough {
						next.ServeHTTP(w, r)
						return
					}
					http.NotFound(w, r)
					return
				}

				w.Header().Set("Cache-Control", "public, max-age=3600")
				w.Header().Set("X-Content-Type-Options", "nosniff")
				http.ServeFileFS(w, r, fsys, name)
			})
		}
		a.publicAssets = append(a.publicAssets, publicAsset{middleware: mw})
	}
}

// isServableFile reports whether name is a regular file inside fsys.
func isServableFile(fsys fs.FS, name string) bool {
	if !fs.ValidPath(name) {
		return false
	}
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// WithStorageNamespace mounts a storage backend under a name.
// Handlers reach it through c.Storage(name).
//
// Example:
//
//	site.New(
//	    site.WithStorageNamespace("get-info-from-parent", storage.NewDir(out)),
//	)
func WithStorageNamespace(name string, s storage.Storage) Option {
	return func(a *App) {
		if err := a.namespaces.Mount(name, s); err != nil {
			panic(err)
		}
	}
}

// WithErrorHandler sets a custom error handler for handler errors.
// Called when a handler returns a non-nil error.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks enables health check endpoints with optional configuration.
// Liveness (/health/live): Always returns OK if process is running.
// Readiness (/health/ready): Runs all configured checks.
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogger creates a logger with a component name and optional extractors.
// The component name is added to every log entry for easy filtering.
func WithLogger(component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(extractors...).With("component", component)
	}
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}
