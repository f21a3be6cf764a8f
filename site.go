package site

import (
	"github.com/openauthenticator/site/internal"
	"github.com/openauthenticator/site/pkg/logger"
)

// Type aliases - public API
type (
	// App orchestrates the application lifecycle.
	// It manages HTTP routing, middleware, and graceful shutdown.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// HTTPError is an error carrying an HTTP status code.
	HTTPError = internal.HTTPError

	// ResponseWriter wraps http.ResponseWriter and tracks status and size.
	ResponseWriter = internal.ResponseWriter

	// ContextExtractor extracts a slog attribute from context.
	// Used with WithLogger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor
)

// New creates a new application with the given options.
// The App is immutable after creation.
//
// Example:
//
//	app := site.New(
//	    site.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    site.WithStorageNamespace(assets.DefaultNamespace, storage.NewDir(out)),
//	    site.WithHandlers(assets.NewHandler("", "")),
//	)
//
//	err := app.Run(":8080", site.Logger(log))
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// HTTP errors

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(code int, message string) *HTTPError {
	return internal.NewHTTPError(code, message)
}

// AsHTTPError returns the HTTPError in err's chain, or nil.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// ErrNotFound returns a 404 HTTPError.
func ErrNotFound(message string) *HTTPError {
	return internal.ErrNotFound(message)
}

// ErrBadRequest returns a 400 HTTPError.
func ErrBadRequest(message string) *HTTPError {
	return internal.ErrBadRequest(message)
}
