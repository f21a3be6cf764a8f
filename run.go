package site

import (
	"context"
	"log/slog"
	"time"

	"github.com/openauthenticator/site/internal"
)

// Run options

// Logger sets the logger for server lifecycle events.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the maximum time allowed for graceful shutdown.
// Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// StartupHook registers a function to run after the listener is bound and
// before requests are served. A failing hook aborts startup.
func StartupHook(fn func(context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

// ShutdownHook registers a cleanup function run after the server stops.
// Hooks run in registration order and their errors are joined.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets the base context. Cancelling it triggers shutdown.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}
