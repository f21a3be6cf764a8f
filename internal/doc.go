// Package internal provides the core types and implementation for the site server.
//
// This package is internal and should not be used directly. Import
// "github.com/openauthenticator/site" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: Orchestrates HTTP routing, public assets, storage namespaces and graceful shutdown
//   - Context: Request/response access, storage lookup and logging helpers
//   - Router: Interface handlers use to declare routes
//   - Handler: Implemented by types that declare routes on a router
//   - HandlerFunc: Signature for route handlers that return errors
//   - Middleware: Wraps handlers to add cross-cutting concerns
//   - ErrorHandler: Custom error handling function for handler errors
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to storage
// backends and counter stores:
//
//	func (h *Handler) get(c site.Context) error {
//	    s, err := c.Storage(h.namespace)
//	    if err != nil {
//	        return err
//	    }
//	    rc, err := s.Get(c, key)
//	    ...
//	}
//
// # Public Assets and Storage Namespaces
//
// WithPublicAssets mounts a read-only file facade in front of the router.
// With fallthrough enabled, missing files reach the routes registered under
// the same prefix, which usually read from a storage namespace mounted with
// WithStorageNamespace.
//
// # Error Handling
//
// Handlers return errors. An *HTTPError is rendered with its own status code
// and message, anything else becomes a 500 and is logged. WithErrorHandler
// replaces this behavior entirely.
//
// # Server Runtime
//
//	err := app.Run(":8080",
//	    internal.Logger(log),
//	    internal.ShutdownHook(redis.Shutdown(client)),
//	)
package internal
