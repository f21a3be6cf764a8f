// Package middlewares provides HTTP middleware for site applications.
//
// # Request ID
//
// RequestID assigns an ID to each request for tracing. An ID arriving in
// X-Request-ID, X-Correlation-ID or X-Cloud-Trace-Context is reused,
// otherwise a UUID is generated.
//
//	app := site.New(
//	    site.WithLogger("site", middlewares.RequestIDExtractor()),
//	    site.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover turns panics into *PanicError values for the app's error handler.
//
//	app := site.New(
//	    site.WithMiddleware(middlewares.Recover()),
//	    site.WithErrorHandler(func(c site.Context, err error) error {
//	        if pe, ok := middlewares.AsPanicError(err); ok {
//	            c.LogError("panic", "value", pe.Value)
//	        }
//	        return c.String(500, "Internal Server Error")
//	    }),
//	)
//
// # Trailing slash
//
// TrailingSlash issues a 301 from "/docs" to "/docs/" so relative links in
// directory index pages resolve. File-like paths and non-GET requests pass
// through untouched.
//
// Recommended order: RequestID, Recover, TrailingSlash.
package middlewares
