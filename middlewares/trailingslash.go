package middlewares

import (
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/openauthenticator/site/internal"
)

// TrailingSlash returns middleware that permanently redirects GET and HEAD
// requests for directory-like paths to the same path with a trailing slash.
// The query string is preserved. Paths that match a registered route, paths
// whose last segment has a file extension, and the root are left alone.
func TrailingSlash() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			r := c.Request()
			if !needsSlash(r) || routed(r) {
				return next(c)
			}

			target := r.URL.Path + "/"
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			return c.Redirect(http.StatusMovedPermanently, target)
		}
	}
}

func needsSlash(r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}
	p := r.URL.Path
	if p == "" || strings.HasSuffix(p, "/") {
		return false
	}
	// Leading "//" would turn the redirect into a protocol-relative URL.
	if strings.HasPrefix(p, "//") {
		return false
	}
	return path.Ext(p) == ""
}

// routed reports whether the router serving r has a route for its path.
// HEAD requests count as matched when a GET route exists.
func routed(r *http.Request) bool {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return false
	}
	for _, method := range []string{r.Method, http.MethodGet} {
		if rctx.Routes.Match(chi.NewRouteContext(), method, r.URL.Path) {
			return true
		}
	}
	return false
}
