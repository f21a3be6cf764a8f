package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openauthenticator/site/internal"
	"github.com/openauthenticator/site/middlewares"
)

func TestTrailingSlash(t *testing.T) {
	t.Parallel()

	echo := func(c internal.Context) error {
		return c.String(http.StatusOK, c.Request().URL.Path)
	}
	app := internal.New(
		internal.WithMiddleware(middlewares.TrailingSlash()),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", echo)
			r.GET("/docs/", echo)
			r.GET("/health/live", echo)
			r.GET("/get-info-from-parent/{file}", echo)
			r.GET("/get-info-from-parent/{directory}/{file}", echo)
			r.POST("/appleLogin", func(c internal.Context) error {
				return c.NoContent(http.StatusNoContent)
			})
		})),
	)

	tests := []struct {
		name     string
		method   string
		target   string
		wantCode int
		wantLoc  string
	}{
		{"directory path", http.MethodGet, "/docs", http.StatusMovedPermanently, "/docs/"},
		{"nested path keeps query", http.MethodGet, "/docs/install?lang=fr", http.StatusMovedPermanently, "/docs/install/?lang=fr"},
		{"head request", http.MethodHead, "/about", http.StatusMovedPermanently, "/about/"},
		{"already slashed", http.MethodGet, "/docs/", http.StatusOK, ""},
		{"root", http.MethodGet, "/", http.StatusOK, ""},
		{"file", http.MethodGet, "/get-info-from-parent/languages.json", http.StatusOK, ""},
		{"matched route", http.MethodGet, "/health/live", http.StatusOK, ""},
		{"head on get route", http.MethodHead, "/health/live", http.StatusMethodNotAllowed, ""},
		{"extensionless artifact", http.MethodGet, "/get-info-from-parent/en/LICENSE", http.StatusOK, ""},
		{"post untouched", http.MethodPost, "/appleLogin", http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(t, app, httptest.NewRequest(tt.method, tt.target, nil))
			require.Equal(t, tt.wantCode, rec.Code)
			require.Equal(t, tt.wantLoc, rec.Header().Get("Location"))
		})
	}
}
