package relay_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openauthenticator/site/internal"
	"github.com/openauthenticator/site/pkg/relay"
)

func newApp(t *testing.T, cfg relay.Config) *internal.App {
	t.Helper()
	h, err := relay.NewHandler(cfg)
	require.NoError(t, err)
	return internal.New(internal.WithHandlers(h))
}

func postForm(app http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/appleLogin", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestAppleLogin(t *testing.T) {
	t.Parallel()

	app := newApp(t, relay.Config{})

	t.Run("complete form post", func(t *testing.T) {
		t.Parallel()

		rec := postForm(app, url.Values{
			"code":     {"c1"},
			"id_token": {"t.o.k"},
			"state":    {"s&x=1"},
		})

		require.Equal(t, http.StatusFound, rec.Code)
		loc, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		require.Equal(t, "localhost:5000", loc.Host)
		require.Equal(t, "/apple/", loc.Path)
		require.Equal(t, "c1", loc.Query().Get("code"))
		require.Equal(t, "t.o.k", loc.Query().Get("id_token"))
		require.Equal(t, "s&x=1", loc.Query().Get("state"))
	})

	t.Run("json body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/appleLogin",
			strings.NewReader(`{"code":"a","id_token":"b","state":"c"}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "http://localhost:5000/apple/?code=a&id_token=b&state=c", rec.Header().Get("Location"))
	})

	t.Run("empty json body", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/appleLogin", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/", rec.Header().Get("Location"))
	})

	missing := []struct {
		name   string
		values url.Values
	}{
		{"no fields", url.Values{}},
		{"no code", url.Values{"id_token": {"i"}, "state": {"s"}}},
		{"no id_token", url.Values{"code": {"c"}, "state": {"s"}}},
		{"no state", url.Values{"code": {"c"}, "id_token": {"i"}}},
		{"empty code", url.Values{"code": {""}, "id_token": {"i"}, "state": {"s"}}},
	}
	for _, tt := range missing {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := postForm(app, tt.values)
			require.Equal(t, http.StatusFound, rec.Code)
			require.Equal(t, "/", rec.Header().Get("Location"))
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/appleLogin", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("get not allowed", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appleLogin", nil))
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	t.Run("custom callback keeps its query", func(t *testing.T) {
		t.Parallel()

		app := newApp(t, relay.Config{CallbackURL: "https://app.example.com/cb?source=apple"})
		rec := postForm(app, url.Values{"code": {"c"}, "id_token": {"i"}, "state": {"s"}})

		require.Equal(t, "https://app.example.com/cb?code=c&id_token=i&source=apple&state=s", rec.Header().Get("Location"))
	})

	for _, raw := range []string{"/relative", "::bad", "mailto:"} {
		t.Run("invalid "+raw, func(t *testing.T) {
			t.Parallel()
			_, err := relay.NewHandler(relay.Config{CallbackURL: raw})
			require.ErrorIs(t, err, relay.ErrInvalidCallbackURL)
		})
	}
}
