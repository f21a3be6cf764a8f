package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openauthenticator/site/internal"
)

// routes adapts a function to internal.Handler.
type routes func(r internal.Router)

func (fn routes) Routes(r internal.Router) { fn(r) }

func serve(t *testing.T, app *internal.App, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}
