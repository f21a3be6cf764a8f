package health

import (
	"encoding/json"
	"mime"
	"net/http"
	"slices"
	"strings"
)

// LivenessHandler answers 200 while the process is able to serve requests.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, &Response{Status: StatusHealthy})
	}
}

// ReadinessHandler runs checks on every request and answers 503 when any
// of them fails. Plain-text bodies name the failing checks; JSON bodies
// (?format=json or Accept: application/json) carry every result.
func ReadinessHandler(checks Checks, opts ...Option) http.HandlerFunc {
	cfg := newConfig(opts...)

	return func(w http.ResponseWriter, r *http.Request) {
		resp := runChecks(r.Context(), checks, cfg)

		code := http.StatusOK
		if resp.Status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		respond(w, r, code, resp)
	}
}

func respond(w http.ResponseWriter, r *http.Request, code int, resp *Response) {
	w.Header().Set("Cache-Control", "no-store")

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if resp.Status == StatusHealthy {
		_, _ = w.Write([]byte("OK"))
		return
	}

	failed := make([]string, 0, len(resp.Checks))
	for name, c := range resp.Checks {
		if c.Status == StatusUnhealthy {
			failed = append(failed, name)
		}
	}
	slices.Sort(failed)
	_, _ = w.Write([]byte("Service Unavailable: " + strings.Join(failed, ", ")))
}

func wantsJSON(r *http.Request) bool {
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		if mt, _, err := mime.ParseMediaType(strings.TrimSpace(part)); err == nil && mt == "application/json" {
			return true
		}
	}
	return false
}
