package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openauthenticator/site/pkg/health"
)

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set("Accept", "text/html, application/json;q=0.9")
	health.LivenessHandler()(rec, req)
	require.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	t.Run("no checks is healthy", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		health.ReadinessHandler(nil)(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("plain text names failing checks", func(t *testing.T) {
		t.Parallel()
		checks := health.Checks{
			"storage": func(context.Context) error { return errors.New("bucket missing") },
			"redis":   func(context.Context) error { return errors.New("refused") },
			"ok":      func(context.Context) error { return nil },
		}

		rec := httptest.NewRecorder()
		health.ReadinessHandler(checks)(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, "Service Unavailable: redis, storage", rec.Body.String())
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("failing check reports details as JSON", func(t *testing.T) {
		t.Parallel()
		checks := health.Checks{
			"redis":   func(context.Context) error { return errors.New("connection refused") },
			"storage": func(context.Context) error { return nil },
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health/ready?format=json", nil)
		health.ReadinessHandler(checks)(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, health.StatusUnhealthy, resp.Status)
		require.Equal(t, health.StatusHealthy, resp.Checks["storage"].Status)
		require.Equal(t, "connection refused", resp.Checks["redis"].Error)
	})

	t.Run("slow check times out", func(t *testing.T) {
		t.Parallel()
		checks := health.Checks{
			"slow": func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		req.Header.Set("Accept", "application/json")
		health.ReadinessHandler(checks, health.WithTimeout(10*time.Millisecond))(rec, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Contains(t, resp.Checks["slow"].Error, health.ErrCheckTimeout.Error())
	})
}
