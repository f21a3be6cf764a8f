package counter_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openauthenticator/site/internal"
	"github.com/openauthenticator/site/pkg/counter"
)

func newEvent(target, eventType, document string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, nil)
	req.Header.Set("Ce-Id", "evt")
	req.Header.Set("Ce-Type", eventType)
	req.Header.Set("Ce-Document", document)
	return req
}

func do(app http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestTriggers(t *testing.T) {
	t.Parallel()

	t.Run("create then delete", func(t *testing.T) {
		t.Parallel()

		store := counter.NewMemory()
		app := internal.New(internal.WithHandlers(counter.NewTriggers(store)))

		rec := do(app, newEvent("/incrementCounter", counter.EventCreated, "alice/userData/totps/a"))
		require.Equal(t, http.StatusNoContent, rec.Code)
		rec = do(app, newEvent("/incrementCounter", counter.EventCreated, "alice/userData/totps/b"))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, int64(2), store.Count("alice"))

		rec = do(app, newEvent("/decrementCounter", counter.EventDeleted, "alice/userData/totps/a"))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, int64(1), store.Count("alice"))
	})

	t.Run("invalid document path", func(t *testing.T) {
		t.Parallel()

		store := counter.NewMemory()
		app := internal.New(internal.WithHandlers(counter.NewTriggers(store)))

		rec := do(app, newEvent("/incrementCounter", counter.EventCreated, "alice/settings/x"))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Zero(t, store.Count("alice"))
	})

	t.Run("wrong event type", func(t *testing.T) {
		t.Parallel()

		store := counter.NewMemory()
		app := internal.New(internal.WithHandlers(counter.NewTriggers(store)))

		rec := do(app, newEvent("/incrementCounter", counter.EventDeleted, "alice/userData/totps/a"))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Zero(t, store.Count("alice"))
	})

	t.Run("store failure is retryable", func(t *testing.T) {
		t.Parallel()

		app := internal.New(internal.WithHandlers(counter.NewTriggers(failingStore{err: errors.New("unavailable")})))
		rec := do(app, newEvent("/incrementCounter", counter.EventCreated, "alice/userData/totps/a"))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("missing user data", func(t *testing.T) {
		t.Parallel()

		app := internal.New(internal.WithHandlers(counter.NewTriggers(failingStore{err: counter.ErrUserDataNotFound})))
		rec := do(app, newEvent("/decrementCounter", counter.EventDeleted, "alice/userData/totps/a"))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTriggers_ConcurrentDeliveries(t *testing.T) {
	t.Parallel()

	const creates, deletes = 120, 45

	store := counter.NewMemory()
	app := internal.New(internal.WithHandlers(counter.NewTriggers(store)))

	var wg sync.WaitGroup
	for i := range creates {
		wg.Add(1)
		go func() {
			defer wg.Done()
			do(app, newEvent("/incrementCounter", counter.EventCreated, fmt.Sprintf("u/userData/totps/%d", i)))
		}()
	}
	for i := range deletes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			do(app, newEvent("/decrementCounter", counter.EventDeleted, fmt.Sprintf("u/userData/totps/%d", i)))
		}()
	}
	wg.Wait()

	require.Equal(t, int64(creates-deletes), store.Count("u"))
}

type failingStore struct {
	err error
}

func (s failingStore) IncrementBy(context.Context, string, int64) error {
	return s.err
}
