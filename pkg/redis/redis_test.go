package redis

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOpen_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty URL returns ErrEmptyConnectionURL", func(t *testing.T) {
		t.Parallel()

		client, err := Open(ctx, "")
		require.ErrorIs(t, err, ErrEmptyConnectionURL)
		require.Nil(t, client)
	})

	for _, url := range []string{
		"http://localhost:6379",
		"localhost:6379",
		"redis://localhost:notaport",
		"redis://localhost:6379/notanumber",
	} {
		t.Run("rejects "+url, func(t *testing.T) {
			t.Parallel()

			client, err := Open(ctx, url)
			require.ErrorIs(t, err, ErrFailedToParseURL)
			require.Nil(t, client)
		})
	}

	t.Run("cancelled context stops retries", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client, err := Open(ctx, "redis://127.0.0.1:1/0",
			WithRetry(3, time.Second),
			WithTimeouts(0, 0, 50*time.Millisecond),
		)
		require.ErrorIs(t, err, ErrConnectionFailed)
		require.Nil(t, client)
	})
}

func TestHealthcheck_NilClient(t *testing.T) {
	t.Parallel()

	err := Healthcheck(nil)(context.Background())
	require.ErrorIs(t, err, ErrHealthcheckFailed)
}

func TestShutdown(t *testing.T) {
	t.Parallel()

	t.Run("calls Close on the client", func(t *testing.T) {
		t.Parallel()

		c := &mockCloser{}
		require.NoError(t, Shutdown(c)(context.Background()))
		require.True(t, c.closed)
	})

	t.Run("propagates Close error", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("close error")
		c := &mockCloser{err: expectedErr}
		require.Equal(t, expectedErr, Shutdown(c)(context.Background()))
		require.True(t, c.closed)
	})
}

func TestWait(t *testing.T) {
	t.Parallel()

	t.Run("cancelled context returns immediately", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		err := wait(ctx, 10*time.Second)
		require.Equal(t, context.Canceled, err)
		require.Less(t, time.Since(start), time.Second)
	})

	t.Run("timeout completes normally", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		require.NoError(t, wait(context.Background(), 20*time.Millisecond))
		require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})
}

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		o := defaultOptions()
		require.Equal(t, 10, o.poolSize)
		require.Equal(t, 2, o.minIdleConns)
		require.Equal(t, 3, o.retryAttempts)
		require.Equal(t, 2*time.Second, o.retryInterval)
		require.NotNil(t, o.logger)
	})

	t.Run("timeouts keep defaults for zero values", func(t *testing.T) {
		t.Parallel()

		o := defaultOptions()
		WithTimeouts(time.Second, 0, 0)(o)
		require.Equal(t, time.Second, o.readTimeout)
		require.Equal(t, 3*time.Second, o.writeTimeout)
		require.Equal(t, 5*time.Second, o.dialTimeout)
	})

	t.Run("config options", func(t *testing.T) {
		t.Parallel()

		o := defaultOptions()
		for _, opt := range (Config{PoolSize: 20, RetryAttempts: 5, RetryInterval: time.Second}).Options() {
			opt(o)
		}
		require.Equal(t, 20, o.poolSize)
		require.Equal(t, 5, o.retryAttempts)
		require.Equal(t, time.Second, o.retryInterval)
	})
}

type mockCloser struct {
	closed bool
	err    error
}

func (m *mockCloser) Close() error {
	m.closed = true
	return m.err
}

var _ io.Closer = (*mockCloser)(nil)
