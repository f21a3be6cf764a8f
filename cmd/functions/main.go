// Command functions serves the Open Authenticator backend endpoints: the
// Sign in with Apple relay and the TOTP counter triggers.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/openauthenticator/site"
	"github.com/openauthenticator/site/middlewares"
	"github.com/openauthenticator/site/pkg/counter"
	"github.com/openauthenticator/site/pkg/logger"
	"github.com/openauthenticator/site/pkg/redis"
	"github.com/openauthenticator/site/pkg/relay"
)

// config is read from the environment. PORT follows the Cloud Run contract.
type config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	Backend   string `env:"COUNTER_BACKEND" envDefault:"memory"`
	ProjectID string `env:"GOOGLE_CLOUD_PROJECT"`
	Log       logger.Config
	Sentry    logger.SentryConfig
	Redis     redis.Config
	Relay     relay.Config
}

func main() {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse environment: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Sentry, cfg.Log, middlewares.RequestIDExtractor())
	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("application error", "error", err)
		_ = logger.FlushSentry(2 * time.Second)(context.Background())
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, log *slog.Logger) error {
	relayHandler, err := relay.NewHandler(cfg.Relay)
	if err != nil {
		return err
	}

	store, health, shutdown, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}

	app := site.New(
		site.WithCustomLogger(log),
		site.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
		),
		site.WithHandlers(
			relayHandler,
			counter.NewTriggers(store),
		),
		site.WithHealthChecks(health...),
	)

	return app.Run(":"+cfg.Port,
		site.Logger(log),
		site.ShutdownHook(shutdown),
		site.ShutdownHook(logger.FlushSentry(2*time.Second)),
	)
}

// openStore connects the configured counter backend.
func openStore(ctx context.Context, cfg config, log *slog.Logger) (counter.Store, []site.HealthOption, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.Backend {
	case "memory":
		log.Warn("counters are kept in memory and lost on restart")
		return counter.NewMemory(), nil, noop, nil

	case "redis":
		client, err := redis.Open(ctx, cfg.Redis.URL, append(cfg.Redis.Options(), redis.WithLogger(log))...)
		if err != nil {
			return nil, nil, nil, err
		}
		checks := []site.HealthOption{site.WithReadinessCheck("redis", redis.Healthcheck(client))}
		return counter.NewRedis(client), checks, redis.Shutdown(client), nil

	case "firestore":
		fs, err := counter.OpenFirestore(ctx, cfg.ProjectID)
		if err != nil {
			return nil, nil, nil, err
		}
		return fs, nil, func(context.Context) error { return fs.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("%w: %q", counter.ErrUnknownBackend, cfg.Backend)
	}
}
