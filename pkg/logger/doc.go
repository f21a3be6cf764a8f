// Package logger provides structured logging with context extraction and Sentry integration.
//
// It extends log/slog with per-call attribute injection from the request
// context and optional Sentry reporting.
//
// # Basic Usage
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "language found", slog.String("code", "fr"))
//	// {"level":"INFO","msg":"language found","code":"fr","request_id":"..."}
//
// Level and format come from Config, usually parsed from LOG_LEVEL and
// LOG_FORMAT:
//
//	log := logger.NewWithConfig(logger.Config{Level: "debug", Format: "text"}, os.Stderr)
//
// # Context Extractors
//
// A ContextExtractor returns an attribute for the current context:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Extractors run on every log call so request-scoped values stay fresh.
//
// # Sentry Integration
//
//	log := logger.NewWithSentry(sentryCfg, logCfg, extractors...)
//	app.Run(addr, site.ShutdownHook(logger.FlushSentry(2*time.Second)))
//
// With an empty DSN the logger writes to stdout only, so the same code path
// works locally and in production.
package logger
