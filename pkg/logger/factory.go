package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger output configuration.
type Config struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Format selects the handler: json or text.
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// New creates a JSON-formatted logger on stdout with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	return NewWithConfig(Config{}, os.Stdout, extractors...)
}

// NewWithConfig creates a logger writing to w using the given level and format.
// Unknown levels fall back to info, unknown formats to JSON.
func NewWithConfig(cfg Config, w io.Writer, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(newHandler(cfg, w), extractors...))
}

// ParseLevel converts a level name to slog.Level. Unknown names yield info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(cfg Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
