// Command site builds, serves and publishes the Open Authenticator website
// data: the app version and the translation coverage of every language.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/openauthenticator/site/middlewares"
	"github.com/openauthenticator/site/pkg/appinfo"
	"github.com/openauthenticator/site/pkg/logger"
	"github.com/openauthenticator/site/pkg/storage"
)

// Version is set at build time via ldflags.
var Version = "dev"

const flushTimeout = 2 * time.Second

// config is read from the environment.
type config struct {
	Address string `env:"ADDRESS" envDefault:":8080"`
	Log     logger.Config
	Sentry  logger.SentryConfig
	Storage storage.Config
}

var (
	cfg        config
	log        *slog.Logger
	configPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "site",
		Short:   "Build and serve the Open Authenticator website data",
		Version: Version,
		Long: `site extracts the application version and translation coverage
from the app sources, writes them as JSON artifacts, and serves or
publishes them for the website.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = env.ParseAs[config]()
			if err != nil {
				return fmt.Errorf("parse environment: %w", err)
			}
			cfg.Sentry.Release = Version
			log = logger.NewWithSentry(cfg.Sentry, cfg.Log, middlewares.RequestIDExtractor())
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "build options file (.yaml or .toml)")

	rootCmd.AddCommand(buildCmd, serveCmd, publishCmd)

	err := rootCmd.Execute()
	if log != nil {
		_ = logger.FlushSentry(flushTimeout)(context.Background())
	}
	if err != nil {
		os.Exit(1)
	}
}

// loadOptions reads the build options named by --config. An empty path
// yields the defaults.
func loadOptions(path string) (appinfo.Options, error) {
	return appinfo.LoadOptions(path)
}
