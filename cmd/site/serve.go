package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/openauthenticator/site"
	"github.com/openauthenticator/site/middlewares"
	"github.com/openauthenticator/site/pkg/appinfo"
	"github.com/openauthenticator/site/pkg/assets"
	"github.com/openauthenticator/site/pkg/logger"
	"github.com/openauthenticator/site/pkg/storage"
)

var (
	servePublicDir string
	serveBackend   string
	serveBuild     bool
	serveCacheTTL  time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the static site and the build artifacts",
	Long: `Serve the exported static site from --public and the build artifacts
under /<destination_directory>/. Artifacts are read from the local output
directory (--storage dir) or from the configured bucket (--storage s3).
With --storage dir the output directory is also served as static files, so
artifacts nested at any depth are reachable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(configPath)
		if err != nil {
			return err
		}

		if serveBuild {
			if _, err := appinfo.Build(cmd.Context(), opts, log); err != nil {
				return err
			}
		}

		store, err := artifactStorage(opts)
		if err != nil {
			return err
		}

		siteOpts := []site.Option{
			site.WithCustomLogger(log),
			site.WithMiddleware(
				middlewares.RequestID(),
				middlewares.Recover(),
				middlewares.TrailingSlash(),
			),
			site.WithStorageNamespace(assets.DefaultNamespace, store),
			site.WithHandlers(assets.NewHandler(opts.DestinationDirectory, assets.DefaultNamespace)),
			site.WithHealthChecks(),
		}
		if serveBackend == "dir" {
			siteOpts = append(siteOpts, site.WithPublicAssets("/"+opts.DestinationDirectory, os.DirFS(opts.DestinationDir()), true))
		}
		if servePublicDir != "" {
			siteOpts = append(siteOpts, site.WithPublicAssets("/", os.DirFS(servePublicDir), true))
		}

		app := site.New(siteOpts...)
		return app.Run(cfg.Address,
			site.Logger(log),
			site.WithContext(cmd.Context()),
			site.ShutdownHook(logger.FlushSentry(flushTimeout)),
		)
	},
}

// artifactStorage returns the backend the artifacts are served from.
func artifactStorage(opts appinfo.Options) (storage.Storage, error) {
	switch serveBackend {
	case "dir":
		return storage.NewDir(opts.DestinationDir()), nil
	case "s3":
		s3, err := storage.New(cfg.Storage)
		if err != nil {
			return nil, err
		}
		return storage.WithCache(storage.WithPrefix(s3, opts.DestinationDirectory), serveCacheTTL), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want dir or s3)", serveBackend)
	}
}

func init() {
	serveCmd.Flags().StringVar(&servePublicDir, "public", "", "directory of the exported static site")
	serveCmd.Flags().StringVar(&serveBackend, "storage", "dir", "artifact backend: dir or s3")
	serveCmd.Flags().BoolVar(&serveBuild, "build", false, "run the build before serving")
	serveCmd.Flags().DurationVar(&serveCacheTTL, "cache-ttl", 0, "how long s3 artifacts are cached in memory (0 disables caching)")
}
