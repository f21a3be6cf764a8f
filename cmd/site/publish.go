package main

import (
	"github.com/spf13/cobra"

	"github.com/openauthenticator/site/pkg/assets"
	"github.com/openauthenticator/site/pkg/storage"
)

var (
	publishPrefix      string
	publishConcurrency int
	publishPublic      bool
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the build artifacts to the configured bucket",
	Long: `Upload every file of the output directory to the bucket described by
the STORAGE_* environment variables. Keys are prefixed with --prefix, which
defaults to the destination directory so "serve --storage s3" finds them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(configPath)
		if err != nil {
			return err
		}

		s3, err := storage.New(cfg.Storage)
		if err != nil {
			return err
		}

		prefix := publishPrefix
		if !cmd.Flags().Changed("prefix") {
			prefix = opts.DestinationDirectory
		}

		pubOpts := []assets.PublishOption{
			assets.WithConcurrency(publishConcurrency),
			assets.WithLogger(log),
		}
		if publishPublic {
			pubOpts = append(pubOpts, assets.WithACL(storage.ACLPublicRead))
		}

		files, err := assets.Publish(cmd.Context(), opts.DestinationDir(), s3, prefix, pubOpts...)
		if err != nil {
			log.ErrorContext(cmd.Context(), "publish failed", "error", err)
			return err
		}

		cmd.Printf("published %d files to %s/\n", len(files), prefix)
		return nil
	},
}

func init() {
	publishCmd.Flags().StringVar(&publishPrefix, "prefix", "", "key prefix in the bucket (default: destination directory)")
	publishCmd.Flags().IntVar(&publishConcurrency, "concurrency", assets.DefaultConcurrency, "parallel uploads")
	publishCmd.Flags().BoolVar(&publishPublic, "public-read", false, "upload objects with the public-read ACL")
}
