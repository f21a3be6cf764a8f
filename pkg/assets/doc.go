// Package assets exposes the build artifacts produced by pkg/appinfo.
//
// Handler serves them over HTTP from a storage namespace mounted on the app,
// so the same routes work against the local output directory (storage.Dir)
// or a bucket (storage.S3Storage). Publish uploads an output directory to any
// storage backend.
//
//	app := site.New(
//	    site.WithStorageNamespace(assets.DefaultNamespace, storage.NewDir("public/get-info-from-parent")),
//	    site.WithHandlers(assets.NewHandler("", "")),
//	)
package assets
