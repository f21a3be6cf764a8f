// Package storage provides file storage backends behind a single interface.
//
// Two backends are available: S3Storage for S3-compatible object storage and
// Dir for a local directory. Both address files by slash-separated keys such
// as "en/common.json".
//
// # Basic Usage
//
//	store, err := storage.New(storage.Config{
//		Bucket:    "site-assets",
//		AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
//		SecretKey: os.Getenv("STORAGE_SECRET_KEY"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	info, err := store.Put(ctx, f, size, storage.WithKey("en/common.json"))
//
// The content type is derived from the key extension unless WithContentType
// is given.
//
// # Namespaces
//
// A Namespaces registry maps names to backends so that the code producing
// files and the handlers serving them agree on a name only:
//
//	ns := storage.NewNamespaces()
//	_ = ns.Mount("get-info-from-parent", storage.NewDir(".appinfo/_app"))
//	s, err := ns.Get("get-info-from-parent")
//
// # Errors
//
// Missing files are reported as ErrNotFound for every backend. S3 errors are
// normalized, so callers should use errors.Is with the sentinel errors.
//
// # Configuration
//
// Config fields carry env tags:
//
//	STORAGE_BUCKET, STORAGE_ACCESS_KEY, STORAGE_SECRET_KEY, STORAGE_ENDPOINT,
//	STORAGE_REGION (default: us-east-1), STORAGE_DEFAULT_ACL (default: private),
//	STORAGE_PATH_STYLE (for MinIO)
package storage
