package storage

// Option configures Put operations.
type Option func(*putOptions)

// putOptions holds configuration for Put operations.
type putOptions struct {
	key         string // Storage key, required
	contentType string // Override the type derived from the key
	acl         ACL    // Override default ACL
}

// WithKey sets the storage key. Keys are slash-separated relative paths,
// e.g. "en/common.json".
func WithKey(key string) Option {
	return func(o *putOptions) {
		o.key = key
	}
}

// WithContentType overrides the content type derived from the key extension.
func WithContentType(ct string) Option {
	return func(o *putOptions) {
		o.contentType = ct
	}
}

// WithACL overrides the default ACL for this upload.
// Ignored by backends without access control.
func WithACL(acl ACL) Option {
	return func(o *putOptions) {
		o.acl = acl
	}
}

func buildPutOptions(defaultACL ACL, opts []Option) *putOptions {
	o := &putOptions{acl: defaultACL}
	for _, opt := range opts {
		opt(o)
	}
	if o.contentType == "" {
		o.contentType = ContentTypeByName(o.key)
	}
	return o
}
