package redis

import "errors"

var (
	// ErrEmptyConnectionURL is returned by Open when no URL is configured.
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")
	// ErrFailedToParseURL is returned for URLs that are not redis:// or rediss://.
	ErrFailedToParseURL = errors.New("redis: failed to parse connection URL")
	// ErrConnectionFailed is returned once every connection attempt failed.
	ErrConnectionFailed = errors.New("redis: failed to establish connection")
	// ErrHealthcheckFailed wraps a failed PING from Healthcheck.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
