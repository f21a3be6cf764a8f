package assets

import "errors"

var (
	// ErrInvalidDir is returned when the directory to publish is missing or not a directory.
	ErrInvalidDir = errors.New("assets: invalid directory")

	// ErrPublishFailed is returned when at least one file could not be uploaded.
	ErrPublishFailed = errors.New("assets: publish failed")
)
