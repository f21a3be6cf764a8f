package counter

import (
	"context"
	"errors"
	"strings"
)

const (
	// Field is the per-user counter field.
	Field = "totpCount"

	// UserDataDoc is the per-user document holding the counter.
	UserDataDoc = "userData"
)

var (
	// ErrInvalidUserID is returned for an empty or slash-containing user ID.
	ErrInvalidUserID = errors.New("counter: invalid user id")

	// ErrUserDataNotFound is returned when the user's data document does not exist.
	ErrUserDataNotFound = errors.New("counter: user data not found")

	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("counter: unknown backend")
)

// Store maintains the per-user TOTP counter.
type Store interface {
	// IncrementBy atomically adds delta (which may be negative) to the
	// user's counter.
	IncrementBy(ctx context.Context, userID string, delta int64) error
}

func validateUserID(userID string) error {
	if userID == "" || strings.Contains(userID, "/") {
		return ErrInvalidUserID
	}
	return nil
}
