package counter

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore updates the counter stored in /{userId}/userData.
type Firestore struct {
	client *firestore.Client
}

// NewFirestore wraps an existing client.
func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

// OpenFirestore connects to the project's default database.
// FIRESTORE_EMULATOR_HOST is honoured by the client library.
func OpenFirestore(ctx context.Context, projectID string) (*Firestore, error) {
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("counter: open firestore: %w", err)
	}
	return &Firestore{client: client}, nil
}

// IncrementBy applies a server-side increment, so concurrent triggers never
// lose updates. The user data document must already exist.
func (f *Firestore) IncrementBy(ctx context.Context, userID string, delta int64) error {
	if err := validateUserID(userID); err != nil {
		return err
	}

	_, err := f.client.Collection(userID).Doc(UserDataDoc).Update(ctx, []firestore.Update{
		{Path: Field, Value: firestore.Increment(delta)},
	})
	if status.Code(err) == codes.NotFound {
		return errors.Join(ErrUserDataNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("counter: firestore increment %s: %w", userID, err)
	}
	return nil
}

// Close releases the client.
func (f *Firestore) Close() error {
	return f.client.Close()
}
