package counter

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis keeps counters in hashes keyed "{userId}/userData".
type Redis struct {
	client redis.Cmdable
}

// NewRedis wraps a connected client, typically from pkg/redis.Open.
func NewRedis(client redis.Cmdable) *Redis {
	return &Redis{client: client}
}

// IncrementBy runs HINCRBY on the user's hash.
func (r *Redis) IncrementBy(ctx context.Context, userID string, delta int64) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	if err := r.client.HIncrBy(ctx, redisKey(userID), Field, delta).Err(); err != nil {
		return fmt.Errorf("counter: redis increment %s: %w", userID, err)
	}
	return nil
}

// Count reads the user's counter. A missing hash reads as zero.
func (r *Redis) Count(ctx context.Context, userID string) (int64, error) {
	n, err := r.client.HGet(ctx, redisKey(userID), Field).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

func redisKey(userID string) string {
	return userID + "/" + UserDataDoc
}
