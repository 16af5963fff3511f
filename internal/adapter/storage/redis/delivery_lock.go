package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseLock deletes the lease only if it still carries the caller's token.
var releaseLock = goredis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// DeliveryLock implements ports.DeliveryLocker using Redis SET NX PX.
type DeliveryLock struct {
	client goredis.UniversalClient
	prefix string
}

// NewDeliveryLock creates a new Redis-backed delivery lease.
func NewDeliveryLock(client goredis.UniversalClient) *DeliveryLock {
	return &DeliveryLock{
		client: client,
		prefix: "delivery-lock:",
	}
}

// Acquire takes the lease on key for ttl. It returns the release token and
// true when taken, or false when another holder owns it.
func (l *DeliveryLock) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	result, err := l.client.SetArgs(ctx, l.prefix+key, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis delivery lock acquire: %w", err)
	}
	return token, result == "OK", nil
}

// Release drops the lease if token still owns it. Releasing an expired or
// foreign lease is a no-op.
func (l *DeliveryLock) Release(ctx context.Context, key string, token string) error {
	if err := releaseLock.Run(ctx, l.client, []string{l.prefix + key}, token).Err(); err != nil {
		return fmt.Errorf("redis delivery lock release: %w", err)
	}
	return nil
}
