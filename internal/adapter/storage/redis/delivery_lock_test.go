package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLock(t *testing.T) (*DeliveryLock, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewDeliveryLock(client), s
}

func TestDeliveryLock_AcquireAndRelease(t *testing.T) {
	lock, s := newTestLock(t)
	ctx := context.Background()

	token, ok, err := lock.Acquire(ctx, "5:biz_1:5:pay_1:payment.succeeded", 45*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
	assert.True(t, s.Exists("delivery-lock:5:biz_1:5:pay_1:payment.succeeded"))
	assert.Equal(t, 45*time.Second, s.TTL("delivery-lock:5:biz_1:5:pay_1:payment.succeeded"))

	require.NoError(t, lock.Release(ctx, "5:biz_1:5:pay_1:payment.succeeded", token))
	assert.False(t, s.Exists("delivery-lock:5:biz_1:5:pay_1:payment.succeeded"))
}

func TestDeliveryLock_SecondAcquireIsBusy(t *testing.T) {
	lock, _ := newTestLock(t)
	ctx := context.Background()

	_, ok, err := lock.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	token, ok, err := lock.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "held lease must not be granted twice")
	assert.Empty(t, token)
}

func TestDeliveryLock_ReleaseWithForeignToken(t *testing.T) {
	lock, s := newTestLock(t)
	ctx := context.Background()

	_, ok, err := lock.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, lock.Release(ctx, "k", "someone-else"))
	assert.True(t, s.Exists("delivery-lock:k"), "foreign token must not release the lease")
}

func TestDeliveryLock_ExpiredLeaseCanBeRetaken(t *testing.T) {
	lock, s := newTestLock(t)
	ctx := context.Background()

	first, ok, err := lock.Acquire(ctx, "k", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	s.FastForward(2 * time.Second)

	second, ok, err := lock.Acquire(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// The stale holder's release must not drop the new lease.
	require.NoError(t, lock.Release(ctx, "k", first))
	assert.True(t, s.Exists("delivery-lock:k"))

	require.NoError(t, lock.Release(ctx, "k", second))
	assert.False(t, s.Exists("delivery-lock:k"))
}

func TestDeliveryLock_ReleaseMissingKey(t *testing.T) {
	lock, _ := newTestLock(t)
	assert.NoError(t, lock.Release(context.Background(), "absent", "tok"))
}

func TestHealthCheck(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	defer client.Close()

	hc := NewHealthCheck(client)
	assert.Equal(t, "redis", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))
}
