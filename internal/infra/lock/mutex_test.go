//go:build unit

package lock_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"seckill-service/internal/infra/kv"
	"seckill-service/internal/infra/lock"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*lock.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return lock.NewClient(kv.NewRedisStore(rdb)), mr
}

func TestMutex(t *testing.T) {
	ctx := context.Background()

	t.Run("only one holder at a time", func(t *testing.T) {
		client, mr := newClient(t)
		a := client.NewMutex("shop:1")
		b := client.NewMutex("shop:1")

		ok, err := a.TryLock(ctx, 10*time.Second)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "lock:shop:1", a.Key())
		assert.True(t, mr.Exists("lock:shop:1"))

		ok, err = b.TryLock(ctx, 10*time.Second)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("non-owner release is a no-op", func(t *testing.T) {
		client, mr := newClient(t)
		a := client.NewMutex("shop:2")
		b := client.NewMutex("shop:2")

		ok, err := a.TryLock(ctx, 10*time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		released, err := b.Unlock(ctx)
		require.NoError(t, err)
		assert.False(t, released)
		assert.True(t, mr.Exists("lock:shop:2"))

		released, err = a.Unlock(ctx)
		require.NoError(t, err)
		assert.True(t, released)
		assert.False(t, mr.Exists("lock:shop:2"))
	})

	t.Run("repeated release is a no-op", func(t *testing.T) {
		client, _ := newClient(t)
		a := client.NewMutex("shop:3")

		ok, err := a.TryLock(ctx, time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		released, err := a.Unlock(ctx)
		require.NoError(t, err)
		assert.True(t, released)

		released, err = a.Unlock(ctx)
		require.NoError(t, err)
		assert.False(t, released)
	})

	t.Run("expired lock can be taken by another owner and the old owner cannot release it", func(t *testing.T) {
		client, mr := newClient(t)
		a := client.NewMutex("shop:4")
		b := client.NewMutex("shop:4")

		ok, err := a.TryLock(ctx, time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		mr.FastForward(2 * time.Second)

		ok, err = b.TryLock(ctx, 10*time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		released, err := a.Unlock(ctx)
		require.NoError(t, err)
		assert.False(t, released)
		assert.True(t, mr.Exists("lock:shop:4"))
	})

	t.Run("concurrent contenders see exactly one winner", func(t *testing.T) {
		client, _ := newClient(t)

		const contenders = 50
		var (
			wg      sync.WaitGroup
			winners atomic.Int32
		)
		for range contenders {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := client.NewMutex("hot").TryLock(ctx, 10*time.Second)
				if err == nil && ok {
					winners.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), winners.Load())
	})
}

func TestTryWithLock(t *testing.T) {
	ctx := context.Background()

	t.Run("releases after fn returns an error", func(t *testing.T) {
		client, mr := newClient(t)
		m := client.NewMutex("job")
		boom := errors.New("boom")

		err := lock.TryWithLock(ctx, m, time.Second, func(context.Context) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.False(t, mr.Exists("lock:job"))
	})

	t.Run("returns ErrNotAcquired without running fn", func(t *testing.T) {
		client, _ := newClient(t)
		holder := client.NewMutex("job")
		ok, err := holder.TryLock(ctx, time.Second)
		require.NoError(t, err)
		require.True(t, ok)

		called := false
		err = lock.TryWithLock(ctx, client.NewMutex("job"), time.Second, func(context.Context) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, lock.ErrNotAcquired)
		assert.False(t, called)
	})
}
