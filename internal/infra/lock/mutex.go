package lock

import (
	"context"
	"time"

	"seckill-service/internal/infra/kv"
	"seckill-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotAcquired = errs.New("lock held by another owner")

// Compare-and-delete: only the token that acquired the lock may release it.
var unlockScript = kv.NewScript(`
if redis.call('get', KEYS[1]) == ARGV[1] then
	return redis.call('del', KEYS[1])
end
return 0
`)

type Client struct {
	store kv.Store
}

func NewClient(store kv.Store) *Client {
	return &Client{store: store}
}

// NewMutex returns a handle for "lock:<name>" with its own owner token.
// Handles are not reentrant: a second TryLock from the same handle fails while held.
func (c *Client) NewMutex(name string) *Mutex {
	return &Mutex{
		store: c.store,
		key:   kv.LockPrefix + name,
		token: uuid.NewString(),
	}
}

type Mutex struct {
	store kv.Store
	key   string
	token string
}

func (m *Mutex) Key() string {
	return m.key
}

// TryLock never waits. The ttl bounds how long a crashed holder blocks others.
func (m *Mutex) TryLock(ctx context.Context, ttl time.Duration) (bool, error) {
	return m.store.SetNX(ctx, m.key, m.token, ttl)
}

// Unlock is a no-op when the lock expired or belongs to someone else.
func (m *Mutex) Unlock(ctx context.Context) (bool, error) {
	res, err := m.store.Eval(ctx, unlockScript, []string{m.key}, m.token)
	if err != nil {
		return false, err
	}
	n, _ := res.(int64)
	return n == 1, nil
}

// TryWithLock runs fn while holding m, releasing it on every path.
// Returns ErrNotAcquired without calling fn when the lock is taken.
func TryWithLock(ctx context.Context, m *Mutex, ttl time.Duration, fn func(ctx context.Context) error) error {
	acquired, err := m.TryLock(ctx, ttl)
	if err != nil {
		return err
	}
	if !acquired {
		return ErrNotAcquired
	}
	defer func() {
		_, _ = m.Unlock(context.WithoutCancel(ctx))
	}()
	return fn(ctx)
}
