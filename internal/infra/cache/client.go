// Package cache implements cache-aside reads over the shared store with three
// resilience strategies: null caching (penetration), mutex rebuild (breakdown)
// and logical expiration with asynchronous rebuild (hot keys).
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"seckill-service/internal/infra/kv"
	"seckill-service/internal/infra/lock"
	"seckill-service/internal/pkg/clock"
	"seckill-service/internal/pkg/config"
	"seckill-service/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

// nullMarker records that the source of truth has no value for a key.
const nullMarker = ""

var ErrCorruptEntry = errs.New("corrupt cache entry")

type Options struct {
	TTL                time.Duration
	NullTTL            time.Duration
	TTLJitter          time.Duration
	LogicalTTL         time.Duration
	RebuildLockTTL     time.Duration
	RebuildTimeout     time.Duration
	MutexRetryInterval time.Duration
}

func OptionsFromConfig(cfg config.CacheConfig) Options {
	return Options{
		TTL:                cfg.TTL,
		NullTTL:            cfg.NullTTL,
		TTLJitter:          cfg.TTLJitter,
		LogicalTTL:         cfg.LogicalTTL,
		RebuildLockTTL:     cfg.RebuildLockTTL,
		RebuildTimeout:     cfg.RebuildTimeout,
		MutexRetryInterval: cfg.MutexRetryInterval,
	}
}

// Loader fetches a value from the source of truth. A nil value with a nil error
// means the entity does not exist.
type Loader[T any] func(ctx context.Context, id string) (*T, error)

type Client struct {
	store  kv.Store
	locks  *lock.Client
	clock  clock.Clock
	logger *slog.Logger
	opts   Options

	// coalesces concurrent passthrough misses for the same key in this process
	group    singleflight.Group
	rebuilds sync.WaitGroup
}

func NewClient(store kv.Store, locks *lock.Client, clk clock.Clock, logger *slog.Logger, opts Options) *Client {
	return &Client{
		store:  store,
		locks:  locks,
		clock:  clk,
		logger: logger,
		opts:   opts,
	}
}

func (c *Client) Options() Options {
	return c.opts
}

// Set stores value as JSON with a physical ttl.
func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "marshal cache value")
	}
	return c.store.Set(ctx, key, string(data), ttl)
}

// SetWithLogicalExpire stores value without a physical ttl; staleness is decided by
// the embedded expire_at. This is also the pre-warm entry point for hot keys.
func (c *Client) SetWithLogicalExpire(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "marshal cache value")
	}
	entry := logicalEntry{
		Data:     data,
		ExpireAt: c.clock.Now().Add(ttl),
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return errs.Wrap(err, "marshal logical entry")
	}
	return c.store.Set(ctx, key, string(raw), 0)
}

// Invalidate drops the cached value for keyPrefix+id so the next read reloads it.
func (c *Client) Invalidate(ctx context.Context, keyPrefix, id string) error {
	_, err := c.store.Del(ctx, keyPrefix+id)
	return err
}

// Wait blocks until in-flight background rebuilds have finished.
func (c *Client) Wait() {
	c.rebuilds.Wait()
}

// Close waits for background rebuilds or gives up when ctx is done.
func (c *Client) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.rebuilds.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ttlWithJitter spreads expirations so keys written together do not expire together.
func (c *Client) ttlWithJitter(ttl time.Duration) time.Duration {
	if c.opts.TTLJitter <= 0 {
		return ttl
	}
	return ttl + time.Duration(rand.Int64N(int64(c.opts.TTLJitter)))
}

type logicalEntry struct {
	Data     json.RawMessage `json:"data"`
	ExpireAt time.Time       `json:"expire_at"`
}

func decode[T any](raw []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode cache value"), ErrCorruptEntry)
	}
	return &v, nil
}
