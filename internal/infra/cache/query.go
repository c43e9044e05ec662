package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"seckill-service/internal/infra/kv"
	"seckill-service/internal/infra/lock"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/pkg/metrics"
)

// QueryWithPassThrough reads keyPrefix+id and falls back to loader on a miss.
// Missing entities are cached as a null marker for NullTTL so repeated lookups of
// ids that do not exist never reach the source of truth.
func QueryWithPassThrough[T any](ctx context.Context, c *Client, keyPrefix, id string, ttl time.Duration, loader Loader[T]) (*T, error) {
	key := keyPrefix + id
	entity := kv.EntityFromKeyPrefix(keyPrefix)

	v, found, err := c.readPlain(ctx, key, entity)
	if err != nil {
		return nil, err
	}
	if found {
		return decodeOrNil[T](v)
	}

	metrics.CacheLookups.WithLabelValues(entity, "miss").Inc()
	ch := c.group.DoChan(key, func() (any, error) {
		// shared by every caller coalesced on key, so no single caller's ctx bounds it
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.RebuildTimeout)
		defer cancel()
		return loadAndStore(lctx, c, key, id, ttl, loader)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*T), nil
	}
}

// QueryWithMutex rebuilds a missing key under the distributed lock so that only one
// instance hits the source of truth; everyone else polls the cache until it is filled.
func QueryWithMutex[T any](ctx context.Context, c *Client, keyPrefix, id string, ttl time.Duration, loader Loader[T]) (*T, error) {
	key := keyPrefix + id
	entity := kv.EntityFromKeyPrefix(keyPrefix)

	for {
		v, found, err := c.readPlain(ctx, key, entity)
		if err != nil {
			return nil, err
		}
		if found {
			return decodeOrNil[T](v)
		}
		metrics.CacheLookups.WithLabelValues(entity, "miss").Inc()

		m := c.locks.NewMutex(kv.LockNameForCacheKey(key))
		acquired, err := m.TryLock(ctx, c.opts.RebuildLockTTL)
		if err != nil {
			return nil, err
		}
		if !acquired {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.opts.MutexRetryInterval):
			}
			continue
		}

		return func() (*T, error) {
			defer func() {
				if _, err := m.Unlock(context.WithoutCancel(ctx)); err != nil {
					c.logger.Warn("failed to release cache rebuild lock", "key", key, "error", err.Error())
				}
			}()

			// Another holder may have filled the key between our read and the lock.
			v, found, err := c.readPlain(ctx, key, entity)
			if err != nil {
				return nil, err
			}
			if found {
				return decodeOrNil[T](v)
			}
			return loadAndStore(ctx, c, key, id, ttl, loader)
		}()
	}
}

// QueryWithLogicalExpire serves hot keys that are pre-warmed with SetWithLogicalExpire.
// An absent key means the entity is not hot and yields nil without touching the
// source of truth. An expired entry is returned as is while a single background
// rebuild, guarded by the distributed lock, refreshes it.
func QueryWithLogicalExpire[T any](ctx context.Context, c *Client, keyPrefix, id string, ttl time.Duration, loader Loader[T]) (*T, error) {
	key := keyPrefix + id
	entity := kv.EntityFromKeyPrefix(keyPrefix)

	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok || raw == nullMarker {
		metrics.CacheLookups.WithLabelValues(entity, "miss").Inc()
		return nil, nil
	}

	var entry logicalEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		c.logger.Warn("dropping unreadable logical cache entry", "key", key, "error", err.Error())
		metrics.CacheLookups.WithLabelValues(entity, "miss").Inc()
		return nil, nil
	}
	value, err := decode[T](entry.Data)
	if err != nil {
		return nil, err
	}

	if c.clock.Now().Before(entry.ExpireAt) {
		metrics.CacheLookups.WithLabelValues(entity, "hit").Inc()
		return value, nil
	}

	metrics.CacheLookups.WithLabelValues(entity, "stale").Inc()
	m := c.locks.NewMutex(kv.LockNameForCacheKey(key))
	acquired, err := m.TryLock(ctx, c.opts.RebuildLockTTL)
	if err != nil {
		c.logger.Warn("cache rebuild lock unavailable, serving stale value", "key", key, "error", err.Error())
		return value, nil
	}
	if acquired {
		rebuildAsync(ctx, c, entity, key, id, ttl, m, loader)
	}
	return value, nil
}

func rebuildAsync[T any](parent context.Context, c *Client, entity, key, id string, ttl time.Duration, m *lock.Mutex, loader Loader[T]) {
	c.rebuilds.Add(1)
	go func() {
		defer c.rebuilds.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), c.opts.RebuildTimeout)
		defer cancel()

		defer func() {
			if _, err := m.Unlock(context.WithoutCancel(ctx)); err != nil {
				c.logger.Warn("failed to release cache rebuild lock", "key", key, "error", err.Error())
			}
		}()
		defer func() {
			if r := recover(); r != nil {
				metrics.CacheRebuilds.WithLabelValues(entity, "panic").Inc()
				c.logger.Error("cache rebuild panicked", "key", key, "panic", fmt.Sprint(r))
			}
		}()

		// A rebuild that finished just before we took the lock leaves nothing to do.
		if fresh, err := c.isFresh(ctx, key); err == nil && fresh {
			metrics.CacheRebuilds.WithLabelValues(entity, "skipped").Inc()
			return
		}

		v, err := loader(ctx, id)
		if err != nil {
			metrics.CacheRebuilds.WithLabelValues(entity, "failed").Inc()
			c.logger.Error("cache rebuild failed, keeping stale value", "key", key, "error", err.Error())
			return
		}
		if v == nil {
			if _, err := c.store.Del(ctx, key); err != nil {
				c.logger.Warn("failed to drop cache entry for removed entity", "key", key, "error", err.Error())
			}
			metrics.CacheRebuilds.WithLabelValues(entity, "removed").Inc()
			return
		}
		if err := c.SetWithLogicalExpire(ctx, key, v, ttl); err != nil {
			metrics.CacheRebuilds.WithLabelValues(entity, "failed").Inc()
			c.logger.Error("failed to write rebuilt cache entry", "key", key, "error", err.Error())
			return
		}
		metrics.CacheRebuilds.WithLabelValues(entity, "rebuilt").Inc()
	}()
}

// readPlain returns found=false on a miss. A found null marker comes back as "".
func (c *Client) readPlain(ctx context.Context, key, entity string) (string, bool, error) {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	if raw == nullMarker {
		metrics.CacheLookups.WithLabelValues(entity, "null").Inc()
	} else {
		metrics.CacheLookups.WithLabelValues(entity, "hit").Inc()
	}
	return raw, true, nil
}

func (c *Client) isFresh(ctx context.Context, key string) (bool, error) {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil || !ok || raw == nullMarker {
		return false, err
	}
	var entry logicalEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return false, nil
	}
	return c.clock.Now().Before(entry.ExpireAt), nil
}

func loadAndStore[T any](ctx context.Context, c *Client, key, id string, ttl time.Duration, loader Loader[T]) (*T, error) {
	v, err := loader(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "load "+key)
	}
	if v == nil {
		if err := c.store.Set(ctx, key, nullMarker, c.opts.NullTTL); err != nil {
			c.logger.Warn("failed to cache null marker", "key", key, "error", err.Error())
		}
		return nil, nil
	}
	if err := c.Set(ctx, key, v, c.ttlWithJitter(ttl)); err != nil {
		c.logger.Warn("failed to populate cache", "key", key, "error", err.Error())
	}
	return v, nil
}

func decodeOrNil[T any](raw string) (*T, error) {
	if raw == nullMarker {
		return nil, nil
	}
	return decode[T]([]byte(raw))
}
