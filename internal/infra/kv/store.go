// Package kv is the shared key-value store every service instance coordinates through.
// All admission state, cache entries, locks and id counters live here.
package kv

import (
	"context"
	"time"
)

// Store is the narrow set of primitives the core needs from the shared store.
// Errors returned by implementations are marked with errs.ErrStoreUnavailable.
type Store interface {
	// Get returns ok=false when the key does not exist.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Incr(ctx context.Context, key string) (int64, error)
	Del(ctx context.Context, keys ...string) (int64, error)
	HSet(ctx context.Context, key string, values map[string]any) error
	// Eval runs a server-side script atomically.
	Eval(ctx context.Context, script *Script, keys []string, args ...any) (any, error)

	XAdd(ctx context.Context, stream string, values map[string]any) (string, error)
	XRange(ctx context.Context, stream, start, stop string, count int64) ([]StreamEntry, error)
	XDel(ctx context.Context, stream string, ids ...string) error
}

type StreamEntry struct {
	ID     string
	Values map[string]string
}
