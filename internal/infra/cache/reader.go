package cache

import (
	"context"
	"time"

	"seckill-service/internal/pkg/errs"
)

type Strategy string

const (
	StrategyPassThrough   Strategy = "passthrough"
	StrategyMutex         Strategy = "mutex"
	StrategyLogicalExpire Strategy = "logical"
)

var ErrUnknownStrategy = errs.New("unknown cache strategy")

func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case StrategyPassThrough, StrategyMutex, StrategyLogicalExpire:
		return st, nil
	default:
		return "", errs.Wrapf(ErrUnknownStrategy, "%q", s)
	}
}

// Reader binds a value type to one strategy so callers only supply the loader.
type Reader[T any] struct {
	client   *Client
	strategy Strategy
	ttl      time.Duration
}

// NewReader picks the ttl matching the strategy from the client options.
func NewReader[T any](client *Client, strategy Strategy) *Reader[T] {
	ttl := client.opts.TTL
	if strategy == StrategyLogicalExpire {
		ttl = client.opts.LogicalTTL
	}
	return &Reader[T]{client: client, strategy: strategy, ttl: ttl}
}

func (r *Reader[T]) Strategy() Strategy {
	return r.strategy
}

// WarmOnly is true for logical expiration, where a missing key reads as absent.
func (r *Reader[T]) WarmOnly() bool {
	return r.strategy == StrategyLogicalExpire
}

// Get returns nil when the entity does not exist (or, for logical expiration, is not hot).
func (r *Reader[T]) Get(ctx context.Context, keyPrefix, id string, loader Loader[T]) (*T, error) {
	switch r.strategy {
	case StrategyMutex:
		return QueryWithMutex(ctx, r.client, keyPrefix, id, r.ttl, loader)
	case StrategyLogicalExpire:
		return QueryWithLogicalExpire(ctx, r.client, keyPrefix, id, r.ttl, loader)
	default:
		return QueryWithPassThrough(ctx, r.client, keyPrefix, id, r.ttl, loader)
	}
}

// Warm pre-loads a key in the layout its strategy reads back.
func (r *Reader[T]) Warm(ctx context.Context, keyPrefix, id string, value *T) error {
	if r.strategy == StrategyLogicalExpire {
		return r.client.SetWithLogicalExpire(ctx, keyPrefix+id, value, r.ttl)
	}
	return r.client.Set(ctx, keyPrefix+id, value, r.client.ttlWithJitter(r.ttl))
}
