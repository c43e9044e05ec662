package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seckill-service/internal/pkg/config"
	"seckill-service/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Script is a Lua script evaluated with EVALSHA, falling back to EVAL on NOSCRIPT.
type Script struct {
	script *redis.Script
}

func NewScript(src string) *Script {
	return &Script{script: redis.NewScript(src)}
}

type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return storeErr(s.client.Ping(ctx).Err(), "ping")
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storeErr(err, "get "+key)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return storeErr(s.client.Set(ctx, key, value, ttl).Err(), "set "+key)
}

func (s *RedisStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, storeErr(err, "setnx "+key)
	}
	return ok, nil
}

func (s *RedisStore) Incr(ctx context.Context, key string) (int64, error) {
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, storeErr(err, "incr "+key)
	}
	return n, nil
}

func (s *RedisStore) Del(ctx context.Context, keys ...string) (int64, error) {
	n, err := s.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, storeErr(err, "del")
	}
	return n, nil
}

func (s *RedisStore) HSet(ctx context.Context, key string, values map[string]any) error {
	return storeErr(s.client.HSet(ctx, key, values).Err(), "hset "+key)
}

func (s *RedisStore) Eval(ctx context.Context, script *Script, keys []string, args ...any) (any, error) {
	res, err := script.script.Run(ctx, s.client, keys, args...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, storeErr(err, "eval")
	}
	return res, nil
}

func (s *RedisStore) XAdd(ctx context.Context, stream string, values map[string]any) (string, error) {
	id, err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: values,
	}).Result()
	if err != nil {
		return "", storeErr(err, "xadd "+stream)
	}
	return id, nil
}

func (s *RedisStore) XRange(ctx context.Context, stream, start, stop string, count int64) ([]StreamEntry, error) {
	var (
		msgs []redis.XMessage
		err  error
	)
	if count > 0 {
		msgs, err = s.client.XRangeN(ctx, stream, start, stop, count).Result()
	} else {
		msgs, err = s.client.XRange(ctx, stream, start, stop).Result()
	}
	if err != nil {
		return nil, storeErr(err, "xrange "+stream)
	}

	entries := make([]StreamEntry, 0, len(msgs))
	for _, m := range msgs {
		values := make(map[string]string, len(m.Values))
		for k, v := range m.Values {
			values[k] = fmt.Sprint(v)
		}
		entries = append(entries, StreamEntry{ID: m.ID, Values: values})
	}
	return entries, nil
}

func (s *RedisStore) XDel(ctx context.Context, stream string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	return storeErr(s.client.XDel(ctx, stream, ids...).Err(), "xdel "+stream)
}

func storeErr(err error, op string) error {
	if err == nil {
		return nil
	}
	return errs.Mark(errs.Wrap(err, "redis "+op), errs.ErrStoreUnavailable)
}
