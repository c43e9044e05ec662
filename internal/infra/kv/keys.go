package kv

import (
	"strings"
	"time"
)

const (
	CachePrefix   = "cache:"
	LockPrefix    = "lock:"
	CounterPrefix = "icr:"
)

// CacheKeyPrefix returns "cache:<entity>:".
func CacheKeyPrefix(entity string) string {
	return CachePrefix + entity + ":"
}

// LockNameForCacheKey maps "cache:<entity>:<id>" to the lock name "<entity>:<id>".
func LockNameForCacheKey(key string) string {
	return strings.TrimPrefix(key, CachePrefix)
}

// EntityFromKeyPrefix maps "cache:<entity>:" back to "<entity>".
func EntityFromKeyPrefix(keyPrefix string) string {
	return strings.TrimSuffix(strings.TrimPrefix(keyPrefix, CachePrefix), ":")
}

// CounterKey is the per-prefix, per-UTC-day sequence key.
func CounterKey(prefix string, day time.Time) string {
	return CounterPrefix + prefix + ":" + day.UTC().Format("20060102")
}
