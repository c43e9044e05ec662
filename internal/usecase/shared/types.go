package shared

// ShopCacheKeyPrefix is the cache-aside key prefix for shop entries.
const ShopCacheKeyPrefix = "cache:shop:"
