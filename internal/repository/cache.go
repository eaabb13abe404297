package repository

import (
    "context"
    "encoding/json"
    "time"

    "github.com/redis/go-redis/v9"
)

// kvCache is a thin read-through cache over Redis used for the two hot
// per-room reads on the booking path: weekly schedules and price
// rules.  Both change rarely (host edits) and are read on every
// evaluation, quote and commit.  The cache degrades gracefully: a nil
// client or any Redis error behaves like a miss, and writers drop keys
// rather than update them.
type kvCache struct {
    rdb *redis.Client
    ttl time.Duration
}

func newKVCache(rdb *redis.Client, ttl time.Duration) kvCache {
    if ttl <= 0 {
        ttl = 5 * time.Minute
    }
    return kvCache{rdb: rdb, ttl: ttl}
}

// get unmarshals the cached value into dest and reports a hit.
func (c kvCache) get(ctx context.Context, key string, dest any) bool {
    if c.rdb == nil {
        return false
    }
    raw, err := c.rdb.Get(ctx, key).Bytes()
    if err != nil {
        return false
    }
    return json.Unmarshal(raw, dest) == nil
}

// set stores v under key with the cache TTL.  Failures are ignored.
func (c kvCache) set(ctx context.Context, key string, v any) {
    if c.rdb == nil {
        return
    }
    raw, err := json.Marshal(v)
    if err != nil {
        return
    }
    _ = c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

// drop invalidates a key after a write.  Failures are ignored; the TTL
// bounds staleness either way.
func (c kvCache) drop(ctx context.Context, key string) {
    if c.rdb == nil {
        return
    }
    _ = c.rdb.Del(ctx, key).Err()
}
