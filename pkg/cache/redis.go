package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/versionlens/pkg/errors"
	"github.com/matzehuels/versionlens/pkg/observability"
)

// DefaultRedisPrefix namespaces versionlens keys in a shared Redis database.
const DefaultRedisPrefix = "versionlens:"

// RedisCache stores entries in Redis so several machines can share lookups.
// Entries use the same JSON form as [FileCache]; Redis expires them after the
// TTL and Get still checks the stored timestamp.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisCache connects to the Redis server at addr and verifies the
// connection with PING.
func NewRedisCache(ctx context.Context, addr string, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(errors.ErrCodeCacheIO, err, "connect redis %s", addr)
	}
	return NewRedisCacheFromClient(client, ttl), nil
}

// NewRedisCacheFromClient wraps an existing client. A non-positive ttl uses
// [DefaultTTL].
func NewRedisCacheFromClient(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, prefix: DefaultRedisPrefix, ttl: ttl, now: time.Now}
}

// Get retrieves a value. Stale entries are deleted and reported as a miss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	if _, _, err := SplitKey(key); err != nil {
		return "", false, err
	}

	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		observability.Cache().OnCacheMiss(ctx, "redis")
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(errors.ErrCodeCacheIO, err, "redis get %s", key)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil || e.expired(c.now(), c.ttl) {
		if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
			return "", false, errors.Wrap(errors.ErrCodeCacheIO, err, "redis evict %s", key)
		}
		observability.Cache().OnCacheMiss(ctx, "redis")
		return "", false, nil
	}

	observability.Cache().OnCacheHit(ctx, "redis")
	return e.Value, true, nil
}

// Set stores a value with a server-side expiry equal to the TTL.
func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	if _, _, err := SplitKey(key); err != nil {
		return err
	}
	data, err := json.Marshal(newEntry(value, c.now()))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", key)
	}
	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeCacheIO, err, "redis set %s", key)
	}
	observability.Cache().OnCacheSet(ctx, "redis", len(data))
	return nil
}

// Clear deletes every key under the cache prefix.
func (c *RedisCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 500).Iterator()
	batch := make([]string, 0, 500)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return errors.Wrap(errors.ErrCodeCacheIO, err, "redis clear")
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeCacheIO, err, "redis scan")
	}
	if len(batch) > 0 {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return errors.Wrap(errors.ErrCodeCacheIO, err, "redis clear")
		}
	}
	return nil
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ensure RedisCache implements Store.
var _ Store = (*RedisCache)(nil)
