package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/yatube/config"
	"github.com/d60-Lab/yatube/pkg/logger"
)

// LoadFunc produces the payload for a cache miss.
type LoadFunc func(ctx context.Context) ([]byte, error)

// PageCache caches rendered listing payloads by key. Invalidate drops every
// entry at once; it is called after each post mutation.
type PageCache interface {
	Fetch(ctx context.Context, key string, load LoadFunc) ([]byte, error)
	Invalidate(ctx context.Context) error
}

// RedisPageCache stores entries under <prefix>:<generation>:<key>. Invalidate
// bumps the generation counter, so stale entries become unreachable and age
// out through their TTL.
type RedisPageCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration

	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedisPageCache builds a page cache on top of the provided Redis client.
func NewRedisPageCache(client *redis.Client, prefix string, ttl time.Duration) *RedisPageCache {
	if ttl <= 0 {
		ttl = 20 * time.Second
	}
	if prefix == "" {
		prefix = "page"
	}
	return &RedisPageCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisPageCache) Fetch(ctx context.Context, key string, load LoadFunc) ([]byte, error) {
	// generation is read once so a concurrent Invalidate can't get a stale
	// payload stored under the new generation
	gen, err := c.generation(ctx)
	if err != nil {
		logger.Warn("page cache unavailable", zap.String("key", key), zap.Error(err))
		return load(ctx)
	}
	full := c.entryKey(gen, key)

	data, err := c.client.Get(ctx, full).Bytes()
	if err == nil {
		c.hits.Add(1)
		return data, nil
	}
	if !errors.Is(err, redis.Nil) {
		logger.Warn("page cache get failed", zap.String("key", full), zap.Error(err))
	}
	c.misses.Add(1)

	data, err = load(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.client.Set(ctx, full, data, c.ttl).Err(); err != nil {
		logger.Warn("page cache set failed", zap.String("key", full), zap.Error(err))
	}
	return data, nil
}

func (c *RedisPageCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, c.genKey()).Err()
}

func (c *RedisPageCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, c.genKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *RedisPageCache) genKey() string { return c.prefix + ":gen" }

func (c *RedisPageCache) entryKey(gen int64, key string) string {
	return fmt.Sprintf("%s:%d:%s", c.prefix, gen, key)
}

// Counters reports cache hits and misses since start.
func (c *RedisPageCache) Counters() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// NopPageCache always loads; used when Redis is not configured.
type NopPageCache struct{}

func (NopPageCache) Fetch(ctx context.Context, _ string, load LoadFunc) ([]byte, error) {
	return load(ctx)
}

func (NopPageCache) Invalidate(context.Context) error { return nil }

// New returns a Redis backed cache when an address is configured, otherwise a
// no-op cache. The returned close func releases the Redis client.
func New(cfg config.RedisConfig) (PageCache, func() error) {
	if cfg.Addr == "" {
		logger.Info("page cache disabled: redis.addr is empty")
		return NopPageCache{}, func() error { return nil }
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// keep the cache: Fetch falls back to load while redis is down
		logger.Warn("redis ping failed", zap.String("addr", cfg.Addr), zap.Error(err))
	}
	return NewRedisPageCache(client, cfg.Prefix, cfg.CacheTTL), client.Close
}
