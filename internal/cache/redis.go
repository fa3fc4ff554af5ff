package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/redis/go-redis/v9"
)

// scanBatch is the COUNT hint passed to SCAN.
const scanBatch = 100

type counters struct {
	hits    atomic.Uint64
	misses  atomic.Uint64
	sets    atomic.Uint64
	deletes atomic.Uint64
	errors  atomic.Uint64
}

// RedisCache implements Cache on top of a go-redis UniversalClient.
type RedisCache struct {
	client redis.UniversalClient
	prefix string
	// globPrefix is prefix with glob metacharacters escaped for SCAN MATCH.
	globPrefix string
	stats      counters
	logger     *slog.Logger
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

var (
	_ Cache         = (*RedisCache)(nil)
	_ StatsReporter = (*RedisCache)(nil)
)

// NewRedisClient builds a client for cfg. One address yields a single-node
// client; several addresses yield a cluster client, as decided by
// redis.NewUniversalClient.
func NewRedisClient(cfg config.CacheConfig) redis.UniversalClient {
	return redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    cfg.Addrs,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedisCache wraps client. Every key and pattern is namespaced with prefix.
func NewRedisCache(client redis.UniversalClient, prefix string, logger *slog.Logger) *RedisCache {
	if client == nil {
		panic("redis client cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisCache{
		client:     client,
		prefix:     prefix,
		globPrefix: globEscaper.Replace(prefix),
		logger:     logger.With(slog.String("component", "cache")),
	}
}

// Get implements Cache.Get.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.stats.misses.Add(1)
			return "", false, nil
		}
		c.stats.errors.Add(1)
		return "", false, fmt.Errorf("cache get %q: %w", key, err)
	}

	c.stats.hits.Add(1)
	return val, true, nil
}

// Set implements Cache.Set.
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		c.stats.errors.Add(1)
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	c.stats.sets.Add(1)
	return nil
}

// DeleteByPattern implements Cache.DeleteByPattern. The prefix is matched
// literally; only pattern is a glob. On a cluster client every master is
// scanned, since SCAN only walks the node it is sent to.
func (c *RedisCache) DeleteByPattern(ctx context.Context, pattern string) error {
	fullPattern := c.globPrefix + pattern

	var deleted atomic.Int64
	scan := func(ctx context.Context, node redis.UniversalClient) error {
		n, err := deleteMatching(ctx, node, fullPattern)
		deleted.Add(n)
		return err
	}

	var err error
	if cluster, ok := c.client.(*redis.ClusterClient); ok {
		err = cluster.ForEachMaster(ctx, func(ctx context.Context, node *redis.Client) error {
			return scan(ctx, node)
		})
	} else {
		err = scan(ctx, c.client)
	}

	c.stats.deletes.Add(uint64(deleted.Load()))
	if err != nil {
		c.stats.errors.Add(1)
		return fmt.Errorf("cache delete pattern %q: %w", pattern, err)
	}

	logger.FromContextOrDefault(ctx, c.logger).Debug("cache keys invalidated",
		slog.String("pattern", fullPattern),
		slog.Int64("deleted", deleted.Load()))
	return nil
}

// deleteMatching walks one node with SCAN and deletes each match. Keys are
// deleted one per command so cluster nodes never see a cross-slot DEL.
func deleteMatching(ctx context.Context, node redis.UniversalClient, pattern string) (int64, error) {
	var (
		cursor  uint64
		deleted int64
	)
	for {
		keys, next, err := node.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return deleted, fmt.Errorf("scan: %w", err)
		}

		if len(keys) > 0 {
			pipe := node.Pipeline()
			cmds := make([]*redis.IntCmd, len(keys))
			for i, key := range keys {
				cmds[i] = pipe.Del(ctx, key)
			}
			if _, err := pipe.Exec(ctx); err != nil {
				return deleted, fmt.Errorf("del: %w", err)
			}
			for _, cmd := range cmds {
				deleted += cmd.Val()
			}
		}

		cursor = next
		if cursor == 0 {
			return deleted, nil
		}
	}
}

// Stats returns the current counters.
func (c *RedisCache) Stats() StatsSnapshot {
	hits := c.stats.hits.Load()
	misses := c.stats.misses.Load()
	total := hits + misses

	var hitRate float64
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}

	return StatsSnapshot{
		Hits:      hits,
		Misses:    misses,
		Sets:      c.stats.sets.Load(),
		Deletes:   c.stats.deletes.Load(),
		Errors:    c.stats.errors.Load(),
		HitRate:   hitRate,
		TotalGets: total,
	}
}

// Ping checks if the Redis connection is healthy.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
