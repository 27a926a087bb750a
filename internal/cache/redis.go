package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// scanBatchSize bounds how many keys a single SCAN iteration returns
const scanBatchSize = 100

// RedisStore implements Store on a Redis database. Values are
// JSON-encoded on write and surface as []byte on read; GetTyped decodes
// them back into their concrete type. Redis failures never propagate to
// callers: they are logged and reported as misses.
type RedisStore struct {
	client *redis.Client
	logger Logger
}

// NewRedisStore creates a Redis-backed cache store
func NewRedisStore(config *RedisConfig, logger Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	// Test the connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisStore{client: client, logger: logger}, nil
}

// Get retrieves the raw JSON bytes cached under key
func (r *RedisStore) Get(ctx context.Context, key string) (interface{}, bool) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.LogError(err, "cache: redis get failed")
		}
		missesTotal.Inc()
		return nil, false
	}
	hitsTotal.Inc()
	return data, true
}

// Set stores the JSON encoding of value under key with the given TTL
func (r *RedisStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.LogError(err, "cache: failed to encode value")
		return
	}
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		r.logger.LogError(err, "cache: redis set failed")
		return
	}
	setsTotal.Inc()
}

// Delete removes a single key
func (r *RedisStore) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.LogError(err, "cache: redis delete failed")
		return
	}
	deletesTotal.Inc()
}

// DeletePattern scans for keys containing pattern and removes them in
// batches
func (r *RedisStore) DeletePattern(ctx context.Context, pattern string) {
	match := "*" + pattern + "*"
	removed := 0
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, match, scanBatchSize).Result()
		if err != nil {
			r.logger.LogError(err, "cache: redis scan failed")
			return
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				r.logger.LogError(err, "cache: redis delete failed")
				return
			}
			removed += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	invalidationsTotal.Add(float64(removed))
}

// Clear flushes the configured Redis database. The store assumes a
// logical database dedicated to this cache.
func (r *RedisStore) Clear(ctx context.Context) {
	if err := r.client.FlushDB(ctx).Err(); err != nil {
		r.logger.LogError(err, "cache: redis flush failed")
	}
}

// Len reports the key count of the configured Redis database
func (r *RedisStore) Len(ctx context.Context) int {
	n, err := r.client.DBSize(ctx).Result()
	if err != nil {
		r.logger.LogError(err, "cache: redis dbsize failed")
		return 0
	}
	return int(n)
}

// Close closes the Redis connection
func (r *RedisStore) Close() error {
	return r.client.Close()
}
