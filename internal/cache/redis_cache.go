package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/config"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/metrics"
	"github.com/redis/go-redis/v9"
)

// redisCache stores JSON documents such as the catalog product list and the
// market trends under "<prefix>:<id>" keys.
type redisCache struct {
	client *redis.Client
	cfg    *config.CacheConfig
}

func NewRedisCache(client *redis.Client, cfg *config.CacheConfig) Cache {
	return &redisCache{
		client: client,
		cfg:    cfg,
	}
}

func prefixOf(key string) string {
	prefix, _, _ := strings.Cut(key, ":")
	return prefix
}

// Get decodes the entry under key into value. An entry that no longer
// decodes into value is dropped so the next read repopulates it.
func (r *redisCache) Get(ctx context.Context, key string, value any) (bool, error) {
	prefix := prefixOf(key)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheLookup(prefix, metrics.CacheMiss)
		return false, nil
	}

	if err != nil {
		metrics.RecordCacheLookup(prefix, metrics.CacheError)
		return false, fmt.Errorf("failed to get key %s from redis: %w", key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		metrics.RecordCacheLookup(prefix, metrics.CacheError)

		if delErr := r.client.Del(ctx, key).Err(); delErr != nil {
			err = errors.Join(err, delErr)
		}

		return false, fmt.Errorf("failed to decode cache entry %s: %w", key, err)
	}

	metrics.RecordCacheLookup(prefix, metrics.CacheHit)

	return true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = r.cfg.DefaultTTL
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", key, err)
	}

	return nil
}

func (r *redisCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s from redis: %w", key, err)
	}

	return nil
}

// Close is a no-op; the client is shared and closed by its owner.
func (r *redisCache) Close() error {
	return nil
}
