package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/utils"
)

// Load returns the value cached under key, calling load on a miss and
// storing its result for ttl. Cache failures are logged and fall through
// to load; load errors are returned and never cached. A nil cache always
// loads.
func Load[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	logger := middleware.LoggerFromContext(ctx)

	if c != nil {
		var cached T

		cacheCtx, cancel := utils.WithCacheTimeout(ctx)
		found, err := c.Get(cacheCtx, key, &cached)
		cancel()

		if err != nil {
			logger.Warn("Cache read failed", slog.String("key", key), slog.Any("error", err))
		} else if found {
			logger.Debug("Cache hit", slog.String("key", key))
			return cached, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if c != nil {
		cacheCtx, cancel := utils.WithCacheTimeout(ctx)
		defer cancel()

		if err := c.Set(cacheCtx, key, value, ttl); err != nil {
			logger.Warn("Cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return value, nil
}
