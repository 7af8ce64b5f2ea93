package repository

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/cache"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
)

var catalogCacheKey = cache.Key(cache.CatalogKeyPrefix, "all")

type cachedCatalogRepository struct {
	next  CatalogRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedCatalogRepo keeps the whole catalog under one cache key. Cache
// failures are logged and the underlying repository is used instead.
func NewCachedCatalogRepo(next CatalogRepository, c cache.Cache, ttl time.Duration) CatalogRepository {
	return &cachedCatalogRepository{next: next, cache: c, ttl: ttl}
}

func (r *cachedCatalogRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	return cache.Load(ctx, r.cache, catalogCacheKey, r.ttl, r.next.ListProducts)
}
