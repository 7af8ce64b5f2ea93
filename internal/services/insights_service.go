package service

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/cache"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/farm-marketplace/internal/repositories"
)

var trendsCacheKey = cache.Key(cache.InsightsKeyPrefix, "trends")

// InsightsService serves the buyer's order history and the market trend
// charts.
type InsightsService interface {
	Orders(ctx context.Context) ([]models.Order, error)
	Trends(ctx context.Context) (*models.MarketTrends, error)
}

type insightsService struct {
	repo  repository.InsightsRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewInsightsService caches market trends when c is not nil.
func NewInsightsService(repo repository.InsightsRepository, c cache.Cache, ttl time.Duration) InsightsService {
	return &insightsService{repo: repo, cache: c, ttl: ttl}
}

func (s *insightsService) Orders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

func (s *insightsService) Trends(ctx context.Context) (*models.MarketTrends, error) {
	trends, err := cache.Load(ctx, s.cache, trendsCacheKey, s.ttl, s.repo.MarketTrends)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch market trends").WithError(err)
	}

	return trends, nil
}
