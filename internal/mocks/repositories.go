// Package mocks holds testify mocks for the repository, cache and service
// interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/stretchr/testify/mock"
)

type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)

	products, _ := args.Get(0).([]models.Product)

	return products, args.Error(1)
}

type InsightsRepository struct {
	mock.Mock
}

func (m *InsightsRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)

	orders, _ := args.Get(0).([]models.Order)

	return orders, args.Error(1)
}

func (m *InsightsRepository) MarketTrends(ctx context.Context) (*models.MarketTrends, error) {
	args := m.Called(ctx)

	trends, _ := args.Get(0).(*models.MarketTrends)

	return trends, args.Error(1)
}

type RateLimitRepository struct {
	mock.Mock
}

func (m *RateLimitRepository) CheckRateLimit(ctx context.Context, subject string) (bool, int, int, error) {
	args := m.Called(ctx, subject)

	return args.Bool(0), args.Int(1), args.Int(2), args.Error(3)
}

type Cache struct {
	mock.Mock
}

func (m *Cache) Get(ctx context.Context, key string, value any) (bool, error) {
	args := m.Called(ctx, key, value)

	return args.Bool(0), args.Error(1)
}

func (m *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *Cache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *Cache) Close() error {
	return m.Called().Error(0)
}
