package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/catalog"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/state"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MarketplaceService struct {
	mock.Mock
}

func (m *MarketplaceService) Search(ctx context.Context, criteria models.FilterCriteria) (*models.ProductPage, error) {
	args := m.Called(ctx, criteria)

	page, _ := args.Get(0).(*models.ProductPage)

	return page, args.Error(1)
}

func (m *MarketplaceService) Aggregates(ctx context.Context) (*models.CatalogAggregates, error) {
	args := m.Called(ctx)

	aggregates, _ := args.Get(0).(*models.CatalogAggregates)

	return aggregates, args.Error(1)
}

func (m *MarketplaceService) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	args := m.Called(ctx)

	options, _ := args.Get(0).(*models.FilterOptions)

	return options, args.Error(1)
}

func (m *MarketplaceService) Snapshot(ctx context.Context) (catalog.Snapshot, error) {
	args := m.Called(ctx)

	snapshot, _ := args.Get(0).(catalog.Snapshot)

	return snapshot, args.Error(1)
}

type SessionService struct {
	mock.Mock
}

func (m *SessionService) Start(ctx context.Context) (*models.SessionView, error) {
	args := m.Called(ctx)

	view, _ := args.Get(0).(*models.SessionView)

	return view, args.Error(1)
}

func (m *SessionService) View(ctx context.Context, id uuid.UUID) (*models.SessionView, error) {
	args := m.Called(ctx, id)

	view, _ := args.Get(0).(*models.SessionView)

	return view, args.Error(1)
}

func (m *SessionService) Dispatch(ctx context.Context, id uuid.UUID, action state.Action) (*models.SessionView, error) {
	args := m.Called(ctx, id, action)

	view, _ := args.Get(0).(*models.SessionView)

	return view, args.Error(1)
}

func (m *SessionService) Cart(ctx context.Context, id uuid.UUID) (*models.CartSummary, error) {
	args := m.Called(ctx, id)

	summary, _ := args.Get(0).(*models.CartSummary)

	return summary, args.Error(1)
}

func (m *SessionService) Saved(ctx context.Context, id uuid.UUID) ([]models.Product, error) {
	args := m.Called(ctx, id)

	products, _ := args.Get(0).([]models.Product)

	return products, args.Error(1)
}

func (m *SessionService) Listings(ctx context.Context, id uuid.UUID) ([]models.Product, error) {
	args := m.Called(ctx, id)

	products, _ := args.Get(0).([]models.Product)

	return products, args.Error(1)
}

func (m *SessionService) ListingAggregates(ctx context.Context, id uuid.UUID) (*models.CatalogAggregates, error) {
	args := m.Called(ctx, id)

	aggregates, _ := args.Get(0).(*models.CatalogAggregates)

	return aggregates, args.Error(1)
}

type InsightsService struct {
	mock.Mock
}

func (m *InsightsService) Orders(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)

	orders, _ := args.Get(0).([]models.Order)

	return orders, args.Error(1)
}

func (m *InsightsService) Trends(ctx context.Context) (*models.MarketTrends, error) {
	args := m.Called(ctx)

	trends, _ := args.Get(0).(*models.MarketTrends)

	return trends, args.Error(1)
}
