package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/catalog"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/metrics"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/farm-marketplace/internal/repositories"
	"go.opentelemetry.io/otel/attribute"
)

// MarketplaceService answers buyer catalog queries.
type MarketplaceService interface {
	Search(ctx context.Context, criteria models.FilterCriteria) (*models.ProductPage, error)
	Aggregates(ctx context.Context) (*models.CatalogAggregates, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
	// Snapshot returns the current catalog for session actions to check
	// product ids against.
	Snapshot(ctx context.Context) (catalog.Snapshot, error)
}

type marketplaceService struct {
	repo repository.CatalogRepository
}

func NewMarketplaceService(repo repository.CatalogRepository) MarketplaceService {
	return &marketplaceService{repo: repo}
}

func (s *marketplaceService) products(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load catalog").WithError(err)
	}

	return products, nil
}

func (s *marketplaceService) Search(ctx context.Context, criteria models.FilterCriteria) (*models.ProductPage, error) {
	ctx, span := tracer.Start(ctx, "MarketplaceService.Search")
	defer span.End()

	products, err := s.products(ctx)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	normalized := criteria.Normalize()
	matched := catalog.FilterProducts(products, normalized)

	span.SetAttributes(
		attribute.String("catalog.search_term", normalized.SearchTerm),
		attribute.Int("catalog.matched", len(matched)),
	)
	metrics.ObserveSearchResults(len(matched))

	middleware.LoggerFromContext(ctx).Debug("Catalog searched",
		slog.String("searchTerm", normalized.SearchTerm),
		slog.String("category", normalized.Category),
		slog.String("priceBand", string(normalized.PriceBand)),
		slog.String("location", normalized.Location),
		slog.Int("matched", len(matched)),
	)

	return &models.ProductPage{
		Items:          matched,
		Total:          len(products),
		Matched:        len(matched),
		FiltersApplied: normalized.Active(),
		Criteria:       normalized,
	}, nil
}

func (s *marketplaceService) Aggregates(ctx context.Context) (*models.CatalogAggregates, error) {
	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}

	aggregates := catalog.ComputeAggregates(products)

	return &aggregates, nil
}

func (s *marketplaceService) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}

	options := catalog.Options(products)

	return &options, nil
}

func (s *marketplaceService) Snapshot(ctx context.Context) (catalog.Snapshot, error) {
	products, err := s.products(ctx)
	if err != nil {
		return catalog.Snapshot{}, err
	}

	return catalog.NewSnapshot(products), nil
}
