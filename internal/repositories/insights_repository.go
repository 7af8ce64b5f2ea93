package repository

import (
	"context"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/shopspring/decimal"
)

// InsightsRepository serves buyer order history and market analytics.
type InsightsRepository interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	MarketTrends(ctx context.Context) (*models.MarketTrends, error)
}

type staticInsightsRepository struct{}

func NewStaticInsightsRepo() InsightsRepository {
	return staticInsightsRepository{}
}

func (staticInsightsRepository) ListOrders(_ context.Context) ([]models.Order, error) {
	return []models.Order{
		{ID: "1", Product: "Organic Tomatoes", Quantity: 5, Total: decimal.NewFromInt(300), Status: models.OrderStatusDelivered, Date: "2024-01-20"},
		{ID: "2", Product: "Fresh Carrots", Quantity: 3, Total: decimal.NewFromInt(135), Status: models.OrderStatusInTransit, Date: "2024-01-22"},
		{ID: "3", Product: "Bell Peppers", Quantity: 2, Total: decimal.NewFromInt(160), Status: models.OrderStatusProcessing, Date: "2024-01-23"},
	}, nil
}

func prices(tomatoes, carrots, peppers, spinach, apples string) map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"tomatoes": decimal.RequireFromString(tomatoes),
		"carrots":  decimal.RequireFromString(carrots),
		"peppers":  decimal.RequireFromString(peppers),
		"spinach":  decimal.RequireFromString(spinach),
		"apples":   decimal.RequireFromString(apples),
	}
}

func demand(vegetables, fruits, herbs, grains int) map[models.Category]int {
	return map[models.Category]int{
		models.CategoryVegetables: vegetables,
		models.CategoryFruits:     fruits,
		models.CategoryHerbs:      herbs,
		models.CategoryGrains:     grains,
	}
}

func (staticInsightsRepository) MarketTrends(_ context.Context) (*models.MarketTrends, error) {
	return &models.MarketTrends{
		Prices: []models.PricePoint{
			{Month: "Jan", Prices: prices("3.20", "2.10", "3.80", "2.90", "2.50")},
			{Month: "Feb", Prices: prices("3.40", "2.20", "3.90", "3.10", "2.60")},
			{Month: "Mar", Prices: prices("3.60", "2.30", "4.10", "3.20", "2.70")},
			{Month: "Apr", Prices: prices("3.50", "2.25", "4.00", "3.00", "2.75")},
			{Month: "May", Prices: prices("3.30", "2.15", "3.85", "2.85", "2.65")},
			{Month: "Jun", Prices: prices("3.45", "2.28", "3.95", "2.95", "2.80")},
		},
		Demand: []models.DemandPoint{
			{Week: "Week 1", Volumes: demand(450, 320, 150, 200)},
			{Week: "Week 2", Volumes: demand(480, 340, 160, 220)},
			{Week: "Week 3", Volumes: demand(520, 380, 180, 240)},
			{Week: "Week 4", Volumes: demand(490, 360, 170, 230)},
		},
		Categories: []models.CategoryShare{
			{Category: models.CategoryVegetables, Percent: 45},
			{Category: models.CategoryFruits, Percent: 30},
			{Category: models.CategoryHerbs, Percent: 15},
			{Category: models.CategoryGrains, Percent: 10},
		},
		TopProducts: []models.TopProduct{
			{Name: "Organic Tomatoes", Sales: 850, Change: 12.5, Trend: "up"},
			{Name: "Fresh Carrots", Sales: 720, Change: 8.2, Trend: "up"},
			{Name: "Bell Peppers", Sales: 690, Change: -2.1, Trend: "down"},
			{Name: "Spinach", Sales: 580, Change: 15.7, Trend: "up"},
			{Name: "Apples", Sales: 950, Change: 6.3, Trend: "up"},
		},
	}, nil
}
