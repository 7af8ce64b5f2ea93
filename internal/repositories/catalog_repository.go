package repository

import (
	"context"
	"slices"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/shopspring/decimal"
)

// CatalogRepository supplies the product list buyers browse.
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

type seedCatalogRepository struct {
	products []models.Product
}

// NewSeedCatalogRepo serves the built-in marketplace catalog.
func NewSeedCatalogRepo() CatalogRepository {
	return &seedCatalogRepository{products: SeedCatalog()}
}

func (r *seedCatalogRepository) ListProducts(_ context.Context) ([]models.Product, error) {
	return slices.Clone(r.products), nil
}

func SeedCatalog() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Organic Tomatoes",
			Category:    models.CategoryVegetables,
			Price:       decimal.NewFromInt(60),
			Quantity:    100,
			Unit:        "kg",
			Description: "Fresh organic tomatoes grown without pesticides. Perfect for cooking and salads.",
			Farmer:      "Green Valley Farm",
			Location:    "Lagos",
			Distance:    "5 km",
			Rating:      4.8,
		},
		{
			ID:          "2",
			Name:        "Fresh Carrots",
			Category:    models.CategoryVegetables,
			Price:       decimal.NewFromInt(45),
			Quantity:    150,
			Unit:        "kg",
			Description: "Sweet and crunchy carrots, perfect for cooking and snacking.",
			Farmer:      "Sunny Acres",
			Location:    "Kano",
			Distance:    "8 km",
			Rating:      4.6,
		},
		{
			ID:          "3",
			Name:        "Sweet Bell Peppers",
			Category:    models.CategoryVegetables,
			Price:       decimal.NewFromInt(80),
			Quantity:    75,
			Unit:        "kg",
			Description: "Colorful bell peppers in red, yellow, and green varieties.",
			Farmer:      "Mountain View Farm",
			Location:    "Kaduna",
			Distance:    "12 km",
			Rating:      4.7,
		},
		{
			ID:          "4",
			Name:        "Fresh Spinach",
			Category:    models.CategoryVegetables,
			Price:       decimal.NewFromInt(50),
			Quantity:    50,
			Unit:        "kg",
			Description: "Tender baby spinach leaves, great for salads and cooking.",
			Farmer:      "Green Valley Farm",
			Location:    "Lagos",
			Distance:    "5 km",
			Rating:      4.9,
		},
		{
			ID:          "5",
			Name:        "Organic Apples",
			Category:    models.CategoryFruits,
			Price:       decimal.NewFromInt(55),
			Quantity:    200,
			Unit:        "kg",
			Description: "Crispy organic apples, perfect for eating fresh or baking.",
			Farmer:      "Orchard Hills",
			Location:    "Oyo",
			Distance:    "3 km",
			Rating:      4.8,
		},
		{
			ID:          "6",
			Name:        "Fresh Basil",
			Category:    models.CategoryHerbs,
			Price:       decimal.NewFromInt(200),
			Quantity:    25,
			Unit:        "kg",
			Description: "Aromatic fresh basil, perfect for cooking and garnishing.",
			Farmer:      "Herb Garden Co.",
			Location:    "Rivers",
			Distance:    "7 km",
			Rating:      4.7,
		},
	}
}

// SeedFarmerListings is the listing set a farmer starts with after
// signing in.
func SeedFarmerListings() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Organic Tomatoes",
			Category:    models.CategoryVegetables,
			Price:       decimal.NewFromInt(60),
			Quantity:    100,
			Unit:        "kg",
			Description: "Fresh organic tomatoes grown without pesticides",
			Location:    "Lagos, Nigeria",
		},
		{
			ID:          "2",
			Name:        "Fresh Carrots",
			Category:    models.CategoryVegetables,
			Price:       decimal.NewFromInt(45),
			Quantity:    150,
			Unit:        "kg",
			Description: "Sweet and crunchy carrots, perfect for cooking",
			Location:    "Kano, Nigeria",
		},
	}
}
