package repository

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// catalogRow is one line of a catalog CSV export.
type catalogRow struct {
	ID          string  `csv:"id"`
	Name        string  `csv:"name"`
	Category    string  `csv:"category"`
	Price       string  `csv:"price"`
	Quantity    int     `csv:"quantity"`
	Unit        string  `csv:"unit"`
	Description string  `csv:"description"`
	Farmer      string  `csv:"farmer"`
	Location    string  `csv:"location"`
	Distance    string  `csv:"distance"`
	Rating      float64 `csv:"rating"`
}

type csvCatalogRepository struct {
	path string
}

// NewCSVCatalogRepo reads the catalog from a CSV file on every call.
func NewCSVCatalogRepo(path string) CatalogRepository {
	return &csvCatalogRepository{path: path}
}

func (r *csvCatalogRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)

	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog csv: %w", err)
	}
	defer file.Close()

	var rows []*catalogRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("parsing catalog csv: %w", err)
	}

	products := make([]models.Product, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))

	for i, row := range rows {
		product, err := row.toProduct()
		if err != nil {
			logger.Warn("Skipping invalid catalog row", slog.Int("line", i+2), slog.String("id", row.ID), slog.Any("error", err))
			continue
		}

		// The first row with an id wins.
		if _, dup := seen[product.ID]; dup {
			logger.Warn("Skipping duplicate catalog row", slog.Int("line", i+2), slog.String("id", row.ID))
			continue
		}

		seen[product.ID] = struct{}{}
		products = append(products, product)
	}

	return products, nil
}

func (row *catalogRow) toProduct() (models.Product, error) {
	if row.ID == "" {
		return models.Product{}, fmt.Errorf("product id is required")
	}

	if row.Name == "" {
		return models.Product{}, fmt.Errorf("product name is required")
	}

	category := models.Category(row.Category)
	if !category.Valid() {
		return models.Product{}, fmt.Errorf("unknown category %q", row.Category)
	}

	price, err := decimal.NewFromString(row.Price)
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid price %q: %w", row.Price, err)
	}

	if price.IsNegative() {
		return models.Product{}, fmt.Errorf("price cannot be negative")
	}

	if row.Quantity < 0 {
		return models.Product{}, fmt.Errorf("quantity cannot be negative")
	}

	if row.Rating < 0 || row.Rating > 5 {
		return models.Product{}, fmt.Errorf("rating %v is outside 0-5", row.Rating)
	}

	return models.Product{
		ID:          row.ID,
		Name:        row.Name,
		Category:    category,
		Price:       price,
		Quantity:    row.Quantity,
		Unit:        row.Unit,
		Description: row.Description,
		Farmer:      row.Farmer,
		Location:    row.Location,
		Distance:    row.Distance,
		Rating:      row.Rating,
	}, nil
}
