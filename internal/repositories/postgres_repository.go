package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/utils"
)

type postgresCatalogRepository struct {
	DB *sql.DB
}

func NewPostgresCatalogRepo(db *sql.DB) CatalogRepository {
	return &postgresCatalogRepository{DB: db}
}

func (r *postgresCatalogRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, category, price, quantity, unit, description, farmer, location, distance, rating
		FROM products
		ORDER BY position
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)

	for rows.Next() {
		var p models.Product

		err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Quantity, &p.Unit, &p.Description, &p.Farmer, &p.Location, &p.Distance, &p.Rating)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}
