package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/config"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/utils"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

const productsSchema = `
	CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		position    SERIAL,
		name        TEXT NOT NULL,
		category    TEXT NOT NULL,
		price       NUMERIC(12, 2) NOT NULL CHECK (price >= 0),
		quantity    INTEGER NOT NULL CHECK (quantity >= 0),
		unit        TEXT NOT NULL DEFAULT 'kg',
		description TEXT NOT NULL DEFAULT '',
		farmer      TEXT NOT NULL DEFAULT '',
		location    TEXT NOT NULL DEFAULT '',
		distance    TEXT NOT NULL DEFAULT '',
		rating      NUMERIC(2, 1) NOT NULL DEFAULT 0 CHECK (rating BETWEEN 0 AND 5)
	)`

// Open connects to Postgres through an instrumented driver and checks the
// connection.
func Open(ctx context.Context, cfg *config.Database) (*sql.DB, error) {
	db, err := otelsql.Open("postgres", cfg.GetDSN(), otelsql.WithAttributes(attribute.String("db.system", "postgresql")))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate creates the catalog table when it is missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := db.ExecContext(dbCtx, productsSchema); err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}

	return nil
}

// SeedProducts inserts products that are not in the table yet, in order.
func SeedProducts(ctx context.Context, db *sql.DB, products []models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := db.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (id, name, category, price, quantity, unit, description, farmer, location, distance, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING
	`

	for _, p := range products {
		_, err := tx.ExecContext(dbCtx, query, p.ID, p.Name, p.Category, p.Price, p.Quantity, p.Unit, p.Description, p.Farmer, p.Location, p.Distance, p.Rating)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	return nil
}
