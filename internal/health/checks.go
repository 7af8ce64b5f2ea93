package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/config"
	repository "github.com/aaravmahajanofficial/farm-marketplace/internal/repositories"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const Version = "1.0.0"

type Dependencies struct {
	Catalog repository.CatalogRepository
	// Postgres adds a database check when the catalog is read from Postgres.
	Postgres bool
	// Redis adds a Redis check when the cache or rate limiter is enabled.
	Redis bool
}

func NewHealthHandler(cfg *config.Config, deps Dependencies) (*health.Health, error) {
	checks := []health.Config{
		{
			Name:      "catalog",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check:     catalogCheck(deps.Catalog),
		},
	}

	if deps.Postgres {
		checks = append(checks, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	}

	if deps.Redis {
		checks = append(checks, health.Config{
			Name:    "redis",
			Timeout: 2 * time.Second,
			// The catalog is still served when Redis is down.
			SkipOnErr: true,
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
			Version: Version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func catalogCheck(repo repository.CatalogRepository) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if repo == nil {
			return fmt.Errorf("catalog repository is not initialized")
		}

		products, err := repo.ListProducts(ctx)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		if len(products) == 0 {
			return fmt.Errorf("catalog is empty")
		}

		return nil
	}
}
