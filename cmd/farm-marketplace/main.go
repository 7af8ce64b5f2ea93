package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/farm-marketplace/internal/api"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/cache"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/config"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/health"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/farm-marketplace/internal/repositories"
	service "github.com/aaravmahajanofficial/farm-marketplace/internal/services"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/tracing"
	"github.com/aaravmahajanofficial/farm-marketplace/internal/validation"
	"github.com/redis/go-redis/v9"
)

func main() {

	// Runs last, after the connections below are closed.
	exitCode := 0
	defer func() {
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing setup
	shutdownTracing, err := tracing.Init(ctx, cfg.Otel)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Catalog setup
	catalogRepo, db, err := openCatalog(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error loading the catalog", slog.String("source", cfg.Catalog.Source), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if db != nil {
		defer func() {
			if err := db.Close(); err != nil {
				slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
			} else {
				slog.Info("✅ Database connection closed")
			}
		}()
	}

	// Redis setup
	var redisClient *redis.Client
	if cfg.Cache.Enabled || cfg.RateConfig.Enabled {
		redisClient, err = repository.NewRedisClient(ctx, &cfg.RedisConnect)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}

		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
			}
		}()
	}

	var appCache cache.Cache
	if cfg.Cache.Enabled {
		appCache = cache.NewRedisCache(redisClient, &cfg.Cache)
		catalogRepo = repository.NewCachedCatalogRepo(catalogRepo, appCache, cfg.Cache.DefaultTTL)
	}

	var limiter repository.RateLimitRepository
	if cfg.RateConfig.Enabled {
		limiter = repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)
	}

	validate := validation.New()
	marketplaceService := service.NewMarketplaceService(catalogRepo)
	sessionService := service.NewSessionService(marketplaceService, service.SessionOptions{
		Validate: validate,
		DemoProfile: models.User{
			Name:     cfg.DemoProfile.Name,
			Phone:    cfg.DemoProfile.Phone,
			Location: cfg.DemoProfile.Location,
			JoinDate: cfg.DemoProfile.JoinDate,
		},
		SeedListings: repository.SeedFarmerListings(),
		Limiter:      limiter,
		IdleTTL:      cfg.Session.IdleTTL,
		MaxSessions:  cfg.Session.MaxSessions,
	})
	insightsService := service.NewInsightsService(repository.NewStaticInsightsRepo(), appCache, cfg.Cache.DefaultTTL)

	healthChecker, err := health.NewHealthHandler(cfg, health.Dependencies{
		Catalog:  catalogRepo,
		Postgres: db != nil,
		Redis:    redisClient != nil,
	})
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("marketplace initialized",
		slog.String("env", cfg.Env),
		slog.String("version", health.Version),
		slog.String("catalog", cfg.Catalog.Source),
		slog.Bool("cache", cfg.Cache.Enabled),
		slog.Bool("rateLimit", cfg.RateConfig.Enabled))

	// Setup router
	handler := api.NewRouter(api.Services{
		Marketplace: marketplaceService,
		Sessions:    sessionService,
		Insights:    insightsService,
		Validate:    validate,
		Health:      healthChecker.Handler(),
	})

	if cfg.Otel.Enabled {
		handler = tracing.Middleware(cfg.Otel.ServiceName)(handler)
	}

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	if err := serve(&server, done); err != nil {
		slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		exitCode = 1
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := shutdownTracing(flushCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}

// openCatalog returns the configured catalog source. The database handle is
// non-nil only for the postgres source.
func openCatalog(ctx context.Context, cfg *config.Config) (repository.CatalogRepository, *sql.DB, error) {
	switch cfg.Catalog.Source {
	case "", "seed":
		return repository.NewSeedCatalogRepo(), nil, nil
	case "csv":
		return repository.NewCSVCatalogRepo(cfg.Catalog.CSVPath), nil, nil
	case "postgres":
		db, err := repository.Open(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, err
		}

		if err := repository.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}

		if err := repository.SeedProducts(ctx, db, repository.SeedCatalog()); err != nil {
			db.Close()
			return nil, nil, err
		}

		return repository.NewPostgresCatalogRepo(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}
