package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"assetpulse/config"
	"assetpulse/internal/api"
	"assetpulse/internal/service"
	"assetpulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL (the Row Source) and Redis (the Snapshot Cache).
//   - Initializes the repository and snapshot store adapters.
//   - Creates the service layer (catalog, series, snapshots).
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Connect to Redis
	rdb, err := redisOpener(cfg)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize store adapters
	repo := storage.NewAssetsRepository(db)
	snapshots := storage.NewRedisSnapshotStore(rdb)

	// Initialize service layer (business logic)
	catalogSvc := service.NewCatalogService(repo)
	seriesSvc := service.NewSeriesService(repo)
	snapshotSvc := service.NewSnapshotService(snapshots)

	// Initialize HTTP handler layer and router
	handler := api.NewHandler(catalogSvc, seriesSvc, snapshotSvc)
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping, func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = rdb.Close()
		_ = db.Close()
	}

	return router, cleanup, nil
}
