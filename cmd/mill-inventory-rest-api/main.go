// cmd/mill-inventory-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "mill_inventory_service/internal/api/rest/v1"
	"mill_inventory_service/internal/app"
	"mill_inventory_service/internal/domain/constructions"
	"mill_inventory_service/internal/domain/images"
	"mill_inventory_service/internal/domain/mills"
	"mill_inventory_service/internal/infrastructure/cache"
	"mill_inventory_service/internal/infrastructure/connector"
	"mill_inventory_service/internal/infrastructure/persistence"
	"mill_inventory_service/internal/infrastructure/persistence/models"
	"mill_inventory_service/internal/pkg/config"
	"mill_inventory_service/internal/pkg/logger"
	"mill_inventory_service/internal/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application services
type appServices struct {
	catalog      mills.CatalogService
	construction constructions.AdminService
	image        images.ImageService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(
		&models.ConstructionModel{},
		&models.TranslationModel{},
		&models.MillDataModel{},
		&models.WaterLineModel{},
		&models.PocaModel{},
		&models.ImageModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	constructionRepo, err := persistence.NewGormConstructionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create construction repository: %w", err)
	}

	catalogRepo, err := persistence.NewGormCatalogRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog repository: %w", err)
	}

	imageRepo, err := persistence.NewGormImageRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image repository: %w", err)
	}

	// Initialize image store
	ctx := context.Background()
	imageStore, err := connector.NewAzureImageStore(ctx, &cfg.ImageStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image store: %w", err)
	}
	log.Info("Azure image store initialized successfully")

	// Initialize services
	catalogService, err := app.NewCatalogService(catalogRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	// Wrap the catalog in a Redis read-through cache when enabled; the cache
	// doubles as the invalidator the dashboard service notifies on publish.
	var invalidator app.CatalogInvalidator
	if cfg.Cache.Enabled {
		cachedCatalog, err := cache.NewRedisCatalogCache(catalogService, &cfg.Cache, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create catalog cache: %w", err)
		}
		catalogService = cachedCatalog
		invalidator = cachedCatalog
		log.Info("Redis catalog cache enabled at ", cfg.Cache.Addr)
	}

	imageService, err := app.NewImageService(imageRepo, imageStore, constructionRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create image service: %w", err)
	}

	constructionService, err := app.NewConstructionService(constructionRepo, invalidator, imageService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create construction service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		catalog:      catalogService,
		construction: constructionService,
		image:        imageService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Request metrics
	r.Use(metrics.GinMiddleware())

	// Setup API routes
	v1.SetupRoutes(r, services.catalog, services.construction, services.image, &cfg.Auth)

	// Operational endpoints
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
