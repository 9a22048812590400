package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dtal-platform/api/internal/catalog"
	"github.com/dtal-platform/api/internal/config"
	"github.com/dtal-platform/api/internal/errors"
	"github.com/dtal-platform/api/internal/handlers"
	"github.com/dtal-platform/api/internal/i18n"
	"github.com/dtal-platform/api/internal/levy"
	"github.com/dtal-platform/api/internal/logger"
	"github.com/dtal-platform/api/internal/middleware"
	"github.com/dtal-platform/api/internal/services"
	"github.com/gin-gonic/gin"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting DTAL Platform API", map[string]interface{}{
		"version":     handlers.APIVersion,
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// The static UI string table must cover both languages completely.
	if err := i18n.CheckParity(); err != nil {
		log.Fatal("Translation table parity check failed", err, nil)
	}

	// Localized validator messages for request binding
	if err := errors.RegisterValidationTranslations(); err != nil {
		log.Fatal("Failed to register validation translations", err, nil)
	}

	// Load the static catalog
	store := catalog.NewStore()
	log.Info("Catalog loaded", map[string]interface{}{
		"entries": store.Len(),
	})

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	defaultLang := i18n.ParseLanguage(cfg.I18n.DefaultLanguage)

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS -> Language
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))
	router.Use(middleware.Language(defaultLang))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(store, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Initialize service layer
	levyClient := levy.NewClient(cfg.LevyTimeout(), log)
	catalogService := services.NewCatalogService(store, log)
	levyService := services.NewLevyService(store, levyClient, log)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	levyHandler := handlers.NewLevyHandler(levyService)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		dtals := v1.Group("/dtals")
		{
			dtals.GET("", catalogHandler.List)
			dtals.GET("/:id", catalogHandler.Get)
			dtals.GET("/:id/options", catalogHandler.Options)
			dtals.GET("/:id/integration", catalogHandler.Integration)
			dtals.GET("/:id/source", catalogHandler.Source)
			dtals.POST("/:id/calculate", levyHandler.Calculate)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
