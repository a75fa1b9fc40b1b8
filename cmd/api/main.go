package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"caviste/internal/catalog"
	"caviste/internal/config"
	"caviste/internal/database"
	"caviste/internal/logger"
	"caviste/internal/server"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, logger *zap.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// Give in-flight requests 30 seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")
	done <- true
}

// buildCatalog wires the configured catalog backend: the seeded
// in-memory store by default, postgres with migrations when selected.
func buildCatalog(cfg *config.Config, log *zap.Logger) (server.Dependencies, error) {
	deps := server.Dependencies{}

	if cfg.Catalog.Backend == "postgres" {
		dbService, err := database.New(cfg.Database)
		if err != nil {
			return deps, fmt.Errorf("failed to initialize database: %w", err)
		}

		health := dbService.Health(context.Background())
		log.Info("Database health check", zap.Any("health", health))

		if err := database.RunMigrations(dbService.DB(), "migrations", log); err != nil {
			return deps, fmt.Errorf("failed to run migrations: %w", err)
		}

		store := catalog.NewPostgresStore(dbService.DB())
		deps.Products = store
		deps.Categories = store.CategoryRepository()
		deps.Closer = dbService.Close
		return deps, nil
	}

	store := catalog.NewSeededMemoryStore()
	deps.Products = store
	deps.Categories = store.CategoryRepository()
	return deps, nil
}

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting storefront API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("catalog_backend", cfg.Catalog.Backend),
	)

	deps, err := buildCatalog(cfg, log)
	if err != nil {
		log.Fatal("Failed to build catalog backend", zap.Error(err))
	}

	if cfg.Redis.Enabled {
		deps.Redis = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		log.Info("Rate limiting enabled", zap.Int("requests_per_minute", cfg.RateLimit.RequestsPerMinute))
	}

	srv := server.NewServer(cfg, log, deps)

	done := make(chan bool, 1)
	go gracefulShutdown(srv, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	<-done
	log.Info("Graceful shutdown complete")
}
