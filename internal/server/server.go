package server

import (
	"fmt"
	"net/http"
	"time"

	"caviste/internal/cart"
	"caviste/internal/catalog"
	"caviste/internal/config"
	custommiddleware "caviste/internal/middleware"
	"caviste/internal/service"
	"caviste/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Dependencies collects the backends the server is wired with. Redis is
// optional; without it rate limiting is skipped. Closer is invoked on
// shutdown for whatever backend owns resources.
type Dependencies struct {
	Products   catalog.ProductRepository
	Categories catalog.CategoryRepository
	Redis      *redis.Client
	Closer     func() error
}

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	deps   Dependencies
}

func NewServer(cfg *config.Config, logger *zap.Logger, deps Dependencies) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.Recovery(logger))
	router.Use(custommiddleware.RequestLogging(logger))
	router.Use(custommiddleware.CORS(nil, cfg.Server.Env == "development"))

	if deps.Redis != nil {
		router.Use(custommiddleware.RateLimit(deps.Redis, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerMinute,
			Window:            time.Minute,
			KeyPrefix:         "caviste_rate_limit",
		}, logger))
	}

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize services
	catalogService := service.NewCatalogService(deps.Products, deps.Categories, cfg.Catalog.MaxPrice)
	checkoutService := service.NewCheckoutService(cfg.Store.WhatsAppNumber)
	carts := cart.NewManager()

	// Initialize handlers
	catalogHandler := transport.NewCatalogHandler(catalogService, logger)
	cartHandler := transport.NewCartHandler(carts, catalogService, checkoutService, logger)

	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		deps:   deps,
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.deps.Redis != nil {
		if err := s.deps.Redis.Close(); err != nil {
			s.logger.Error("Failed to close redis client", zap.Error(err))
		}
	}

	if s.deps.Closer != nil {
		if err := s.deps.Closer(); err != nil {
			s.logger.Error("Failed to close catalog backend", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
