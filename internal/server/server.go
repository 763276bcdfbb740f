package server

import (
	"fmt"
	"net/http"
	"time"

	"catalog-admin/internal/assets"
	"catalog-admin/internal/config"
	custommiddleware "catalog-admin/internal/middleware"
	"catalog-admin/internal/notify"
	"catalog-admin/internal/store"
	"catalog-admin/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	redis  *redis.Client
}

// NewServer wires the catalog store, its collaborators and the HTTP routes.
// With Redis enabled, blobs, invalidation broadcasts and rate limiting run
// through it; otherwise everything stays in process.
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.Recovery(logger))
	router.Use(custommiddleware.Logging(logger))
	router.Use(custommiddleware.CORS(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))

	var (
		redisClient *redis.Client
		blobs       assets.Store
		notifier    notify.Notifier
	)
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		blobs = assets.NewRedisStore(redisClient)
		notifier = notify.NewRedisNotifier(redisClient, logger)

		router.Use(custommiddleware.RateLimit(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerMinute,
			Window:            time.Minute,
			KeyPrefix:         "catalog_rate_limit",
		}, logger))
	} else {
		blobs = assets.NewMemoryStore()
		notifier = notify.NewLogNotifier(logger)
	}

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	catalogStore := store.New(logger, blobs, notifier)

	transport.NewCatalogHandler(catalogStore, logger).RegisterRoutes(router)
	transport.NewProductHandler(catalogStore, logger).RegisterRoutes(router)
	transport.NewMarketingHandler(catalogStore, logger).RegisterRoutes(router)
	transport.NewAssetsHandler(blobs, logger).RegisterRoutes(router)

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
		redis:  redisClient,
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
