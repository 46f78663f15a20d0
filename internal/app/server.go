package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/config"
	orderdomain "github.com/tair/storefront/internal/order/domain"
	orderhttp "github.com/tair/storefront/internal/order/delivery/http"
	productdomain "github.com/tair/storefront/internal/product/domain"
	producthttp "github.com/tair/storefront/internal/product/delivery/http"
	productcommand "github.com/tair/storefront/internal/product/usecase/command"
	reviewdomain "github.com/tair/storefront/internal/review/domain"
	reviewhttp "github.com/tair/storefront/internal/review/delivery/http"
	userdomain "github.com/tair/storefront/internal/user/domain"
	userhttp "github.com/tair/storefront/internal/user/delivery/http"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
	"github.com/tair/storefront/pkg/middleware"
	"github.com/tair/storefront/pkg/response"
)

// Server is the assembled storefront API
type Server struct {
	cfg      *config.ServerConfig
	db       *gorm.DB
	registry *prometheus.Registry

	products *producthttp.ProductHandler
	users    *userhttp.UserHandler
	orders   *orderhttp.OrderHandler
	reviews  *reviewhttp.ReviewHandler

	seeder   *productcommand.SeedCatalogHandler
	reserver *productcommand.ReserveStockHandler

	requireAuth RequireAuth
	cache       ResponseCache
	redis       *redis.Client
	limiter     *middleware.RateLimiter
	shop        *metrics.ShopMetrics
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func NewServer(
	cfg *config.ServerConfig,
	db *gorm.DB,
	registry *prometheus.Registry,
	products *producthttp.ProductHandler,
	users *userhttp.UserHandler,
	orders *orderhttp.OrderHandler,
	reviews *reviewhttp.ReviewHandler,
	seeder *productcommand.SeedCatalogHandler,
	reserver *productcommand.ReserveStockHandler,
	requireAuth RequireAuth,
	cache ResponseCache,
	client *redis.Client,
	limiter *middleware.RateLimiter,
	shop *metrics.ShopMetrics,
) *Server {
	return &Server{
		cfg:         cfg,
		db:          db,
		registry:    registry,
		products:    products,
		users:       users,
		orders:      orders,
		reviews:     reviews,
		seeder:      seeder,
		reserver:    reserver,
		requireAuth: requireAuth,
		cache:       cache,
		redis:       client,
		limiter:     limiter,
		shop:        shop,
	}
}

// NewRegistry returns a registry with the Go and process collectors
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Migrate creates or updates every table
func (s *Server) Migrate() error {
	err := s.db.AutoMigrate(
		&userdomain.User{},
		&productdomain.Product{},
		&orderdomain.Order{},
		&orderdomain.OrderItem{},
		&reviewdomain.Review{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Seed inserts the sample catalog into an empty products table when enabled
func (s *Server) Seed(ctx context.Context) error {
	if !s.cfg.SeedCatalog {
		return nil
	}
	n, err := s.seeder.Handle(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	if n > 0 {
		s.shop.TotalProducts.Set(float64(n))
		logger.Logger.Info().Int("products", n).Msg("Catalog seeded")
	}
	return nil
}

// StockReservation decrements stock for every placed order and drops
// cached product responses
func (s *Server) StockReservation() kafka.EventHandler {
	return func(ctx context.Context, event kafka.OrderPlacedEvent) error {
		cmd := productcommand.ReserveStockCommand{OrderReference: event.Reference}
		for _, item := range event.Items {
			cmd.Lines = append(cmd.Lines, productcommand.StockLine{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
		if err := s.reserver.Handle(ctx, cmd); err != nil {
			return err
		}
		if err := middleware.InvalidateCache(ctx, s.redis, "*"); err != nil {
			logger.Warn(ctx).Err(err).Str("order_reference", event.Reference).Msg("Failed to invalidate product cache")
		}
		return nil
	}
}

// Handler returns the root handler with every route and middleware mounted
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.TracingMiddleware("storefront-api"))
	router.Use(middleware.LoggingMiddleware)

	s.products.RegisterRoutes(router, s.cache)
	s.reviews.RegisterRoutes(router, s.requireAuth)
	s.users.RegisterRoutes(router, s.requireAuth, s.limiter)
	s.orders.RegisterRoutes(router, s.requireAuth)

	router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.PathPrefix("/images/").Handler(
		http.StripPrefix("/images/", http.FileServer(http.Dir(s.cfg.ImagesDir))),
	)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Health check failed")
		response.JSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Database: "unavailable"})
		return
	}
	response.JSON(w, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}
