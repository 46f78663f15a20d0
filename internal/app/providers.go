package app

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/config"
	ordercommand "github.com/tair/storefront/internal/order/usecase/command"
	orderdomain "github.com/tair/storefront/internal/order/domain"
	orderrepo "github.com/tair/storefront/internal/order/repository"
	productdomain "github.com/tair/storefront/internal/product/domain"
	productrepo "github.com/tair/storefront/internal/product/repository"
	productquery "github.com/tair/storefront/internal/product/usecase/query"
	reviewcommand "github.com/tair/storefront/internal/review/usecase/command"
	reviewdomain "github.com/tair/storefront/internal/review/domain"
	reviewrepo "github.com/tair/storefront/internal/review/repository"
	userdomain "github.com/tair/storefront/internal/user/domain"
	userrepo "github.com/tair/storefront/internal/user/repository"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/metrics"
	"github.com/tair/storefront/pkg/middleware"
)

// MetricsNamespace prefixes every exported Prometheus metric
const MetricsNamespace = "storefront"

// Infra groups the connections opened by the binary before wiring
type Infra struct {
	DB       *gorm.DB
	Registry *prometheus.Registry
	// Redis and Publisher are nil when not configured
	Redis     *redis.Client
	Publisher *kafka.Publisher
}

// RequireAuth guards a handler with bearer token validation
type RequireAuth func(http.HandlerFunc) http.HandlerFunc

// ResponseCache wraps cacheable GET handlers
type ResponseCache func(http.Handler) http.Handler

func ProvideTokenManager(cfg *config.ServerConfig) *auth.TokenManager {
	return auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
}

func ProvideRequireAuth(tokens *auth.TokenManager) RequireAuth {
	return middleware.AuthMiddleware(tokens)
}

func ProvideResponseCache(client *redis.Client, cfg *config.ServerConfig) ResponseCache {
	cacheCfg := middleware.DefaultCacheConfig()
	cacheCfg.TTL = cfg.CacheTTL
	return middleware.CacheMiddleware(client, cacheCfg)
}

// ProvideAuthRateLimiter limits register and login per client IP per minute
func ProvideAuthRateLimiter(client *redis.Client, cfg *config.ServerConfig) *middleware.RateLimiter {
	if client == nil {
		return nil
	}
	return middleware.NewRateLimiter(client, "auth", cfg.AuthRateLimit, time.Minute)
}

func ProvideHTTPMetrics(reg *prometheus.Registry) *metrics.HTTPMetrics {
	return metrics.NewHTTPMetrics(MetricsNamespace, reg)
}

func ProvideShopMetrics(reg *prometheus.Registry) *metrics.ShopMetrics {
	return metrics.NewShopMetrics(MetricsNamespace, reg)
}

func ProvideFeaturedIDs(cfg *config.ServerConfig) productquery.FeaturedIDs {
	return productquery.FeaturedIDs(cfg.FeaturedIDs)
}

// Repositories are decorated with tracing spans

func ProvideProductRepository(db *gorm.DB) productdomain.ProductRepository {
	return productrepo.NewTracingProductRepository(productrepo.NewGormProductRepository(db))
}

func ProvideUserRepository(db *gorm.DB) userdomain.UserRepository {
	return userrepo.NewTracingUserRepository(userrepo.NewGormUserRepository(db))
}

func ProvideOrderRepository(db *gorm.DB) orderdomain.OrderRepository {
	return orderrepo.NewTracingOrderRepository(orderrepo.NewGormOrderRepository(db))
}

func ProvideReviewRepository(db *gorm.DB) reviewdomain.ReviewRepository {
	return reviewrepo.NewTracingReviewRepository(reviewrepo.NewGormReviewRepository(db))
}

func ProvideOrderProductLookup(repo productdomain.ProductRepository) ordercommand.ProductLookup {
	return repo
}

func ProvideReviewProductLookup(repo productdomain.ProductRepository) reviewcommand.ProductLookup {
	return repo
}

// ProvideEventPublisher keeps a nil publisher a nil interface
func ProvideEventPublisher(p *kafka.Publisher) ordercommand.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}
