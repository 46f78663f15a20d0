//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/tair/storefront/internal/config"
	orderhttp "github.com/tair/storefront/internal/order/delivery/http"
	ordercommand "github.com/tair/storefront/internal/order/usecase/command"
	orderquery "github.com/tair/storefront/internal/order/usecase/query"
	producthttp "github.com/tair/storefront/internal/product/delivery/http"
	productcommand "github.com/tair/storefront/internal/product/usecase/command"
	productquery "github.com/tair/storefront/internal/product/usecase/query"
	reviewhttp "github.com/tair/storefront/internal/review/delivery/http"
	reviewcommand "github.com/tair/storefront/internal/review/usecase/command"
	reviewquery "github.com/tair/storefront/internal/review/usecase/query"
	userhttp "github.com/tair/storefront/internal/user/delivery/http"
	usercommand "github.com/tair/storefront/internal/user/usecase/command"
	userquery "github.com/tair/storefront/internal/user/usecase/query"
	"github.com/tair/storefront/pkg/auth"
)

// Wire sets
var InfraSet = wire.NewSet(
	wire.FieldsOf(new(Infra), "DB", "Registry", "Redis", "Publisher"),
	ProvideTokenManager,
	wire.Bind(new(usercommand.TokenIssuer), new(*auth.TokenManager)),
	ProvideRequireAuth,
	ProvideResponseCache,
	ProvideAuthRateLimiter,
	ProvideHTTPMetrics,
	ProvideShopMetrics,
	ProvideEventPublisher,
)

var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideUserRepository,
	ProvideOrderRepository,
	ProvideReviewRepository,
	ProvideOrderProductLookup,
	ProvideReviewProductLookup,
)

var ProductSet = wire.NewSet(
	ProvideFeaturedIDs,
	productquery.NewListProductsHandler,
	productquery.NewGetProductHandler,
	productquery.NewFeaturedProductsHandler,
	productquery.NewSearchProductsHandler,
	productcommand.NewSeedCatalogHandler,
	productcommand.NewReserveStockHandler,
	producthttp.NewProductHandler,
)

var UserSet = wire.NewSet(
	usercommand.NewRegisterUserHandler,
	usercommand.NewLoginUserHandler,
	userquery.NewGetUserHandler,
	userhttp.NewUserHandler,
)

var OrderSet = wire.NewSet(
	ordercommand.NewCreateOrderHandler,
	orderquery.NewListOrdersHandler,
	orderhttp.NewOrderHandler,
)

var ReviewSet = wire.NewSet(
	reviewcommand.NewAddReviewHandler,
	reviewquery.NewListReviewsHandler,
	reviewhttp.NewReviewHandler,
)

// InitializeServer builds the storefront API with all dependencies
func InitializeServer(cfg *config.ServerConfig, infra Infra) (*Server, error) {
	wire.Build(
		InfraSet,
		RepositorySet,
		ProductSet,
		UserSet,
		OrderSet,
		ReviewSet,
		NewServer,
	)
	return nil, nil
}
