package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/product/domain"
	"github.com/tair/storefront/internal/product/usecase/query"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
	"github.com/tair/storefront/pkg/response"
)

// ProductHandler serves the read-only catalog endpoints
type ProductHandler struct {
	listHandler     *query.ListProductsHandler
	getHandler      *query.GetProductHandler
	featuredHandler *query.FeaturedProductsHandler
	searchHandler   *query.SearchProductsHandler
	metrics         *metrics.HTTPMetrics
}

// NewProductHandler creates a new product handler
func NewProductHandler(
	listHandler *query.ListProductsHandler,
	getHandler *query.GetProductHandler,
	featuredHandler *query.FeaturedProductsHandler,
	searchHandler *query.SearchProductsHandler,
	m *metrics.HTTPMetrics,
) *ProductHandler {
	return &ProductHandler{
		listHandler:     listHandler,
		getHandler:      getHandler,
		featuredHandler: featuredHandler,
		searchHandler:   searchHandler,
		metrics:         m,
	}
}

// RegisterRoutes mounts the catalog routes; cache wraps every GET.
// featured, search and category are registered before {id} so they win the match.
func (h *ProductHandler) RegisterRoutes(router *mux.Router, cache func(http.Handler) http.Handler) {
	if cache == nil {
		cache = func(next http.Handler) http.Handler { return next }
	}
	route := func(path string, fn http.HandlerFunc) {
		router.HandleFunc(path, h.metrics.Wrap(path, cache(fn).ServeHTTP)).Methods(http.MethodGet)
	}

	route("/api/products", h.ListProducts)
	route("/api/products/featured", h.FeaturedProducts)
	// queries and categories may contain '/', which mux sees decoded
	route("/api/products/search/{query:.+}", h.SearchProducts)
	route("/api/products/category/{category:.+}", h.ProductsByCategory)
	route("/api/products/{id:[0-9]+}", h.GetProduct)
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.listHandler.Handle(r.Context(), query.ListProductsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		response.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(w, http.StatusOK, products)
}

// FeaturedProducts handles GET /api/products/featured
func (h *ProductHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.featuredHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to load featured products")
		response.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(w, http.StatusOK, products)
}

// SearchProducts handles GET /api/products/search/{query}
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := query.SearchProductsQuery{Query: mux.Vars(r)["query"]}
	products, err := h.searchHandler.Handle(r.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrEmptySearch) {
			response.Error(w, http.StatusBadRequest, "Search query is required")
			return
		}
		logger.Error(r.Context()).Err(err).Str("query", q.Query).Msg("Failed to search products")
		response.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(w, http.StatusOK, products)
}

// ProductsByCategory handles GET /api/products/category/{category}
func (h *ProductHandler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	q := query.ListProductsQuery{Category: mux.Vars(r)["category"]}
	products, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Str("category", q.Category).Msg("Failed to list category")
		response.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(w, http.StatusOK, products)
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.getHandler.Handle(r.Context(), query.GetProductQuery{ID: uint(id)})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			response.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		logger.Error(r.Context()).Err(err).Uint64("product_id", id).Msg("Failed to get product")
		response.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(w, http.StatusOK, product)
}
