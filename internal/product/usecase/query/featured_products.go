package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/product/domain"
)

// FeaturedIDs is the configured featured subset of the catalog
type FeaturedIDs []uint

// FeaturedProductsHandler returns the curated featured products
type FeaturedProductsHandler struct {
	repo domain.ProductRepository
	ids  FeaturedIDs
}

// NewFeaturedProductsHandler creates a new featured products handler
func NewFeaturedProductsHandler(repo domain.ProductRepository, ids FeaturedIDs) *FeaturedProductsHandler {
	return &FeaturedProductsHandler{repo: repo, ids: ids}
}

// Handle returns the featured products that exist; missing ids are skipped
func (h *FeaturedProductsHandler) Handle(ctx context.Context) ([]domain.Product, error) {
	products, err := h.repo.FindByIDs(ctx, h.ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load featured products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}
