package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/storefront/internal/product/domain"
)

// ListProductsQuery lists the catalog, optionally restricted to one category
type ListProductsQuery struct {
	Category string
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) ([]domain.Product, error) {
	var products []domain.Product
	var err error

	if category := strings.TrimSpace(q.Category); category != "" {
		products, err = h.repo.FindByCategory(ctx, category)
	} else {
		products, err = h.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}
