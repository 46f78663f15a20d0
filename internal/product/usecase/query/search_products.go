package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/storefront/internal/product/domain"
)

// SearchProductsQuery is a free-text product search
type SearchProductsQuery struct {
	Query string
}

// SearchProductsHandler handles product search
type SearchProductsHandler struct {
	repo domain.ProductRepository
}

// NewSearchProductsHandler creates a new search handler
func NewSearchProductsHandler(repo domain.ProductRepository) *SearchProductsHandler {
	return &SearchProductsHandler{repo: repo}
}

// Handle runs the substring search
func (h *SearchProductsHandler) Handle(ctx context.Context, q SearchProductsQuery) ([]domain.Product, error) {
	text := strings.TrimSpace(q.Query)
	if text == "" {
		return nil, domain.ErrEmptySearch
	}

	products, err := h.repo.Search(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}
