package query

import (
	"context"

	"github.com/tair/storefront/internal/product/domain"
)

// GetProductQuery represents the query to get a product by ID
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query; unknown ids yield domain.ErrProductNotFound
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	if q.ID == 0 {
		return nil, domain.ErrProductNotFound
	}
	return h.repo.FindByID(ctx, q.ID)
}
