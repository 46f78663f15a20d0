package query

import (
	"context"

	"github.com/tair/storefront/internal/order/domain"
)

// ListOrdersQuery lists the order history of one user
type ListOrdersQuery struct {
	UserID uint
}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle returns the flattened order rows, newest order first
func (h *ListOrdersHandler) Handle(ctx context.Context, q ListOrdersQuery) ([]domain.OrderRow, error) {
	rows, err := h.repo.ListRowsByUser(ctx, q.UserID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.OrderRow{}
	}
	return rows, nil
}
