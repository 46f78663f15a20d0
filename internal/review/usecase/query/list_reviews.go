package query

import (
	"context"

	"github.com/tair/storefront/internal/review/domain"
)

// ListReviewsQuery lists the reviews of one product
type ListReviewsQuery struct {
	ProductID uint
}

type ListReviewsHandler struct {
	repo domain.ReviewRepository
}

func NewListReviewsHandler(repo domain.ReviewRepository) *ListReviewsHandler {
	return &ListReviewsHandler{repo: repo}
}

func (h *ListReviewsHandler) Handle(ctx context.Context, q ListReviewsQuery) ([]domain.ReviewView, error) {
	views, err := h.repo.ListByProduct(ctx, q.ProductID)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []domain.ReviewView{}
	}
	return views, nil
}
