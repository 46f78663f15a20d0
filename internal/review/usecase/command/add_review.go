package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	productdomain "github.com/tair/storefront/internal/product/domain"
	"github.com/tair/storefront/internal/review/domain"
	"github.com/tair/storefront/pkg/logger"
)

// ProductLookup checks that the reviewed product exists
type ProductLookup interface {
	FindByID(ctx context.Context, id uint) (*productdomain.Product, error)
}

// AddReviewCommand represents a new review
type AddReviewCommand struct {
	ProductID uint
	UserID    uint
	Rating    int
	Comment   string
}

// AddReviewHandler handles review creation
type AddReviewHandler struct {
	repo     domain.ReviewRepository
	products ProductLookup
}

func NewAddReviewHandler(repo domain.ReviewRepository, products ProductLookup) *AddReviewHandler {
	return &AddReviewHandler{repo: repo, products: products}
}

// Handle stores the review and returns it with its id
func (h *AddReviewHandler) Handle(ctx context.Context, cmd AddReviewCommand) (*domain.Review, error) {
	if cmd.Rating < domain.MinRating || cmd.Rating > domain.MaxRating {
		return nil, domain.ErrInvalidRating
	}

	if _, err := h.products.FindByID(ctx, cmd.ProductID); err != nil {
		if errors.Is(err, productdomain.ErrProductNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	review := &domain.Review{
		ProductID: cmd.ProductID,
		UserID:    cmd.UserID,
		Rating:    cmd.Rating,
		Comment:   strings.TrimSpace(cmd.Comment),
	}
	if err := h.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("review_id", review.ID).
		Uint("product_id", review.ProductID).
		Int("rating", review.Rating).
		Msg("Review added")
	return review, nil
}
