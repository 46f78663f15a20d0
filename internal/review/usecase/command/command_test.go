package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdomain "github.com/tair/storefront/internal/product/domain"
	"github.com/tair/storefront/internal/product/producttest"
	"github.com/tair/storefront/internal/review/domain"
	"github.com/tair/storefront/internal/review/reviewtest"
	"github.com/tair/storefront/pkg/money"
)

func newHandler() (*AddReviewHandler, *reviewtest.FakeRepository, *producttest.FakeRepository) {
	products := producttest.NewFakeRepository(
		productdomain.Product{Name: "iPhone 15", Price: money.MustParse("999.99")},
	)
	repo := reviewtest.NewFakeRepository()
	return NewAddReviewHandler(repo, products), repo, products
}

func TestAddReview(t *testing.T) {
	h, repo, _ := newHandler()

	review, err := h.Handle(context.Background(), AddReviewCommand{
		ProductID: 1, UserID: 2, Rating: 5, Comment: "  great phone ",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), review.ID)
	assert.Equal(t, "great phone", review.Comment)
	assert.Len(t, repo.Reviews, 1)
}

func TestAddReviewRatingBounds(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		h, repo, _ := newHandler()
		_, err := h.Handle(context.Background(), AddReviewCommand{ProductID: 1, UserID: 2, Rating: rating})
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
		assert.Empty(t, repo.Reviews)
	}
}

func TestAddReviewUnknownProduct(t *testing.T) {
	h, _, _ := newHandler()

	_, err := h.Handle(context.Background(), AddReviewCommand{ProductID: 9, UserID: 2, Rating: 3})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAddReviewLookupFailure(t *testing.T) {
	h, _, products := newHandler()
	products.Err = errors.New("connection reset")

	_, err := h.Handle(context.Background(), AddReviewCommand{ProductID: 1, UserID: 2, Rating: 3})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrProductNotFound)
}
