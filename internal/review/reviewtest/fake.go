// Package reviewtest provides an in-memory ReviewRepository for tests.
package reviewtest

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/tair/storefront/internal/review/domain"
)

// FakeRepository stores reviews in memory; usernames are "user<id>"
type FakeRepository struct {
	mu      sync.Mutex
	Reviews []domain.Review
	Err     error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	review.ID = uint(len(r.Reviews) + 1)
	review.CreatedAt = time.Now()
	r.Reviews = append(r.Reviews, *review)
	return nil
}

func (r *FakeRepository) ListByProduct(_ context.Context, productID uint) ([]domain.ReviewView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var views []domain.ReviewView
	for _, rv := range slices.Backward(r.Reviews) {
		if rv.ProductID != productID {
			continue
		}
		views = append(views, domain.ReviewView{
			ID:        rv.ID,
			ProductID: rv.ProductID,
			UserID:    rv.UserID,
			Rating:    rv.Rating,
			Comment:   rv.Comment,
			CreatedAt: rv.CreatedAt,
			Username:  fmt.Sprintf("user%d", rv.UserID),
		})
	}
	return views, nil
}
