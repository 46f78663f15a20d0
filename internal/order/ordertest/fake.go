// Package ordertest provides in-memory order collaborators for tests.
package ordertest

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/tair/storefront/internal/order/domain"
	"github.com/tair/storefront/kafka"
)

// FakeRepository is a slice-backed domain.OrderRepository
type FakeRepository struct {
	mu     sync.Mutex
	Orders []domain.Order
	Err    error
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	order.ID = uint(len(r.Orders) + 1)
	if order.Reference == "" {
		order.Reference = uuid.NewString()
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	r.Orders = append(r.Orders, *order)
	return nil
}

// ListRowsByUser flattens orders newest first, one row per item
func (r *FakeRepository) ListRowsByUser(_ context.Context, userID uint) ([]domain.OrderRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var rows []domain.OrderRow
	for _, o := range slices.Backward(r.Orders) {
		if o.UserID != userID {
			continue
		}
		base := domain.OrderRow{
			ID:          o.ID,
			Reference:   o.Reference,
			UserID:      o.UserID,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
		}
		if len(o.Items) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, item := range o.Items {
			row := base
			row.ProductID = &item.ProductID
			row.Quantity = &item.Quantity
			row.Price.Decimal = item.Price
			row.Price.Valid = true
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// FakePublisher records published events
type FakePublisher struct {
	mu     sync.Mutex
	Events []kafka.OrderPlacedEvent
	Err    error
}

func (p *FakePublisher) PublishOrderPlaced(_ context.Context, event kafka.OrderPlacedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, event)
	return nil
}
