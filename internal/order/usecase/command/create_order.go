package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/order/domain"
	productdomain "github.com/tair/storefront/internal/product/domain"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/money"
)

// ProductLookup resolves the products an order refers to
type ProductLookup interface {
	FindByIDs(ctx context.Context, ids []uint) ([]productdomain.Product, error)
}

// EventPublisher publishes order events
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// OrderLine is one requested item at the price the customer saw
type OrderLine struct {
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
}

// CreateOrderCommand represents a checkout
type CreateOrderCommand struct {
	UserID      uint
	Lines       []OrderLine
	TotalAmount decimal.Decimal
}

// CreateOrderHandler handles order creation
type CreateOrderHandler struct {
	repo      domain.OrderRepository
	products  ProductLookup
	publisher EventPublisher
}

// NewCreateOrderHandler creates a new create order handler; publisher may be nil
func NewCreateOrderHandler(repo domain.OrderRepository, products ProductLookup, publisher EventPublisher) *CreateOrderHandler {
	return &CreateOrderHandler{repo: repo, products: products, publisher: publisher}
}

// Handle validates and stores the order, then publishes order.placed.
// A publish failure is logged; the order stays committed.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	if len(cmd.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	ids := make([]uint, 0, len(cmd.Lines))
	sum := decimal.Zero
	for _, line := range cmd.Lines {
		if line.ProductID == 0 || line.Quantity < 1 || line.Price.IsNegative() {
			return nil, fmt.Errorf("%w: product %d quantity %d", domain.ErrInvalidItem, line.ProductID, line.Quantity)
		}
		ids = append(ids, line.ProductID)
		sum = sum.Add(money.LineTotal(line.Price, line.Quantity))
	}

	if !sum.Equal(cmd.TotalAmount) {
		return nil, fmt.Errorf("%w: expected %s, got %s", domain.ErrTotalMismatch, money.Format(sum), money.Format(cmd.TotalAmount))
	}

	found, err := h.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	known := make(map[uint]bool, len(found))
	for _, p := range found {
		known[p.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return nil, fmt.Errorf("%w: %d", domain.ErrUnknownProduct, id)
		}
	}

	order := &domain.Order{
		Reference:   uuid.NewString(),
		UserID:      cmd.UserID,
		TotalAmount: cmd.TotalAmount,
		Status:      domain.StatusPending,
	}
	for _, line := range cmd.Lines {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	if err := h.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("order_id", order.ID).
		Str("order_reference", order.Reference).
		Uint("user_id", order.UserID).
		Str("total", money.Format(order.TotalAmount)).
		Msg("Order created")

	h.publish(ctx, order)
	return order, nil
}

func (h *CreateOrderHandler) publish(ctx context.Context, order *domain.Order) {
	if h.publisher == nil {
		return
	}

	event := kafka.OrderPlacedEvent{
		OrderID:     order.ID,
		Reference:   order.Reference,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, kafka.OrderPlacedItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	if err := h.publisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.Warn(ctx).Err(err).Str("order_reference", order.Reference).Msg("Order placed event not published")
	}
}
