package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/order/domain"
)

var tracer = otel.Tracer("order-repository")

// TracingOrderRepository wraps an OrderRepository with spans
type TracingOrderRepository struct {
	next domain.OrderRepository
}

func NewTracingOrderRepository(next domain.OrderRepository) *TracingOrderRepository {
	return &TracingOrderRepository{next: next}
}

func (r *TracingOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.Int("order.user_id", int(order.UserID)),
			attribute.Int("order.items", len(order.Items)),
			attribute.String("order.total", order.TotalAmount.StringFixed(2)),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(
		attribute.Int("order.id", int(order.ID)),
		attribute.String("order.reference", order.Reference),
	)
	return nil
}

func (r *TracingOrderRepository) ListRowsByUser(ctx context.Context, userID uint) ([]domain.OrderRow, error) {
	ctx, span := tracer.Start(ctx, "repository.ListRowsByUser",
		trace.WithAttributes(attribute.Int("order.user_id", int(userID))),
	)
	defer span.End()

	rows, err := r.next.ListRowsByUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(rows)))
	return rows, nil
}
