package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/review/domain"
)

var tracer = otel.Tracer("review-repository")

// TracingReviewRepository wraps a ReviewRepository with spans
type TracingReviewRepository struct {
	next domain.ReviewRepository
}

func NewTracingReviewRepository(next domain.ReviewRepository) *TracingReviewRepository {
	return &TracingReviewRepository{next: next}
}

func (r *TracingReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.Int("review.product_id", int(review.ProductID)),
			attribute.Int("review.rating", review.Rating),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, review); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(attribute.Int("review.id", int(review.ID)))
	return nil
}

func (r *TracingReviewRepository) ListByProduct(ctx context.Context, productID uint) ([]domain.ReviewView, error) {
	ctx, span := tracer.Start(ctx, "repository.ListByProduct",
		trace.WithAttributes(attribute.Int("review.product_id", int(productID))),
	)
	defer span.End()

	views, err := r.next.ListByProduct(ctx, productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(views)))
	return views, nil
}
