package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/product/domain"
)

var tracer = otel.Tracer("product-repository")

// TracingProductRepository wraps a ProductRepository with spans
type TracingProductRepository struct {
	next domain.ProductRepository
}

// NewTracingProductRepository decorates next with tracing
func NewTracingProductRepository(next domain.ProductRepository) *TracingProductRepository {
	return &TracingProductRepository{next: next}
}

func (r *TracingProductRepository) Create(ctx context.Context, products ...*domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(attribute.Int("product.count", len(products))),
	)
	defer span.End()

	err := r.next.Create(ctx, products...)
	recordError(span, err)
	return err
}

func (r *TracingProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	product, err := r.next.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.String("product.category", product.Category),
	)
	return product, nil
}

func (r *TracingProductRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByIDs",
		trace.WithAttributes(attribute.Int("query.ids", len(ids))),
	)
	defer span.End()

	products, err := r.next.FindByIDs(ctx, ids)
	recordResult(span, len(products), err)
	return products, err
}

func (r *TracingProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	products, err := r.next.FindAll(ctx)
	recordResult(span, len(products), err)
	return products, err
}

func (r *TracingProductRepository) FindByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByCategory",
		trace.WithAttributes(attribute.String("query.category", category)),
	)
	defer span.End()

	products, err := r.next.FindByCategory(ctx, category)
	recordResult(span, len(products), err)
	return products, err
}

func (r *TracingProductRepository) Search(ctx context.Context, query string) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.Search",
		trace.WithAttributes(attribute.String("query.text", query)),
	)
	defer span.End()

	products, err := r.next.Search(ctx, query)
	recordResult(span, len(products), err)
	return products, err
}

func (r *TracingProductRepository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.next.Count(ctx)
	if err != nil {
		recordError(span, err)
		return 0, err
	}
	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}

func (r *TracingProductRepository) DecrementStock(ctx context.Context, id uint, quantity int) error {
	ctx, span := tracer.Start(ctx, "repository.DecrementStock",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.Int("stock.decrement", quantity),
		),
	)
	defer span.End()

	err := r.next.DecrementStock(ctx, id, quantity)
	recordError(span, err)
	return err
}

func recordResult(span trace.Span, count int, err error) {
	if err != nil {
		recordError(span, err)
		return
	}
	span.SetAttributes(attribute.Int("result.count", count))
}

func recordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
