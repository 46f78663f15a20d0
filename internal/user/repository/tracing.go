package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/user/domain"
)

var tracer = otel.Tracer("user-repository")

// TracingUserRepository wraps a UserRepository with spans
type TracingUserRepository struct {
	next domain.UserRepository
}

// NewTracingUserRepository decorates next with tracing
func NewTracingUserRepository(next domain.UserRepository) *TracingUserRepository {
	return &TracingUserRepository{next: next}
}

func (r *TracingUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(attribute.String("user.username", user.Username)),
	)
	defer span.End()

	if err := r.next.Create(ctx, user); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("user.id", int(user.ID)))
	return nil
}

func (r *TracingUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("user.id", int(id))),
	)
	defer span.End()

	user, err := r.next.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return user, nil
}

// FindByEmail does not put the email on the span
func (r *TracingUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByEmail")
	defer span.End()

	user, err := r.next.FindByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("user.id", int(user.ID)))
	return user, nil
}

func (r *TracingUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.ExistsByUsernameOrEmail",
		trace.WithAttributes(attribute.String("user.username", username)),
	)
	defer span.End()

	exists, err := r.next.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}

	span.SetAttributes(attribute.Bool("user.exists", exists))
	return exists, nil
}
