package query

import (
	"context"

	"github.com/tair/storefront/internal/user/domain"
)

// GetUserQuery represents the query to get a user by ID
type GetUserQuery struct {
	ID uint
}

// GetUserHandler handles get user query
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(ctx context.Context, q GetUserQuery) (*domain.User, error) {
	if q.ID == 0 {
		return nil, domain.ErrUserNotFound
	}
	return h.repo.FindByID(ctx, q.ID)
}
