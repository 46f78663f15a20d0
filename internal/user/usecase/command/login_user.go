package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tair/storefront/internal/user/domain"
	"github.com/tair/storefront/pkg/auth"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginUserHandler handles user login command
type LoginUserHandler struct {
	repo   domain.UserRepository
	tokens TokenIssuer
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository, tokens TokenIssuer) *LoginUserHandler {
	return &LoginUserHandler{repo: repo, tokens: tokens}
}

// Handle verifies the credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (h *LoginUserHandler) Handle(ctx context.Context, cmd LoginUserCommand) (*AuthResult, error) {
	email := strings.TrimSpace(cmd.Email)
	if email == "" || cmd.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := h.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}
