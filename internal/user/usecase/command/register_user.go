package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/storefront/internal/user/domain"
	"github.com/tair/storefront/pkg/auth"
)

// TokenIssuer signs session tokens
type TokenIssuer interface {
	GenerateToken(userID uint, username string) (string, error)
}

// AuthResult is returned by register and login
type AuthResult struct {
	Token string
	User  *domain.User
}

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Username string
	Email    string
	Password string
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo   domain.UserRepository
	tokens TokenIssuer
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository, tokens TokenIssuer) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo, tokens: tokens}
}

// Handle creates the user and signs a token for it
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*AuthResult, error) {
	cmd.Username = strings.TrimSpace(cmd.Username)
	cmd.Email = strings.TrimSpace(cmd.Email)
	if cmd.Username == "" || cmd.Email == "" || cmd.Password == "" {
		return nil, domain.ErrMissingFields
	}

	exists, err := h.repo.ExistsByUsernameOrEmail(ctx, cmd.Username, cmd.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username: cmd.Username,
		Email:    cmd.Email,
		Password: hashedPassword,
	}
	if err := h.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}
