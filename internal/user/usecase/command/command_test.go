package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/user/domain"
	"github.com/tair/storefront/internal/user/usertest"
	"github.com/tair/storefront/pkg/auth"
)

func TestRegisterAndLogin(t *testing.T) {
	repo := usertest.NewFakeRepository()
	tokens := auth.NewTokenManager("secret", time.Hour)
	ctx := context.Background()

	reg, err := NewRegisterUserHandler(repo, tokens).Handle(ctx, RegisterUserCommand{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "wonderland",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), reg.User.ID)
	assert.NotEqual(t, "wonderland", reg.User.Password)

	claims, err := tokens.ValidateToken(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	login, err := NewLoginUserHandler(repo, tokens).Handle(ctx, LoginUserCommand{
		Email:    "alice@example.com",
		Password: "wonderland",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", login.User.Username)
}

func TestRegisterValidation(t *testing.T) {
	repo := usertest.NewFakeRepository()
	h := NewRegisterUserHandler(repo, auth.NewTokenManager("secret", time.Hour))
	ctx := context.Background()

	_, err := h.Handle(ctx, RegisterUserCommand{Username: "bob", Email: " "})
	assert.ErrorIs(t, err, domain.ErrMissingFields)

	_, err = h.Handle(ctx, RegisterUserCommand{Username: "bob", Email: "bob@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = h.Handle(ctx, RegisterUserCommand{Username: "bob", Email: "other@example.com", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	_, err = h.Handle(ctx, RegisterUserCommand{Username: "other", Email: "bob@example.com", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := usertest.NewFakeRepository()
	tokens := auth.NewTokenManager("secret", time.Hour)
	ctx := context.Background()

	_, err := NewRegisterUserHandler(repo, tokens).Handle(ctx, RegisterUserCommand{
		Username: "carol", Email: "carol@example.com", Password: "right",
	})
	require.NoError(t, err)

	h := NewLoginUserHandler(repo, tokens)
	for _, cmd := range []LoginUserCommand{
		{Email: "carol@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "right"},
		{Email: "", Password: "right"},
	} {
		_, err := h.Handle(ctx, cmd)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	}
}
