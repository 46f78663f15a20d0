package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/response"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
)

// TokenValidator validates bearer tokens
type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// AuthMiddleware requires a valid bearer token.
// A missing token answers 401, an invalid or expired one 403.
func AuthMiddleware(validator TokenValidator) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn(r.Context()).Str("path", r.URL.Path).Msg("Missing authorization header")
				response.Error(w, http.StatusUnauthorized, "Access token required")
				return
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			token = strings.TrimSpace(token)
			if !ok || token == "" {
				logger.Warn(r.Context()).Msg("Invalid authorization header format")
				response.Error(w, http.StatusUnauthorized, "Access token required")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.Warn(r.Context()).Err(err).Msg("Invalid token")
				response.Error(w, http.StatusForbidden, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), claims.UserID, claims.Username)))
		}
	}
}

// UserIDFromContext returns the authenticated user id
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok
}

// UsernameFromContext returns the authenticated username
func UsernameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(UsernameKey).(string)
	return name
}

// WithUser stores identity in ctx the way AuthMiddleware does
func WithUser(ctx context.Context, userID uint, username string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, UsernameKey, username)
}
