package storefront

import (
	"context"
	"errors"

	"github.com/tair/storefront/internal/storefront/api"
	"github.com/tair/storefront/internal/storefront/storage"
	"github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/logger"
)

func (a *App) Register(ctx context.Context, username, email, password string) error {
	resp, err := a.api.Register(ctx, username, email, password)
	if err != nil {
		a.notifyError(authFailureMessage(err, "Registration failed"))
		return err
	}
	return a.startSession(ctx, resp, "Registration successful!")
}

func (a *App) Login(ctx context.Context, email, password string) error {
	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.notifyError(authFailureMessage(err, "Login failed"))
		return err
	}
	return a.startSession(ctx, resp, "Login successful!")
}

func authFailureMessage(err error, fallback string) string {
	if errors.Is(err, ErrValidation) {
		return api.Message(err)
	}
	return fallback
}

func (a *App) startSession(ctx context.Context, resp *api.AuthResponse, msg string) error {
	a.mu.Lock()
	err := a.store.Set(ctx, storage.KeyToken, resp.Token)
	a.state.Session = &Session{Token: resp.Token, User: resp.User, Verified: true}
	session := a.sessionLocked()
	a.mu.Unlock()

	logger.Info(ctx).Uint("user_id", resp.User.ID).Msg("Signed in")

	a.view.RenderAuth(session)
	a.NavigateTo(ctx, SectionProducts)
	a.notify(msg)
	return err
}

// Logout forgets the session locally
func (a *App) Logout(ctx context.Context) error {
	a.mu.Lock()
	err := a.store.Delete(ctx, storage.KeyToken)
	a.state.Session = nil
	a.mu.Unlock()

	a.view.RenderAuth(nil)
	a.NavigateTo(ctx, SectionProducts)
	a.notify("Logged out successfully")
	return err
}

// Restore verifies a stored token against the backend. When the backend
// is unreachable the token's own claims are trusted until they expire and
// the session is marked unverified.
func (a *App) Restore(ctx context.Context) {
	token, ok, err := a.store.Get(ctx, storage.KeyToken)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to read stored token")
		return
	}
	if !ok || token == "" {
		return
	}

	var session *Session
	user, err := a.api.Me(ctx, token)
	switch {
	case err == nil:
		session = &Session{Token: token, User: *user, Verified: true}
	case errors.Is(err, ErrAuthRequired):
		logger.Info(ctx).Msg("Stored token rejected, signing out")
	default:
		claims, perr := auth.ParseUnverified(token)
		if perr != nil || claims.ExpiredAt(a.now()) {
			logger.Info(ctx).Err(err).Msg("Stored token unusable, signing out")
			break
		}
		logger.Warn(ctx).Err(err).Msg("Session not verified, using token claims")
		session = &Session{
			Token: token,
			User:  api.User{ID: claims.UserID, Username: claims.Username},
		}
	}

	a.mu.Lock()
	if session == nil {
		if err := a.store.Delete(ctx, storage.KeyToken); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to delete stored token")
		}
	}
	a.state.Session = session
	current := a.sessionLocked()
	a.mu.Unlock()

	a.view.RenderAuth(current)
}

// demoteOnAuthFailure signs out after a 401/403 from a protected call and
// reports whether it did
func (a *App) demoteOnAuthFailure(ctx context.Context, err error) bool {
	if !errors.Is(err, ErrAuthRequired) {
		return false
	}

	a.mu.Lock()
	if a.state.Session == nil {
		a.mu.Unlock()
		return true
	}
	if derr := a.store.Delete(ctx, storage.KeyToken); derr != nil {
		logger.Warn(ctx).Err(derr).Msg("Failed to delete stored token")
	}
	a.state.Session = nil
	a.mu.Unlock()

	logger.Info(ctx).Err(err).Msg("Session rejected by server")
	a.view.RenderAuth(nil)
	a.NavigateTo(ctx, SectionLogin)
	a.notifyError("Session expired, please login again")
	return true
}
