package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/user/domain"
	"github.com/tair/storefront/internal/user/usecase/command"
	"github.com/tair/storefront/internal/user/usecase/query"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
	"github.com/tair/storefront/pkg/middleware"
	"github.com/tair/storefront/pkg/response"
)

// AuthResponse is the body of a successful register or login
type AuthResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    domain.Profile `json:"user"`
}

// UserHandler handles registration, login and session verification
type UserHandler struct {
	registerHandler *command.RegisterUserHandler
	loginHandler    *command.LoginUserHandler
	getUserHandler  *query.GetUserHandler
	metrics         *metrics.HTTPMetrics
	shop            *metrics.ShopMetrics
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	registerHandler *command.RegisterUserHandler,
	loginHandler *command.LoginUserHandler,
	getUserHandler *query.GetUserHandler,
	m *metrics.HTTPMetrics,
	shop *metrics.ShopMetrics,
) *UserHandler {
	return &UserHandler{
		registerHandler: registerHandler,
		loginHandler:    loginHandler,
		getUserHandler:  getUserHandler,
		metrics:         m,
		shop:            shop,
	}
}

// RegisterRoutes mounts the auth routes; limiter may be nil
func (h *UserHandler) RegisterRoutes(
	router *mux.Router,
	requireAuth func(http.HandlerFunc) http.HandlerFunc,
	limiter *middleware.RateLimiter,
) {
	router.HandleFunc("/api/register", h.metrics.Wrap("/api/register", limiter.Middleware(h.Register))).Methods(http.MethodPost)
	router.HandleFunc("/api/login", h.metrics.Wrap("/api/login", limiter.Middleware(h.Login))).Methods(http.MethodPost)
	router.HandleFunc("/api/me", h.metrics.Wrap("/api/me", requireAuth(h.Me))).Methods(http.MethodGet)
}

// Register handles POST /api/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.registerHandler.Handle(r.Context(), command.RegisterUserCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		response.Error(w, http.StatusBadRequest, "All fields are required")
		return
	case errors.Is(err, domain.ErrUserExists):
		response.Error(w, http.StatusBadRequest, "User already exists")
		return
	case err != nil:
		logger.Error(r.Context()).Err(err).Msg("Failed to register user")
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if h.shop != nil {
		h.shop.Registrations.Inc()
	}
	logger.Info(r.Context()).Uint("user_id", result.User.ID).Msg("User registered")

	response.JSON(w, http.StatusOK, AuthResponse{
		Message: "User registered successfully",
		Token:   result.Token,
		User:    result.User.Profile(),
	})
}

// Login handles POST /api/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.loginHandler.Handle(r.Context(), command.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			response.Error(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to login user")
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    result.User.Profile(),
	})
}

// Me handles GET /api/me. A token whose user no longer exists is rejected
// with 401 so clients drop it.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	user, err := h.getUserHandler.Handle(r.Context(), query.GetUserQuery{ID: userID})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			response.Error(w, http.StatusUnauthorized, "User not found")
			return
		}
		logger.Error(r.Context()).Err(err).Uint("user_id", userID).Msg("Failed to load user")
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, user.Profile())
}
