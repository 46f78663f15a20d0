package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/order/domain"
	"github.com/tair/storefront/internal/order/usecase/command"
	"github.com/tair/storefront/internal/order/usecase/query"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
	"github.com/tair/storefront/pkg/middleware"
	"github.com/tair/storefront/pkg/response"
)

// CreateOrderRequest is the checkout body; items are cart lines
type CreateOrderRequest struct {
	Items []struct {
		ID       uint            `json:"id"`
		Name     string          `json:"name"`
		Price    decimal.Decimal `json:"price"`
		ImageURL string          `json:"image_url"`
		Quantity int             `json:"quantity"`
	} `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// CreateOrderResponse is returned after a successful checkout
type CreateOrderResponse struct {
	Message   string `json:"message"`
	OrderID   uint   `json:"orderId"`
	Reference string `json:"reference"`
}

// OrderHandler handles checkout and order history
type OrderHandler struct {
	createHandler *command.CreateOrderHandler
	listHandler   *query.ListOrdersHandler
	metrics       *metrics.HTTPMetrics
	shop          *metrics.ShopMetrics
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	createHandler *command.CreateOrderHandler,
	listHandler *query.ListOrdersHandler,
	m *metrics.HTTPMetrics,
	shop *metrics.ShopMetrics,
) *OrderHandler {
	return &OrderHandler{
		createHandler: createHandler,
		listHandler:   listHandler,
		metrics:       m,
		shop:          shop,
	}
}

// RegisterRoutes mounts the order routes behind requireAuth
func (h *OrderHandler) RegisterRoutes(router *mux.Router, requireAuth func(http.HandlerFunc) http.HandlerFunc) {
	router.HandleFunc("/api/orders", h.metrics.Wrap("/api/orders", requireAuth(h.CreateOrder))).Methods(http.MethodPost)
	router.HandleFunc("/api/orders", h.metrics.Wrap("/api/orders", requireAuth(h.ListOrders))).Methods(http.MethodGet)
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	cmd := command.CreateOrderCommand{UserID: userID, TotalAmount: req.TotalAmount}
	for _, item := range req.Items {
		cmd.Lines = append(cmd.Lines, command.OrderLine{
			ProductID: item.ID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		status, message := orderError(err)
		if status == http.StatusInternalServerError {
			logger.Error(r.Context()).Err(err).Uint("user_id", userID).Msg("Failed to create order")
		}
		response.Error(w, status, message)
		return
	}

	if h.shop != nil {
		h.shop.OrdersPlaced.Inc()
		h.shop.OrderValue.Observe(order.TotalAmount.InexactFloat64())
	}

	response.JSON(w, http.StatusOK, CreateOrderResponse{
		Message:   "Order created successfully",
		OrderID:   order.ID,
		Reference: order.Reference,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	rows, err := h.listHandler.Handle(r.Context(), query.ListOrdersQuery{UserID: userID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("user_id", userID).Msg("Failed to list orders")
		response.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(w, http.StatusOK, rows)
}

func orderError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmptyOrder):
		return http.StatusBadRequest, "Order must contain at least one item"
	case errors.Is(err, domain.ErrInvalidItem):
		return http.StatusBadRequest, "Invalid order item"
	case errors.Is(err, domain.ErrUnknownProduct):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrTotalMismatch):
		return http.StatusBadRequest, "Total amount does not match items"
	default:
		return http.StatusInternalServerError, "Failed to create order"
	}
}
