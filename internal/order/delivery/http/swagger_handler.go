package http

// CreateOrder godoc
// @Summary Place an order
// @Description Stores the cart lines as an order. totalAmount must equal the sum of price × quantity.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Cart lines and total"
// @Success 200 {object} CreateOrderResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrderDoc() {}

// ListOrders godoc
// @Summary Order history
// @Description One row per order item joined with the product name
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.OrderRow
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Router /api/orders [get]
func (h *OrderHandler) ListOrdersDoc() {}
