package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/review/domain"
	"github.com/tair/storefront/internal/review/usecase/command"
	"github.com/tair/storefront/internal/review/usecase/query"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
	"github.com/tair/storefront/pkg/middleware"
	"github.com/tair/storefront/pkg/response"
)

// AddReviewRequest is the body of POST /api/products/{id}/reviews
type AddReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// AddReviewResponse is returned after a review is stored
type AddReviewResponse struct {
	Message  string `json:"message"`
	ReviewID uint   `json:"reviewId"`
}

// ReviewHandler serves product reviews
type ReviewHandler struct {
	addHandler  *command.AddReviewHandler
	listHandler *query.ListReviewsHandler
	metrics     *metrics.HTTPMetrics
}

func NewReviewHandler(addHandler *command.AddReviewHandler, listHandler *query.ListReviewsHandler, m *metrics.HTTPMetrics) *ReviewHandler {
	return &ReviewHandler{addHandler: addHandler, listHandler: listHandler, metrics: m}
}

// RegisterRoutes mounts the review routes; only posting requires a token
func (h *ReviewHandler) RegisterRoutes(router *mux.Router, requireAuth func(http.HandlerFunc) http.HandlerFunc) {
	const path = "/api/products/{id:[0-9]+}/reviews"
	router.HandleFunc(path, h.metrics.Wrap(path, requireAuth(h.AddReview))).Methods(http.MethodPost)
	router.HandleFunc(path, h.metrics.Wrap(path, h.ListReviews)).Methods(http.MethodGet)
}

// AddReview handles POST /api/products/{id}/reviews
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDFromPath(w, r)
	if !ok {
		return
	}

	var req AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	review, err := h.addHandler.Handle(r.Context(), command.AddReviewCommand{
		ProductID: productID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidRating):
		response.Error(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	case errors.Is(err, domain.ErrProductNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	case err != nil:
		logger.Error(r.Context()).Err(err).Uint("product_id", productID).Msg("Failed to add review")
		response.Error(w, http.StatusInternalServerError, "Failed to add review")
		return
	}

	response.JSON(w, http.StatusOK, AddReviewResponse{
		Message:  "Review added successfully",
		ReviewID: review.ID,
	})
}

// ListReviews handles GET /api/products/{id}/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDFromPath(w, r)
	if !ok {
		return
	}

	views, err := h.listHandler.Handle(r.Context(), query.ListReviewsQuery{ProductID: productID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("product_id", productID).Msg("Failed to list reviews")
		response.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	response.JSON(w, http.StatusOK, views)
}

func productIDFromPath(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		response.Error(w, http.StatusBadRequest, "Invalid product id")
		return 0, false
	}
	return uint(id), true
}
