package http

// AddReview godoc
// @Summary Review a product
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body AddReviewRequest true "Rating 1-5 and comment"
// @Success 200 {object} AddReviewResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/products/{id}/reviews [post]
func (h *ReviewHandler) AddReviewDoc() {}

// ListReviews godoc
// @Summary List product reviews
// @Description Newest first, with the author's username
// @Tags Reviews
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} domain.ReviewView
// @Router /api/products/{id}/reviews [get]
func (h *ReviewHandler) ListReviewsDoc() {}
