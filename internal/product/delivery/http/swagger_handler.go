package http

// ListProducts godoc
// @Summary List all products
// @Tags Products
// @Produce json
// @Success 200 {array} domain.Product
// @Failure 500 {object} response.ErrorBody
// @Router /api/products [get]
func (h *ProductHandler) ListProductsDoc() {}

// FeaturedProducts godoc
// @Summary List featured products
// @Description Returns the configured featured subset of the catalog
// @Tags Products
// @Produce json
// @Success 200 {array} domain.Product
// @Failure 500 {object} response.ErrorBody
// @Router /api/products/featured [get]
func (h *ProductHandler) FeaturedProductsDoc() {}

// SearchProducts godoc
// @Summary Search products
// @Description Case-insensitive substring match on name, description and category
// @Tags Products
// @Produce json
// @Param query path string true "Search text"
// @Success 200 {array} domain.Product
// @Failure 400 {object} response.ErrorBody
// @Router /api/products/search/{query} [get]
func (h *ProductHandler) SearchProductsDoc() {}

// ProductsByCategory godoc
// @Summary List products of a category
// @Tags Products
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {array} domain.Product
// @Router /api/products/category/{category} [get]
func (h *ProductHandler) ProductsByCategoryDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} response.ErrorBody
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProductDoc() {}
