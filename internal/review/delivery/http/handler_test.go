package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdomain "github.com/tair/storefront/internal/product/domain"
	"github.com/tair/storefront/internal/product/producttest"
	"github.com/tair/storefront/internal/review/domain"
	"github.com/tair/storefront/internal/review/reviewtest"
	"github.com/tair/storefront/internal/review/usecase/command"
	"github.com/tair/storefront/internal/review/usecase/query"
	"github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/metrics"
	"github.com/tair/storefront/pkg/middleware"
	"github.com/tair/storefront/pkg/money"
)

func newRouter(t *testing.T) (*mux.Router, string) {
	t.Helper()
	products := producttest.NewFakeRepository(
		productdomain.Product{Name: "Sony Headphones", Price: money.MustParse("299.99")},
	)
	repo := reviewtest.NewFakeRepository()
	tokens := auth.NewTokenManager("secret", time.Hour)

	h := NewReviewHandler(
		command.NewAddReviewHandler(repo, products),
		query.NewListReviewsHandler(repo),
		metrics.NewHTTPMetrics("test", prometheus.NewRegistry()),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router, middleware.AuthMiddleware(tokens))

	token, err := tokens.GenerateToken(4, "carol")
	require.NoError(t, err)
	return router, token
}

func do(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAddAndListReviews(t *testing.T) {
	router, token := newRouter(t)

	rec := do(router, http.MethodPost, "/api/products/1/reviews", `{"rating":4,"comment":"comfy"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Review added successfully","reviewId":1}`, rec.Body.String())

	rec = do(router, http.MethodGet, "/api/products/1/reviews", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var views []domain.ReviewView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, uint(4), views[0].UserID)
	assert.Equal(t, "comfy", views[0].Comment)
}

func TestListReviewsEmpty(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(router, http.MethodGet, "/api/products/1/reviews", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAddReviewErrors(t *testing.T) {
	router, token := newRouter(t)

	rec := do(router, http.MethodPost, "/api/products/1/reviews", `{"rating":9}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Rating must be between 1 and 5"}`, rec.Body.String())

	rec = do(router, http.MethodPost, "/api/products/8/reviews", `{"rating":3}`, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(router, http.MethodPost, "/api/products/1/reviews", `{"rating":3}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(router, http.MethodPost, "/api/products/1/reviews", `nope`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
