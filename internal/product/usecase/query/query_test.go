package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/product/domain"
	"github.com/tair/storefront/internal/product/producttest"
	"github.com/tair/storefront/pkg/money"
)

func catalog() *producttest.FakeRepository {
	return producttest.NewFakeRepository(
		domain.Product{Name: "MacBook Pro", Description: "Powerful laptop", Price: money.MustParse("1299.99"), Category: "Electronics"},
		domain.Product{Name: "iPhone 15", Description: "Smartphone", Price: money.MustParse("999.99"), Category: "Electronics"},
		domain.Product{Name: "Cotton T-Shirt", Description: "Premium cotton", Price: money.MustParse("24.99"), Category: "Clothing"},
		domain.Product{Name: "Designer Coffee Mug", Description: "Ceramic", Price: money.MustParse("19.99"), Category: "Home"},
	)
}

func TestListProducts(t *testing.T) {
	h := NewListProductsHandler(catalog())

	all, err := h.Handle(context.Background(), ListProductsQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	electronics, err := h.Handle(context.Background(), ListProductsQuery{Category: "Electronics"})
	require.NoError(t, err)
	assert.Len(t, electronics, 2)

	none, err := h.Handle(context.Background(), ListProductsQuery{Category: "Garden"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestListProductsError(t *testing.T) {
	repo := catalog()
	repo.Err = errors.New("db down")

	_, err := NewListProductsHandler(repo).Handle(context.Background(), ListProductsQuery{})
	assert.ErrorContains(t, err, "db down")
}

func TestGetProduct(t *testing.T) {
	h := NewGetProductHandler(catalog())

	p, err := h.Handle(context.Background(), GetProductQuery{ID: 2})
	require.NoError(t, err)
	assert.Equal(t, "iPhone 15", p.Name)

	_, err = h.Handle(context.Background(), GetProductQuery{ID: 99})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = h.Handle(context.Background(), GetProductQuery{})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestFeaturedProductsSkipsMissingIDs(t *testing.T) {
	h := NewFeaturedProductsHandler(catalog(), FeaturedIDs{1, 2, 42})

	products, err := h.Handle(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, uint(1), products[0].ID)
	assert.Equal(t, uint(2), products[1].ID)
}

func TestSearchProducts(t *testing.T) {
	h := NewSearchProductsHandler(catalog())

	products, err := h.Handle(context.Background(), SearchProductsQuery{Query: "  COTTON "})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Cotton T-Shirt", products[0].Name)

	byCategory, err := h.Handle(context.Background(), SearchProductsQuery{Query: "electro"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	_, err = h.Handle(context.Background(), SearchProductsQuery{Query: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptySearch)
}
