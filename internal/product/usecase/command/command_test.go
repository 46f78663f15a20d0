package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/product/domain"
	"github.com/tair/storefront/internal/product/producttest"
	"github.com/tair/storefront/pkg/money"
)

func TestSeedCatalogInsertsIntoEmptyStore(t *testing.T) {
	repo := producttest.NewFakeRepository()
	h := NewSeedCatalogHandler(repo)

	n, err := h.Handle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	p, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "MacBook Pro", p.Name)
	assert.Equal(t, "1299.99", money.Format(p.Price))

	p, err = repo.FindByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Cotton T-Shirt", p.Name)

	again, err := h.Handle(context.Background())
	require.NoError(t, err)
	assert.Zero(t, again)

	count, _ := repo.Count(context.Background())
	assert.Equal(t, int64(7), count)
}

func TestSeedCatalogSkipsNonEmptyStore(t *testing.T) {
	repo := producttest.NewFakeRepository(domain.Product{Name: "Existing"})

	n, err := NewSeedCatalogHandler(repo).Handle(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReserveStock(t *testing.T) {
	repo := producttest.NewFakeRepository(
		domain.Product{Name: "A", Stock: 5},
		domain.Product{Name: "B", Stock: 1},
	)
	h := NewReserveStockHandler(repo)

	err := h.Handle(context.Background(), ReserveStockCommand{
		OrderReference: "ref-1",
		Lines: []StockLine{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 3},
			{ProductID: 99, Quantity: 1},
			{ProductID: 1, Quantity: 0},
		},
	})
	require.NoError(t, err)

	a, _ := repo.FindByID(context.Background(), 1)
	b, _ := repo.FindByID(context.Background(), 2)
	assert.Equal(t, 3, a.Stock)
	assert.Equal(t, 0, b.Stock)
}
