package storefront

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/storefront/api"
)

func ids(products []api.Product) []uint {
	out := make([]uint, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestShowAll(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.app.ShowAll(context.Background())

	l := h.view.lastListing(t)
	assert.Equal(t, "Our Products", l.Title)
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(l.Products))
	assert.False(t, l.ShowAllAction)
	assert.Equal(t, SectionProducts, h.app.Section())
}

func TestShowFeatured(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	h.api.featured = []api.Product{product(3, "Coffee Maker", "89.99", "Appliances")}

	h.app.ShowFeatured(context.Background())

	l := h.view.lastListing(t)
	assert.Equal(t, FilterFeatured, h.app.Filter().Kind)
	assert.Equal(t, "Featured Products", l.Title)
	assert.Equal(t, []uint{3}, ids(l.Products))
	assert.False(t, l.Degraded)
	assert.True(t, l.ShowAllAction)
}

func TestShowFeaturedFallsBackWhenUnreachable(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	h.api.featuredErr = &api.Error{Message: "connection refused", Kind: api.ErrNetwork}

	h.app.ShowFeatured(context.Background())

	l := h.view.lastListing(t)
	assert.Equal(t, FilterFeatured, h.app.Filter().Kind)
	assert.Equal(t, []uint{1, 2, 4}, ids(l.Products))
	assert.True(t, l.Degraded)
	assert.Empty(t, h.view.notifications)
}

func TestShowFeaturedEmpty(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.app.ShowFeatured(context.Background())

	l := h.view.lastListing(t)
	assert.Empty(t, l.Products)
	assert.Equal(t, "No featured products available", l.EmptyMessage)
	assert.True(t, l.ShowAllAction)
}

func TestSelectCategory(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.start(t)

	h.app.SelectCategory(ctx, "Electronics")
	l := h.view.lastListing(t)
	assert.Equal(t, "Electronics Products", l.Title)
	assert.Equal(t, []uint{1, 2}, ids(l.Products))

	h.app.SelectCategory(ctx, "Toys")
	l = h.view.lastListing(t)
	assert.Equal(t, "No products found in Toys category", l.EmptyMessage)
	assert.True(t, l.ShowAllAction)

	h.app.SelectCategory(ctx, "")
	assert.Equal(t, FilterAll, h.app.Filter().Kind)
	assert.Len(t, h.view.lastListing(t).Products, 5)
}

func TestClearingCategoryReturnsToFeatured(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.start(t)

	h.app.ShowFeatured(ctx)
	h.app.SelectCategory(ctx, "Sports")
	h.app.SelectCategory(ctx, "")

	assert.Equal(t, FilterFeatured, h.app.Filter().Kind)
	assert.Equal(t, 2, h.api.count("featured"))
}

func TestClearingCategoryReappliesSearch(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.start(t)
	h.api.search = func(q string) ([]api.Product, error) {
		return []api.Product{product(5, "Backpack", "49.99", "Accessories")}, nil
	}

	h.app.HandleSearchInput(ctx, "pack")
	require.True(t, h.app.FlushSearch())
	h.app.SelectCategory(ctx, "Sports")
	h.app.SelectCategory(ctx, "")

	assert.Equal(t, FilterState{Kind: FilterSearch, Value: "pack"}, h.app.Filter())
	assert.Equal(t, 2, h.api.count("search"))
}

func TestSearchUsesBackend(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	var got string
	h.api.search = func(q string) ([]api.Product, error) {
		got = q
		return []api.Product{}, nil
	}

	h.app.HandleSearchInput(context.Background(), "zebra")
	assert.Zero(t, h.api.count("search"))
	require.True(t, h.app.FlushSearch())

	assert.Equal(t, "zebra", got)
	l := h.view.lastListing(t)
	assert.Equal(t, `Search Results for "zebra"`, l.Title)
	assert.Equal(t, "No products found", l.EmptyMessage)
	assert.True(t, l.ShowAllAction)
}

func TestShortSearchRevertsToAll(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.start(t)
	h.api.search = func(string) ([]api.Product, error) { return []api.Product{}, nil }

	h.app.ShowAll(ctx)
	h.app.HandleSearchInput(ctx, "la")
	h.app.FlushSearch()
	assert.Equal(t, FilterSearch, h.app.Filter().Kind)

	h.app.HandleSearchInput(ctx, "l")
	h.app.FlushSearch()

	assert.Equal(t, FilterAll, h.app.Filter().Kind)
	l := h.view.lastListing(t)
	assert.Equal(t, "Our Products", l.Title)
	assert.Len(t, l.Products, 5)
	assert.Equal(t, 1, h.api.count("search"))
}

func TestShortSearchCountsRunes(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.app.HandleSearchInput(context.Background(), "é")
	h.app.FlushSearch()
	assert.Zero(t, h.api.count("search"))

	h.app.HandleSearchInput(context.Background(), "éé")
	h.app.FlushSearch()
	assert.Equal(t, 1, h.api.count("search"))
}

func TestDebouncedSearchKeepsLastInput(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.start(t)
	var queries []string
	h.api.search = func(q string) ([]api.Product, error) {
		queries = append(queries, q)
		return nil, nil
	}

	h.app.HandleSearchInput(ctx, "la")
	h.app.HandleSearchInput(ctx, "lap")
	h.app.HandleSearchInput(ctx, "lapt")
	require.True(t, h.app.FlushSearch())
	assert.False(t, h.app.FlushSearch())

	assert.Equal(t, []string{"lapt"}, queries)
}

func TestStaleSearchResponseDiscarded(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.start(t)

	started := make(chan struct{})
	release := make(chan struct{})
	h.api.search = func(q string) ([]api.Product, error) {
		if q == "slow" {
			close(started)
			<-release
			return []api.Product{product(1, "Laptop", "10.00", "Electronics")}, nil
		}
		return []api.Product{product(4, "Running Shoes", "129.99", "Sports")}, nil
	}

	done := make(chan struct{})
	h.app.HandleSearchInput(ctx, "slow")
	go func() {
		defer close(done)
		h.app.FlushSearch()
	}()
	<-started

	h.app.HandleSearchInput(ctx, "shoes")
	h.app.FlushSearch()
	close(release)
	<-done

	l := h.view.lastListing(t)
	assert.Equal(t, `Search Results for "shoes"`, l.Title)
	assert.Equal(t, []uint{4}, ids(l.Products))
}

func TestSearchFailureNotifies(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	h.api.search = func(string) ([]api.Product, error) {
		return nil, &api.Error{Status: 500, Message: "Server error", Kind: api.ErrNetwork}
	}

	h.app.HandleSearchInput(context.Background(), "bag")
	h.app.FlushSearch()

	n := h.view.lastNotification(t)
	assert.Equal(t, LevelError, n.Level)
	assert.Equal(t, "Search failed: Server error", n.Message)
}

func TestLoadCatalogFailure(t *testing.T) {
	h := newHarness(t)
	h.app.api = &failingProducts{fakeAPI: h.api}

	err := h.app.Start(context.Background())
	assert.True(t, errors.Is(err, ErrNetwork))
	assert.Empty(t, h.app.Products())
	assert.Equal(t, "Error loading products", h.view.lastNotification(t).Message)
}

type failingProducts struct {
	*fakeAPI
}

func (f *failingProducts) Products(context.Context) ([]api.Product, error) {
	return nil, &api.Error{Message: "connection refused", Kind: api.ErrNetwork}
}

func TestCategories(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	assert.Equal(t, []string{"Accessories", "Appliances", "Electronics", "Sports"}, h.app.Categories())
}
