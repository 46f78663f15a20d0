package storefront

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/tair/storefront/internal/storefront/api"
	"github.com/tair/storefront/pkg/logger"
)

// ShowAll lists the whole catalog
func (a *App) ShowAll(ctx context.Context) {
	a.mu.Lock()
	a.state.Filter = FilterState{Kind: FilterAll}
	a.state.LastExplicit = FilterAll
	a.state.listingGen++
	a.mu.Unlock()

	a.NavigateTo(ctx, SectionProducts)

	a.mu.Lock()
	listing := a.listingLocked(a.state.Catalog.All(), false)
	a.mu.Unlock()
	a.view.RenderProducts(listing)
}

// ShowFeatured lists the backend's featured products. When the request
// fails the configured fallback ids are listed instead and the listing is
// marked Degraded.
func (a *App) ShowFeatured(ctx context.Context) {
	a.mu.Lock()
	a.state.Filter = FilterState{Kind: FilterFeatured}
	a.state.LastExplicit = FilterFeatured
	a.state.listingGen++
	gen := a.state.listingGen
	a.mu.Unlock()

	a.NavigateTo(ctx, SectionProducts)

	products, err := a.api.FeaturedProducts(ctx)

	a.mu.Lock()
	if gen != a.state.listingGen {
		a.mu.Unlock()
		return
	}
	degraded := false
	if err != nil {
		logger.Warn(ctx).Err(err).Uints("fallback_ids", a.fallbackIDs).Msg("Featured products unavailable, using fallback")
		products = a.state.Catalog.ByIDs(a.fallbackIDs)
		degraded = true
	}
	listing := a.listingLocked(products, degraded)
	a.mu.Unlock()
	a.view.RenderProducts(listing)
}

// SelectCategory filters the catalog by exact category. An empty category
// clears the selection: an active search is re-applied, otherwise the last
// explicit listing is shown.
func (a *App) SelectCategory(ctx context.Context, category string) {
	category = strings.TrimSpace(category)
	if category == "" {
		a.mu.Lock()
		query := a.state.SearchQuery
		a.mu.Unlock()
		if utf8.RuneCountInString(query) >= minSearchRunes {
			a.runSearch(ctx, query)
			return
		}
		a.showLastExplicit(ctx)
		return
	}

	a.mu.Lock()
	a.state.Filter = FilterState{Kind: FilterCategory, Value: category}
	a.state.listingGen++
	a.mu.Unlock()

	a.NavigateTo(ctx, SectionProducts)

	a.mu.Lock()
	listing := a.listingLocked(a.state.Catalog.ByCategory(category), false)
	a.mu.Unlock()
	a.view.RenderProducts(listing)
}

// HandleSearchInput schedules the query; only the last input within the
// debounce window is applied
func (a *App) HandleSearchInput(ctx context.Context, query string) {
	ctx = context.WithoutCancel(ctx)
	a.search.Schedule(func() { a.applySearch(ctx, query) })
}

// FlushSearch applies a pending search input immediately
func (a *App) FlushSearch() bool {
	return a.search.Flush()
}

func (a *App) applySearch(ctx context.Context, query string) {
	query = strings.TrimSpace(query)

	a.mu.Lock()
	a.state.SearchQuery = query
	a.mu.Unlock()

	if utf8.RuneCountInString(query) < minSearchRunes {
		a.showLastExplicit(ctx)
		return
	}
	a.runSearch(ctx, query)
}

func (a *App) runSearch(ctx context.Context, query string) {
	a.mu.Lock()
	a.state.Filter = FilterState{Kind: FilterSearch, Value: query}
	a.state.listingGen++
	gen := a.state.listingGen
	a.mu.Unlock()

	a.NavigateTo(ctx, SectionProducts)

	results, err := a.api.SearchProducts(ctx, query)

	a.mu.Lock()
	if gen != a.state.listingGen {
		a.mu.Unlock()
		logger.Debug(ctx).Str("query", query).Msg("Discarding stale search results")
		return
	}
	if err != nil {
		a.mu.Unlock()
		logger.Warn(ctx).Err(err).Str("query", query).Msg("Search failed")
		a.notifyError("Search failed: " + api.Message(err))
		return
	}
	listing := a.listingLocked(results, false)
	a.mu.Unlock()
	a.view.RenderProducts(listing)
}

func (a *App) showLastExplicit(ctx context.Context) {
	a.mu.Lock()
	last := a.state.LastExplicit
	a.mu.Unlock()

	if last == FilterFeatured {
		a.ShowFeatured(ctx)
		return
	}
	a.ShowAll(ctx)
}

// listingLocked builds a Listing for the current filter; a.mu must be held
func (a *App) listingLocked(products []api.Product, degraded bool) Listing {
	if products == nil {
		products = []api.Product{}
	}
	f := a.state.Filter
	l := Listing{
		Filter:        f,
		Title:         f.Title(),
		Products:      products,
		ShowAllAction: f.Kind != FilterAll,
		Degraded:      degraded,
		Wishlist:      a.state.Wishlist.IDs(),
	}
	if len(products) == 0 {
		l.EmptyMessage = f.EmptyMessage()
	}
	return l
}
