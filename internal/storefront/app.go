// Package storefront is the client state machine behind the storefront CLI:
// catalog cache, cart, wishlist, product filtering, navigation and session.
package storefront

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/storefront/api"
	"github.com/tair/storefront/internal/storefront/storage"
	"github.com/tair/storefront/pkg/logger"
)

// DefaultSearchDebounce is the quiet period before a search input is applied
const DefaultSearchDebounce = 300 * time.Millisecond

// minSearchRunes is the shortest query sent to the backend
const minSearchRunes = 2

// API is the backend surface used by App; *api.HTTPClient implements it
type API interface {
	Products(ctx context.Context) ([]api.Product, error)
	FeaturedProducts(ctx context.Context) ([]api.Product, error)
	Product(ctx context.Context, id uint) (*api.Product, error)
	SearchProducts(ctx context.Context, query string) ([]api.Product, error)
	Register(ctx context.Context, username, email, password string) (*api.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Me(ctx context.Context, token string) (*api.User, error)
	CreateOrder(ctx context.Context, token string, req api.OrderRequest) (*api.OrderCreated, error)
	Orders(ctx context.Context, token string) ([]api.OrderRow, error)
	Reviews(ctx context.Context, productID uint) ([]api.Review, error)
	AddReview(ctx context.Context, token string, productID uint, rating int, comment string) (*api.ReviewCreated, error)
}

type Options struct {
	// FallbackFeaturedIDs are listed when the featured request fails
	FallbackFeaturedIDs []uint
	SearchDebounce      time.Duration
	Now                 func() time.Time
}

// App owns the client State. Operations hold mu while touching state and
// release it around network calls and View callbacks.
type App struct {
	mu    sync.Mutex
	state State

	api         API
	store       storage.Store
	view        View
	search      *Debouncer
	fallbackIDs []uint
	now         func() time.Time
}

func New(client API, store storage.Store, view View, opts Options) *App {
	if opts.SearchDebounce <= 0 {
		opts.SearchDebounce = DefaultSearchDebounce
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &App{
		state:       State{Nav: Navigator{Active: SectionProducts, entering: map[Section]int{}}},
		api:         client,
		store:       store,
		view:        view,
		search:      NewDebouncer(opts.SearchDebounce),
		fallbackIDs: opts.FallbackFeaturedIDs,
		now:         opts.Now,
	}
}

// Start loads persisted state, restores the session and fetches the catalog.
// A catalog failure is returned but leaves the App usable with an empty catalog.
func (a *App) Start(ctx context.Context) error {
	a.mu.Lock()
	a.state.Cart = loadCart(ctx, a.store)
	a.state.Wishlist = loadWishlist(ctx, a.store)
	cart := a.state.Cart.view()
	a.mu.Unlock()

	a.view.RenderCart(cart)
	a.Restore(ctx)
	return a.LoadCatalog(ctx)
}

// LoadCatalog replaces the catalog cache with the backend's product list
func (a *App) LoadCatalog(ctx context.Context) error {
	products, err := a.api.Products(ctx)
	if err != nil {
		a.notifyError("Error loading products")
		return fmt.Errorf("load catalog: %w", err)
	}

	a.mu.Lock()
	a.state.Catalog = NewCatalog(products)
	a.mu.Unlock()

	logger.Debug(ctx).Int("products", len(products)).Msg("Catalog loaded")
	return nil
}

// Close cancels a pending search
func (a *App) Close() {
	a.search.Stop()
}

func (a *App) Products() []api.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Catalog.All()
}

func (a *App) Categories() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Catalog.Categories()
}

func (a *App) CartItems() []CartItem {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Cart.Items()
}

func (a *App) Total() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Cart.Total()
}

func (a *App) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Cart.Count()
}

func (a *App) WishlistIDs() []uint {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Wishlist.IDs()
}

func (a *App) Filter() FilterState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Filter
}

func (a *App) Section() Section {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Nav.Active
}

func (a *App) MenuOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Nav.MenuOpen
}

// Session returns a copy of the current session, or nil when signed out
func (a *App) Session() *Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sessionLocked()
}

func (a *App) sessionLocked() *Session {
	if a.state.Session == nil {
		return nil
	}
	s := *a.state.Session
	return &s
}

func (a *App) notify(msg string) {
	a.view.Notify(Notification{Level: LevelSuccess, Message: msg})
}

func (a *App) notifyError(msg string) {
	a.view.Notify(Notification{Level: LevelError, Message: msg})
}
