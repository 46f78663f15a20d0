package storefront

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/storefront/api"
	"github.com/tair/storefront/internal/storefront/storage"
	"github.com/tair/storefront/pkg/money"
)

func product(id uint, name, price, category string) api.Product {
	return api.Product{ID: id, Name: name, Price: money.MustParse(price), Category: category, Stock: 10}
}

func sampleCatalog() []api.Product {
	return []api.Product{
		product(1, "Laptop", "10.00", "Electronics"),
		product(2, "Headphones", "199.99", "Electronics"),
		product(3, "Coffee Maker", "89.99", "Appliances"),
		product(4, "Running Shoes", "129.99", "Sports"),
		product(5, "Backpack", "49.99", "Accessories"),
	}
}

type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	products    []api.Product
	featured    []api.Product
	featuredErr error
	search      func(query string) ([]api.Product, error)
	product     *api.Product
	productErr  error
	authResp    *api.AuthResponse
	authErr     error
	me          *api.User
	meErr       error
	orderReqs   []api.OrderRequest
	orderErr    error
	orders      []api.OrderRow
	ordersErr   error
	onOrders    func()
	reviews     []api.Review
	reviewErr   error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: map[string]int{}, products: sampleCatalog()}
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) Products(context.Context) ([]api.Product, error) {
	f.record("products")
	return f.products, nil
}

func (f *fakeAPI) FeaturedProducts(context.Context) ([]api.Product, error) {
	f.record("featured")
	return f.featured, f.featuredErr
}

func (f *fakeAPI) Product(_ context.Context, id uint) (*api.Product, error) {
	f.record("product")
	if f.productErr != nil {
		return nil, f.productErr
	}
	if f.product != nil {
		return f.product, nil
	}
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, &api.Error{Status: 404, Message: "Product not found", Kind: api.ErrNotFound}
}

func (f *fakeAPI) SearchProducts(_ context.Context, query string) ([]api.Product, error) {
	f.record("search")
	if f.search != nil {
		return f.search(query)
	}
	return nil, nil
}

func (f *fakeAPI) Register(context.Context, string, string, string) (*api.AuthResponse, error) {
	f.record("register")
	return f.authResp, f.authErr
}

func (f *fakeAPI) Login(context.Context, string, string) (*api.AuthResponse, error) {
	f.record("login")
	return f.authResp, f.authErr
}

func (f *fakeAPI) Me(context.Context, string) (*api.User, error) {
	f.record("me")
	return f.me, f.meErr
}

func (f *fakeAPI) CreateOrder(_ context.Context, _ string, req api.OrderRequest) (*api.OrderCreated, error) {
	f.record("create_order")
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	f.mu.Lock()
	f.orderReqs = append(f.orderReqs, req)
	f.mu.Unlock()
	return &api.OrderCreated{Message: "Order created successfully", OrderID: 1, Reference: "ref-1"}, nil
}

func (f *fakeAPI) Orders(context.Context, string) ([]api.OrderRow, error) {
	f.record("orders")
	if f.onOrders != nil {
		f.onOrders()
	}
	return f.orders, f.ordersErr
}

func (f *fakeAPI) Reviews(context.Context, uint) ([]api.Review, error) {
	f.record("reviews")
	return f.reviews, nil
}

func (f *fakeAPI) AddReview(context.Context, string, uint, int, string) (*api.ReviewCreated, error) {
	f.record("add_review")
	if f.reviewErr != nil {
		return nil, f.reviewErr
	}
	return &api.ReviewCreated{Message: "Review added successfully", ReviewID: 3}, nil
}

type recordingView struct {
	mu            sync.Mutex
	sections      []Section
	menus         []bool
	listings      []Listing
	details       []ProductDetails
	carts         []CartView
	wishlists     [][]api.Product
	orders        [][]api.OrderRow
	auth          []*Session
	notifications []Notification

	onShowSection func(Section)
	onRenderCart  func()
}

func (v *recordingView) ShowSection(s Section) {
	v.mu.Lock()
	v.sections = append(v.sections, s)
	hook := v.onShowSection
	v.mu.Unlock()
	if hook != nil {
		hook(s)
	}
}

func (v *recordingView) RenderMenu(open bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.menus = append(v.menus, open)
}

func (v *recordingView) RenderProducts(l Listing) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listings = append(v.listings, l)
}

func (v *recordingView) RenderProductDetails(d ProductDetails) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.details = append(v.details, d)
}

func (v *recordingView) RenderCart(c CartView) {
	v.mu.Lock()
	v.carts = append(v.carts, c)
	hook := v.onRenderCart
	v.mu.Unlock()
	if hook != nil {
		hook()
	}
}

func (v *recordingView) RenderWishlist(products []api.Product) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.wishlists = append(v.wishlists, products)
}

func (v *recordingView) RenderOrders(rows []api.OrderRow) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.orders = append(v.orders, rows)
}

func (v *recordingView) RenderAuth(s *Session) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.auth = append(v.auth, s)
}

func (v *recordingView) Notify(n Notification) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notifications = append(v.notifications, n)
}

func (v *recordingView) lastListing(t *testing.T) Listing {
	t.Helper()
	v.mu.Lock()
	defer v.mu.Unlock()
	require.NotEmpty(t, v.listings)
	return v.listings[len(v.listings)-1]
}

func (v *recordingView) lastNotification(t *testing.T) Notification {
	t.Helper()
	v.mu.Lock()
	defer v.mu.Unlock()
	require.NotEmpty(t, v.notifications)
	return v.notifications[len(v.notifications)-1]
}

func (v *recordingView) messages() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, 0, len(v.notifications))
	for _, n := range v.notifications {
		out = append(out, n.Message)
	}
	return out
}

type harness struct {
	app   *App
	api   *fakeAPI
	view  *recordingView
	store *storage.MemoryStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWith(t, newFakeAPI(), storage.NewMemoryStore())
}

func newHarnessWith(t *testing.T, client *fakeAPI, store *storage.MemoryStore) *harness {
	t.Helper()
	view := &recordingView{}
	app := New(client, store, view, Options{
		FallbackFeaturedIDs: []uint{1, 2, 4},
		SearchDebounce:      time.Hour,
	})
	t.Cleanup(app.Close)
	return &harness{app: app, api: client, view: view, store: store}
}

func (h *harness) start(t *testing.T) {
	t.Helper()
	require.NoError(t, h.app.Start(context.Background()))
}

func (h *harness) signIn(t *testing.T) {
	t.Helper()
	h.api.authResp = &api.AuthResponse{Token: "tok", User: api.User{ID: 7, Username: "alice", Email: "alice@example.com"}}
	require.NoError(t, h.app.Login(context.Background(), "alice@example.com", "secret"))
}
