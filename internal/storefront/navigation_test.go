package storefront

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/storefront/api"
)

func TestNavigateToKnownSection(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	assert.True(t, h.app.NavigateTo(context.Background(), SectionCart))
	assert.Equal(t, SectionCart, h.app.Section())
	assert.Equal(t, []Section{SectionCart}, h.view.sections)
	// Start renders the restored cart, the cart hook renders it again
	assert.Len(t, h.view.carts, 2)
}

func TestNavigateToUnknownSectionClosesMenu(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	require.True(t, h.app.ToggleMobileMenu())

	assert.False(t, h.app.NavigateTo(context.Background(), Section("settings")))
	assert.Equal(t, SectionProducts, h.app.Section())
	assert.False(t, h.app.MenuOpen())
	assert.Equal(t, []bool{true, false}, h.view.menus)
	assert.Empty(t, h.view.sections)
}

func TestNavigationIgnoredWhileNavigating(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.start(t)

	var nested []bool
	h.view.onShowSection = func(s Section) {
		if s == SectionCart {
			nested = append(nested, h.app.NavigateTo(ctx, SectionOrders))
		}
	}

	assert.True(t, h.app.NavigateTo(ctx, SectionCart))
	assert.Equal(t, []bool{false}, nested)
	assert.Equal(t, SectionCart, h.app.Section())
}

func TestEntryHookCannotReenterSameSection(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.start(t)

	var same, other []bool
	h.view.onRenderCart = func() {
		if len(same) > 0 {
			return
		}
		same = append(same, h.app.NavigateTo(ctx, SectionCart))
		other = append(other, h.app.NavigateTo(ctx, SectionWishlist))
	}

	assert.True(t, h.app.NavigateTo(ctx, SectionCart))
	assert.Equal(t, []bool{false}, same)
	assert.Equal(t, []bool{true}, other)
	assert.Equal(t, SectionWishlist, h.app.Section())

	h.view.onRenderCart = nil
	assert.True(t, h.app.NavigateTo(ctx, SectionCart))
}

func TestOverlappingNavigationsReleaseTheirOwnGuard(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.start(t)
	h.signIn(t)

	ordersStarted, releaseOrders := make(chan struct{}), make(chan struct{})
	h.api.onOrders = func() {
		close(ordersStarted)
		<-releaseOrders
	}
	cartStarted, releaseCart := make(chan struct{}), make(chan struct{})
	h.view.mu.Lock()
	h.view.onRenderCart = func() {
		close(cartStarted)
		<-releaseCart
	}
	h.view.mu.Unlock()

	ordersDone := make(chan bool)
	go func() { ordersDone <- h.app.NavigateTo(ctx, SectionOrders) }()
	<-ordersStarted

	cartDone := make(chan bool)
	go func() { cartDone <- h.app.NavigateTo(ctx, SectionCart) }()
	<-cartStarted

	close(releaseOrders)
	assert.True(t, <-ordersDone)
	close(releaseCart)
	assert.True(t, <-cartDone)

	h.api.onOrders = nil
	h.view.mu.Lock()
	h.view.onRenderCart = nil
	h.view.mu.Unlock()

	assert.True(t, h.app.NavigateTo(ctx, SectionOrders))
	assert.True(t, h.app.NavigateTo(ctx, SectionCart))
	assert.Equal(t, SectionCart, h.app.Section())
}

func TestOrdersHookRequiresSession(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.start(t)

	h.app.NavigateTo(ctx, SectionOrders)
	assert.Zero(t, h.api.count("orders"))

	h.signIn(t)
	qty := 2
	h.api.orders = []api.OrderRow{{ID: 1, Status: "pending", Quantity: &qty}}
	h.app.NavigateTo(ctx, SectionOrders)
	assert.Equal(t, 1, h.api.count("orders"))
	require.Len(t, h.view.orders, 1)
	assert.Equal(t, "pending", h.view.orders[0][0].Status)
}

func TestOrdersRejectedTokenNavigatesToLogin(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.start(t)
	h.signIn(t)
	h.api.ordersErr = &api.Error{Status: 401, Message: "Access token required", Kind: api.ErrAuthRequired}

	h.app.NavigateTo(ctx, SectionOrders)

	assert.Nil(t, h.app.Session())
	assert.Equal(t, SectionLogin, h.app.Section())
	assert.Equal(t, "Session expired, please login again", h.view.lastNotification(t).Message)
}

func TestToggleMobileMenu(t *testing.T) {
	h := newHarness(t)
	assert.True(t, h.app.ToggleMobileMenu())
	assert.True(t, h.app.MenuOpen())
	assert.False(t, h.app.ToggleMobileMenu())

	h.app.ToggleMobileMenu()
	h.app.NavigateTo(context.Background(), SectionWishlist)
	assert.False(t, h.app.MenuOpen())
}
