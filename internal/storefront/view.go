package storefront

import "github.com/tair/storefront/internal/storefront/api"

// View renders App state. App never holds its lock while calling a View,
// so implementations may call back into App.
type View interface {
	ShowSection(section Section)
	RenderMenu(open bool)
	RenderProducts(listing Listing)
	RenderProductDetails(details ProductDetails)
	RenderCart(cart CartView)
	RenderWishlist(products []api.Product)
	RenderOrders(rows []api.OrderRow)
	// RenderAuth receives nil when signed out
	RenderAuth(session *Session)
	Notify(n Notification)
}
