package storefront

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/storefront/internal/storefront/api"
	"github.com/tair/storefront/pkg/logger"
)

// AddItem adds one unit of a catalog product to the cart
func (a *App) AddItem(ctx context.Context, productID uint) error {
	a.mu.Lock()
	p, ok := a.state.Catalog.Find(productID)
	if !ok {
		a.mu.Unlock()
		a.notifyError("Product not found")
		return fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	a.state.Cart.Add(p)
	err := a.saveCartLocked(ctx)
	cart := a.state.Cart.view()
	a.mu.Unlock()

	a.view.RenderCart(cart)
	a.notifySaved(ctx, err, "Product added to cart!")
	return err
}

// RemoveItem deletes the product's cart line; absent ids are ignored
func (a *App) RemoveItem(ctx context.Context, productID uint) error {
	a.mu.Lock()
	if !a.state.Cart.Remove(productID) {
		a.mu.Unlock()
		return nil
	}
	err := a.saveCartLocked(ctx)
	cart := a.state.Cart.view()
	a.mu.Unlock()

	a.view.RenderCart(cart)
	a.notifySaved(ctx, err, "Product removed from cart")
	return err
}

// ChangeQuantity adjusts a cart line by delta; a result <= 0 behaves as RemoveItem
func (a *App) ChangeQuantity(ctx context.Context, productID uint, delta int) error {
	a.mu.Lock()
	found, removed := a.state.Cart.ChangeQuantity(productID, delta)
	if !found {
		a.mu.Unlock()
		return nil
	}
	err := a.saveCartLocked(ctx)
	cart := a.state.Cart.view()
	a.mu.Unlock()

	a.view.RenderCart(cart)
	msg := ""
	if removed {
		msg = "Product removed from cart"
	}
	a.notifySaved(ctx, err, msg)
	return err
}

// Checkout submits the cart as an order. The cart is cleared only when the
// backend confirms the order.
func (a *App) Checkout(ctx context.Context) (*api.OrderCreated, error) {
	a.mu.Lock()
	if a.state.Session == nil {
		a.mu.Unlock()
		a.notifyError("Please login to checkout")
		a.NavigateTo(ctx, SectionLogin)
		return nil, ErrAuthRequired
	}
	if a.state.Cart.Len() == 0 {
		a.mu.Unlock()
		a.notifyError("Your cart is empty")
		return nil, ErrEmptyCart
	}
	token := a.state.Session.Token
	req := api.OrderRequest{TotalAmount: a.state.Cart.Total()}
	for _, item := range a.state.Cart.Items() {
		req.Items = append(req.Items, api.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			ImageURL: item.ImageURL,
			Quantity: item.Quantity,
		})
	}
	a.mu.Unlock()

	created, err := a.api.CreateOrder(ctx, token, req)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Checkout failed")
		if a.demoteOnAuthFailure(ctx, err) {
			return nil, err
		}
		a.notifyError("Checkout failed: " + api.Message(err))
		return nil, err
	}

	a.mu.Lock()
	a.state.Cart.Clear()
	perr := a.saveCartLocked(ctx)
	cart := a.state.Cart.view()
	a.mu.Unlock()

	logger.Info(ctx).Uint("order_id", created.OrderID).Str("reference", created.Reference).Msg("Order placed")

	a.view.RenderCart(cart)
	a.notify("Order placed successfully!")
	a.notifySaved(ctx, perr, "")
	a.NavigateTo(ctx, SectionProducts)
	return created, perr
}

// LoadOrders fetches and renders the order history; without a session it does nothing
func (a *App) LoadOrders(ctx context.Context) error {
	session := a.Session()
	if session == nil {
		return nil
	}

	rows, err := a.api.Orders(ctx, session.Token)
	if err != nil {
		if a.demoteOnAuthFailure(ctx, err) {
			return err
		}
		a.notifyError("Error loading orders")
		return err
	}
	a.view.RenderOrders(rows)
	return nil
}

// ToggleWishlist adds or removes the product and reports whether it was added
func (a *App) ToggleWishlist(ctx context.Context, productID uint) (bool, error) {
	a.mu.Lock()
	added := a.state.Wishlist.Toggle(productID)
	err := a.saveWishlistLocked(ctx)
	a.mu.Unlock()

	a.renderWishlist()
	msg := "Removed from wishlist"
	if added {
		msg = "Added to wishlist!"
	}
	a.notifySaved(ctx, err, msg)
	return added, err
}

// ShowProductDetails fetches the product with its reviews and opens its page
func (a *App) ShowProductDetails(ctx context.Context, productID uint) error {
	p, err := a.api.Product(ctx, productID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			a.notifyError("Product not found")
		} else {
			a.notifyError("Error loading product details")
		}
		return err
	}

	reviews, err := a.api.Reviews(ctx, productID)
	if err != nil {
		logger.Warn(ctx).Err(err).Uint("product_id", productID).Msg("Failed to load reviews")
		reviews = nil
	}

	a.mu.Lock()
	a.state.Detail = p
	details := ProductDetails{Product: *p, Reviews: reviews, InWishlist: a.state.Wishlist.Contains(p.ID)}
	a.mu.Unlock()

	a.NavigateTo(ctx, SectionProductDetails)
	a.view.RenderProductDetails(details)
	return nil
}

// AddReview posts a review and refreshes the open product page
func (a *App) AddReview(ctx context.Context, productID uint, rating int, comment string) (*api.ReviewCreated, error) {
	session := a.Session()
	if session == nil {
		a.notifyError("Please login to leave a review")
		a.NavigateTo(ctx, SectionLogin)
		return nil, ErrAuthRequired
	}
	if rating < 1 || rating > 5 {
		a.notifyError("Rating must be between 1 and 5")
		return nil, fmt.Errorf("rating %d: %w", rating, ErrValidation)
	}

	created, err := a.api.AddReview(ctx, session.Token, productID, rating, comment)
	if err != nil {
		if a.demoteOnAuthFailure(ctx, err) {
			return nil, err
		}
		a.notifyError(api.Message(err))
		return nil, err
	}
	a.notify("Review added successfully!")

	a.mu.Lock()
	onPage := a.state.Detail != nil && a.state.Detail.ID == productID && a.state.Nav.Active == SectionProductDetails
	a.mu.Unlock()
	if onPage {
		if err := a.ShowProductDetails(ctx, productID); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to refresh product page")
		}
	}
	return created, nil
}

// notifySaved reports msg, or the persistence failure instead when err is set
func (a *App) notifySaved(ctx context.Context, err error, msg string) {
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to persist state")
		a.notifyError("Could not save your changes")
		return
	}
	if msg != "" {
		a.notify(msg)
	}
}

func (a *App) renderCart() {
	a.mu.Lock()
	cart := a.state.Cart.view()
	a.mu.Unlock()
	a.view.RenderCart(cart)
}

func (a *App) renderWishlist() {
	a.mu.Lock()
	products := a.state.Catalog.ByIDs(a.state.Wishlist.IDs())
	a.mu.Unlock()
	a.view.RenderWishlist(products)
}
