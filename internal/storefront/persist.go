package storefront

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tair/storefront/internal/storefront/storage"
	"github.com/tair/storefront/pkg/logger"
)

// loadJSON decodes a persisted value; unreadable or corrupt values load as empty
func loadJSON(ctx context.Context, store storage.Store, key string, out any) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Failed to read persisted state")
		return
	}
	if !ok || raw == "" {
		return
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Ignoring corrupt persisted state")
	}
}

func saveJSON(ctx context.Context, store storage.Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

func loadCart(ctx context.Context, store storage.Store) Cart {
	var items []CartItem
	loadJSON(ctx, store, storage.KeyCart, &items)
	return NewCart(items)
}

func loadWishlist(ctx context.Context, store storage.Store) Wishlist {
	var ids []uint
	loadJSON(ctx, store, storage.KeyWishlist, &ids)
	return NewWishlist(ids)
}

// saveCartLocked persists the cart; a.mu must be held
func (a *App) saveCartLocked(ctx context.Context) error {
	items := a.state.Cart.Items()
	if items == nil {
		items = []CartItem{}
	}
	return saveJSON(ctx, a.store, storage.KeyCart, items)
}

func (a *App) saveWishlistLocked(ctx context.Context) error {
	ids := a.state.Wishlist.IDs()
	if ids == nil {
		ids = []uint{}
	}
	return saveJSON(ctx, a.store, storage.KeyWishlist, ids)
}
