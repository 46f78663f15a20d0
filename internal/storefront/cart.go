package storefront

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/storefront/api"
)

// Cart holds at most one item per product id, each with quantity >= 1
type Cart struct {
	items []CartItem
}

// NewCart builds a cart from persisted items, merging repeated ids and
// dropping non-positive quantities
func NewCart(items []CartItem) Cart {
	var c Cart
	for _, item := range items {
		if item.Quantity <= 0 || item.ID == 0 {
			continue
		}
		if i := c.index(item.ID); i >= 0 {
			c.items[i].Quantity += item.Quantity
			continue
		}
		c.items = append(c.items, item)
	}
	return c
}

func (c *Cart) index(id uint) int {
	return slices.IndexFunc(c.items, func(item CartItem) bool { return item.ID == id })
}

// Add increments the product's quantity or inserts it with quantity 1
func (c *Cart) Add(p api.Product) CartItem {
	if i := c.index(p.ID); i >= 0 {
		c.items[i].Quantity++
		return c.items[i]
	}
	item := CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Quantity: 1,
	}
	c.items = append(c.items, item)
	return item
}

// Remove deletes the item and reports whether it was present
func (c *Cart) Remove(id uint) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	return true
}

// ChangeQuantity adds delta to the item's quantity; a result <= 0 removes it.
// found is false when the item is absent.
func (c *Cart) ChangeQuantity(id uint, delta int) (found, removed bool) {
	i := c.index(id)
	if i < 0 {
		return false, false
	}
	if c.items[i].Quantity+delta <= 0 {
		c.items = slices.Delete(c.items, i, i+1)
		return true, true
	}
	c.items[i].Quantity += delta
	return true, false
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the cart lines in insertion order
func (c Cart) Items() []CartItem {
	return slices.Clone(c.items)
}

func (c Cart) Len() int {
	return len(c.items)
}

// Total is the exact sum of price x quantity
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Count is the number of units, shown on the cart badge
func (c Cart) Count() int {
	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

func (c Cart) view() CartView {
	return CartView{Items: c.Items(), Total: c.Total(), Count: c.Count()}
}
