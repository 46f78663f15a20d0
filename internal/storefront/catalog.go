package storefront

import (
	"slices"

	"github.com/tair/storefront/internal/storefront/api"
)

// Catalog is the client copy of every product, fetched once at startup
type Catalog struct {
	products []api.Product
	index    map[uint]int
}

func NewCatalog(products []api.Product) Catalog {
	c := Catalog{products: slices.Clone(products), index: make(map[uint]int, len(products))}
	for i, p := range c.products {
		c.index[p.ID] = i
	}
	return c
}

func (c Catalog) Find(id uint) (api.Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return api.Product{}, false
	}
	return c.products[i], true
}

func (c Catalog) All() []api.Product {
	return c.filter(func(api.Product) bool { return true })
}

// ByCategory matches the category exactly
func (c Catalog) ByCategory(category string) []api.Product {
	return c.filter(func(p api.Product) bool { return p.Category == category })
}

// ByIDs keeps catalog order; unknown ids are ignored
func (c Catalog) ByIDs(ids []uint) []api.Product {
	return c.filter(func(p api.Product) bool { return slices.Contains(ids, p.ID) })
}

// Categories returns the distinct categories, sorted
func (c Catalog) Categories() []string {
	var out []string
	for _, p := range c.products {
		if p.Category != "" && !slices.Contains(out, p.Category) {
			out = append(out, p.Category)
		}
	}
	slices.Sort(out)
	return out
}

func (c Catalog) Len() int {
	return len(c.products)
}

func (c Catalog) filter(keep func(api.Product) bool) []api.Product {
	out := []api.Product{}
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
