package storefront

import (
	"fmt"
	"io"
	"strings"

	"github.com/tair/storefront/internal/storefront/api"
	"github.com/tair/storefront/pkg/money"
)

// PlaceholderImageURL is shown for products without an image
const PlaceholderImageURL = "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=400&h=300&fit=crop&auto=format"

// ImageURL resolves a product image path against the API base URL
func ImageURL(baseURL, path string) string {
	switch {
	case path == "":
		return PlaceholderImageURL
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		return path
	default:
		return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
	}
}

// TextView renders the storefront as plain text. Section changes, the menu
// and the auth header are only printed when Verbose is set.
type TextView struct {
	out     io.Writer
	baseURL string
	Verbose bool
}

func NewTextView(out io.Writer, baseURL string) *TextView {
	return &TextView{out: out, baseURL: baseURL}
}

func (v *TextView) printf(format string, args ...any) {
	fmt.Fprintf(v.out, format, args...)
}

func (v *TextView) ShowSection(section Section) {
	if v.Verbose {
		v.printf("== %s ==\n", section)
	}
}

func (v *TextView) RenderMenu(open bool) {
	if v.Verbose {
		v.printf("menu open: %t\n", open)
	}
}

func (v *TextView) RenderProducts(l Listing) {
	v.printf("%s\n", l.Title)
	if l.Degraded {
		v.printf("(featured list unavailable, showing saved picks)\n")
	}
	if len(l.Products) == 0 {
		v.printf("%s\n", l.EmptyMessage)
		if l.ShowAllAction {
			v.printf("Run `storefront products` to show all products\n")
		}
		return
	}
	for _, p := range l.Products {
		mark := ""
		for _, id := range l.Wishlist {
			if id == p.ID {
				mark = " ♥"
				break
			}
		}
		v.printf("%4d  %-28s $%8s  %-12s stock %d%s\n", p.ID, p.Name, money.Format(p.Price), p.Category, p.Stock, mark)
	}
}

func (v *TextView) RenderProductDetails(d ProductDetails) {
	p := d.Product
	v.printf("%s  $%s\n", p.Name, money.Format(p.Price))
	v.printf("Category: %s  Stock: %d\n", p.Category, p.Stock)
	v.printf("Image: %s\n", ImageURL(v.baseURL, p.ImageURL))
	if d.InWishlist {
		v.printf("In your wishlist\n")
	}
	if p.Description != "" {
		v.printf("\n%s\n", p.Description)
	}
	v.printf("\nReviews\n")
	if len(d.Reviews) == 0 {
		v.printf("No reviews yet. Be the first to review!\n")
		return
	}
	for _, r := range d.Reviews {
		v.printf("%s%s  %s  %s\n", strings.Repeat("★", r.Rating), strings.Repeat("☆", 5-r.Rating),
			r.Username, r.CreatedAt.Format("2006-01-02"))
		if r.Comment != "" {
			v.printf("  %s\n", r.Comment)
		}
	}
}

func (v *TextView) RenderCart(c CartView) {
	if len(c.Items) == 0 {
		v.printf("Your cart is empty\n")
		return
	}
	for _, item := range c.Items {
		v.printf("%4d  %-28s $%8s x %-3d $%9s\n", item.ID, item.Name, money.Format(item.Price),
			item.Quantity, money.Format(item.LineTotal()))
	}
	v.printf("Items: %d  Total: $%s\n", c.Count, money.Format(c.Total))
}

func (v *TextView) RenderWishlist(products []api.Product) {
	if len(products) == 0 {
		v.printf("Your wishlist is empty\n")
		return
	}
	for _, p := range products {
		v.printf("%4d  %-28s $%8s\n", p.ID, p.Name, money.Format(p.Price))
	}
}

// RenderOrders groups the joined rows by order, newest first as received
func (v *TextView) RenderOrders(rows []api.OrderRow) {
	if len(rows) == 0 {
		v.printf("No orders found\n")
		return
	}
	var current uint
	for _, row := range rows {
		if row.ID != current {
			current = row.ID
			v.printf("Order #%d  %s  %s  $%s  %s\n", row.ID, row.Reference, row.Status,
				money.Format(row.TotalAmount), row.CreatedAt.Format("2006-01-02 15:04"))
		}
		if row.ProductID == nil || row.Quantity == nil {
			continue
		}
		name := "Unknown product"
		if row.ProductName != nil {
			name = *row.ProductName
		}
		price := "-"
		if row.Price.Valid {
			price = money.Format(row.Price.Decimal)
		}
		v.printf("  - %s x %d @ $%s\n", name, *row.Quantity, price)
	}
}

func (v *TextView) RenderAuth(s *Session) {
	if !v.Verbose {
		return
	}
	switch {
	case s == nil:
		v.printf("Signed out\n")
	case s.Verified:
		v.printf("Signed in as %s\n", s.User.Username)
	default:
		v.printf("Signed in as %s (offline)\n", s.User.Username)
	}
}

func (v *TextView) Notify(n Notification) {
	if n.Level == LevelError {
		v.printf("✗ %s\n", n.Message)
		return
	}
	v.printf("✓ %s\n", n.Message)
}
