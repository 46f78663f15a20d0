package storefront

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/storefront/api"
	"github.com/tair/storefront/pkg/money"
)

// CartItem is a snapshot of a catalog product plus a quantity
type CartItem struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
	Quantity int             `json:"quantity"`
}

func (i CartItem) LineTotal() decimal.Decimal {
	return money.LineTotal(i.Price, i.Quantity)
}

// Session is the signed in identity. Verified is false when the server
// could not be reached and the identity comes from the token's claims.
type Session struct {
	Token    string
	User     api.User
	Verified bool
}

// Section is one of the client's views; exactly one is active
type Section string

const (
	SectionProducts       Section = "products"
	SectionProductDetails Section = "product-details"
	SectionCart           Section = "cart"
	SectionWishlist       Section = "wishlist"
	SectionOrders         Section = "orders"
	SectionLogin          Section = "login"
	SectionRegister       Section = "register"
)

var knownSections = map[Section]bool{
	SectionProducts:       true,
	SectionProductDetails: true,
	SectionCart:           true,
	SectionWishlist:       true,
	SectionOrders:         true,
	SectionLogin:          true,
	SectionRegister:       true,
}

// FilterKind is the product listing mode
type FilterKind int

const (
	FilterAll FilterKind = iota
	FilterFeatured
	FilterCategory
	FilterSearch
)

func (k FilterKind) String() string {
	switch k {
	case FilterFeatured:
		return "featured"
	case FilterCategory:
		return "category"
	case FilterSearch:
		return "search"
	default:
		return "all"
	}
}

// FilterState is the active listing mode; Value holds the category or query
type FilterState struct {
	Kind  FilterKind
	Value string
}

func (f FilterState) Title() string {
	switch f.Kind {
	case FilterFeatured:
		return "Featured Products"
	case FilterCategory:
		return f.Value + " Products"
	case FilterSearch:
		return fmt.Sprintf("Search Results for %q", f.Value)
	default:
		return "Our Products"
	}
}

// EmptyMessage is shown when the listing has no products
func (f FilterState) EmptyMessage() string {
	switch f.Kind {
	case FilterFeatured:
		return "No featured products available"
	case FilterCategory:
		return fmt.Sprintf("No products found in %s category", f.Value)
	default:
		return "No products found"
	}
}

// Listing is a rendered product grid
type Listing struct {
	Filter        FilterState
	Title         string
	Products      []api.Product
	EmptyMessage  string
	ShowAllAction bool
	// Degraded marks a featured listing built from the local fallback ids
	Degraded bool
	Wishlist []uint
}

// ProductDetails is the product page with its reviews
type ProductDetails struct {
	Product    api.Product
	Reviews    []api.Review
	InWishlist bool
}

// CartView is the rendered cart
type CartView struct {
	Items []CartItem
	Total decimal.Decimal
	Count int
}

type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

// Notification is a transient message for the user
type Notification struct {
	Level   Level
	Message string
}
