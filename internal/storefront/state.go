package storefront

import "github.com/tair/storefront/internal/storefront/api"

type navPhase int

const (
	navIdle navPhase = iota
	navNavigating
)

// Navigator tracks the active section and the navigation guard
type Navigator struct {
	Active   Section
	MenuOpen bool

	phase navPhase
	// entering counts the in-flight entry hook dispatches per section
	entering map[Section]int
}

// State is the client state shared by the cart, filter and navigator
type State struct {
	Catalog  Catalog
	Cart     Cart
	Wishlist Wishlist
	Filter   FilterState
	// LastExplicit is FilterAll or FilterFeatured
	LastExplicit FilterKind
	// SearchQuery is the last query applied by the debounced search
	SearchQuery string
	Session     *Session
	Nav         Navigator
	Detail      *api.Product

	listingGen uint64
}
