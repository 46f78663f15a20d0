package storefront

import "slices"

// Wishlist is an ordered set of product ids
type Wishlist struct {
	ids []uint
}

// NewWishlist de-duplicates persisted ids keeping first occurrences
func NewWishlist(ids []uint) Wishlist {
	var w Wishlist
	for _, id := range ids {
		if id != 0 && !w.Contains(id) {
			w.ids = append(w.ids, id)
		}
	}
	return w
}

// Toggle adds or removes id and reports whether it was added
func (w *Wishlist) Toggle(id uint) bool {
	if i := slices.Index(w.ids, id); i >= 0 {
		w.ids = slices.Delete(w.ids, i, i+1)
		return false
	}
	w.ids = append(w.ids, id)
	return true
}

func (w Wishlist) Contains(id uint) bool {
	return slices.Contains(w.ids, id)
}

func (w Wishlist) IDs() []uint {
	return slices.Clone(w.ids)
}
