package store

import (
	"github.com/yaralane/storefront/internal/catalog"
)

// Wishlist owns the set of wishlisted product ids. Membership has set
// semantics: toggling twice restores the original state.
type Wishlist struct {
	ids map[string]struct{}
}

// NewWishlist returns an empty wishlist.
func NewWishlist() *Wishlist {
	return &Wishlist{ids: make(map[string]struct{})}
}

// Toggle removes the product id from the set if present, otherwise inserts it.
func (w *Wishlist) Toggle(id string) {
	if _, ok := w.ids[id]; ok {
		delete(w.ids, id)
		return
	}
	w.ids[id] = struct{}{}
}

// Contains reports set membership.
func (w *Wishlist) Contains(id string) bool {
	_, ok := w.ids[id]
	return ok
}

// Count is the number of wishlisted products.
func (w *Wishlist) Count() int {
	return len(w.ids)
}

// Products returns the wishlisted catalog products in catalog order, not
// insertion order.
func (w *Wishlist) Products(c *catalog.Catalog) []catalog.Product {
	var out []catalog.Product
	for _, p := range c.Products() {
		if w.Contains(p.ID) {
			out = append(out, p)
		}
	}
	return out
}
