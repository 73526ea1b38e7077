package store

import (
	"strings"

	"github.com/yaralane/storefront/internal/catalog"
)

// VisibleProducts derives the product grid from the current view, category,
// search query and wishlist membership. It is a pure function of its inputs
// and preserves catalog order throughout; an empty result is a valid state.
//
// Rules, applied in order:
//  1. wishlist view: wishlisted products only, category filter ignored
//  2. shop view: category filter unless the "All" pseudo-category is active
//  3. any other view: no grid unless a search is active, in which case the
//     search runs against the full catalog
//  4. a non-empty trimmed query restricts further by case-insensitive
//     substring match over name, category label and short description
func VisibleProducts(products []catalog.Product, view View, category, query string, wishlisted func(string) bool) []catalog.Product {
	query = strings.TrimSpace(query)
	searching := query != ""

	var out []catalog.Product
	for _, p := range products {
		switch view {
		case ViewWishlist:
			if !wishlisted(p.ID) {
				continue
			}
		case ViewShop:
			if category != catalog.CategoryAll && p.Category != category {
				continue
			}
		default:
			if !searching {
				continue
			}
		}
		if searching && !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p catalog.Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.ShortDescription), q)
}
