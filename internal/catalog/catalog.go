package catalog

import (
	"github.com/shopspring/decimal"
)

// Category names used across the storefront. CategoryAll is a filter-only
// pseudo-category and never appears on a product.
const (
	CategoryAll         = "All"
	CategorySkincare    = "Skincare"
	CategoryFragrance   = "Fragrance"
	CategoryAccessories = "Accessories"
	CategorySets        = "Sets"
)

// Review is a customer review attached to a product.
type Review struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Product is an immutable catalog entry. Price is a decimal to keep cart
// totals exact.
type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Price            decimal.Decimal `json:"price"`
	Image            string          `json:"image"`
	ShortDescription string          `json:"short_description"`
	Ingredients      []string        `json:"ingredients"`
	Rating           float64         `json:"rating"`
	Reviews          []Review        `json:"reviews"`
}

// JournalPost is an editorial entry shown on the journal view.
type JournalPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Image    string `json:"image"`
	ReadTime string `json:"read_time"`
}

// Catalog holds the static product list consumed at startup. It is read-only
// for the process lifetime.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// New returns the seeded storefront catalog.
func New() *Catalog {
	return NewWithProducts(seedProducts())
}

// NewWithProducts builds a catalog from an explicit product list, preserving
// the given order.
func NewWithProducts(products []Product) *Catalog {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Catalog{products: products, byID: byID}
}

// Products returns all products in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks up a product by its id.
func (c *Catalog) ByID(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Len reports how many products the catalog carries.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Categories returns the category filter list, with the "All" pseudo-category
// first.
func Categories() []string {
	return []string{
		CategoryAll,
		CategorySkincare,
		CategoryFragrance,
		CategoryAccessories,
		CategorySets,
	}
}
