package store

import (
	"github.com/shopspring/decimal"

	"github.com/yaralane/storefront/internal/catalog"
)

// CartItem is a single line in the cart: a snapshot of the product fields
// plus a quantity. Identity is the product id. A line never carries a
// quantity below 1; reaching 0 destroys it.
type CartItem struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Cart owns the cart line items. Lines keep insertion order.
type Cart struct {
	items []CartItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add increments the quantity of an existing line for the product, or inserts
// a new line with quantity 1. The caller guarantees the product exists.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
}

// UpdateQuantity applies a caller-supplied delta to the line with the given
// id, flooring the result at 0. A result of 0 removes the line entirely.
// Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(id string, delta int) {
	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		q := c.items[i].Quantity + delta
		if q <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = q
		}
		return
	}
}

// Remove deletes the line with the given id. Absent ids are a no-op.
func (c *Cart) Remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns the current lines in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Count is the sum of all line quantities, recomputed on every call.
func (c *Cart) Count() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Total is the sum over lines of price times quantity, recomputed on every
// call rather than cached.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
