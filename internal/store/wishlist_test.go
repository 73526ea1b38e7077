package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaralane/storefront/internal/catalog"
)

func TestWishlist_Toggle(t *testing.T) {
	w := NewWishlist()

	w.Toggle("3")
	assert.True(t, w.Contains("3"))
	assert.Equal(t, 1, w.Count())

	w.Toggle("3")
	assert.False(t, w.Contains("3"))
	assert.Equal(t, 0, w.Count())
}

func TestWishlist_DoubleToggleRestoresState(t *testing.T) {
	w := NewWishlist()
	w.Toggle("1")
	w.Toggle("5")

	w.Toggle("3")
	w.Toggle("3")

	assert.True(t, w.Contains("1"))
	assert.True(t, w.Contains("5"))
	assert.False(t, w.Contains("3"))
	assert.Equal(t, 2, w.Count())
}

func TestWishlist_ProductsInCatalogOrder(t *testing.T) {
	c := catalog.New()
	w := NewWishlist()

	// Toggle out of catalog order; listing must come back in catalog order.
	w.Toggle("5")
	w.Toggle("1")
	w.Toggle("3")

	products := w.Products(c)
	require.Len(t, products, 3)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "3", products[1].ID)
	assert.Equal(t, "5", products[2].ID)
}

func TestWishlist_ProductsEmpty(t *testing.T) {
	w := NewWishlist()
	assert.Empty(t, w.Products(catalog.New()))
}
