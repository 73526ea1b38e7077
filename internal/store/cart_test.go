package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaralane/storefront/internal/catalog"
)

func testProduct(id, name string, price int64) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     name,
		Category: catalog.CategorySkincare,
		Price:    decimal.NewFromInt(price),
	}
}

func TestCart_AddMergesDuplicates(t *testing.T) {
	cart := NewCart()
	p := testProduct("1", "Midnight Recovery Serum", 85)

	for i := 0; i < 5; i++ {
		cart.Add(p)
	}

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, cart.Count())
}

func TestCart_AddDistinctProducts(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", "Serum", 85))
	cart.Add(testProduct("2", "Scarf", 120))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "2", items[1].ID)
}

func TestCart_TotalScenario(t *testing.T) {
	// Empty cart, add ProductA (85) twice: one line, quantity 2, total 170.00.
	cart := NewCart()
	p := testProduct("a", "ProductA", 85)

	cart.Add(p)
	cart.Add(p)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(170)), "total = %s", cart.Total())
}

func TestCart_UpdateQuantityFloorsAtZero(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", "Serum", 85))

	cart.UpdateQuantity("1", -10)

	assert.Empty(t, cart.Items(), "a quantity of 0 must never persist")
	assert.Equal(t, 0, cart.Count())
	assert.True(t, cart.Total().IsZero())
}

func TestCart_UpdateQuantityRemovesAtExactZero(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", "Serum", 85))

	cart.UpdateQuantity("1", -1)

	assert.Empty(t, cart.Items())
}

func TestCart_UpdateQuantityArbitraryDelta(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", "Serum", 85))

	cart.UpdateQuantity("1", 3)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)

	for _, item := range items {
		assert.GreaterOrEqual(t, item.Quantity, 1)
	}
}

func TestCart_UpdateQuantityUnknownIDNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", "Serum", 85))

	cart.UpdateQuantity("missing", -1)

	assert.Len(t, cart.Items(), 1)
}

func TestCart_RemoveAbsentIDNoop(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", "Serum", 85))

	cart.Remove("missing")

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("1", "Serum", 85))
	cart.Add(testProduct("2", "Scarf", 120))

	cart.Remove("1")

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)
}

func TestCart_TotalNeverStale(t *testing.T) {
	cart := NewCart()
	serum := testProduct("1", "Serum", 85)
	scarf := testProduct("2", "Scarf", 120)

	cart.Add(serum)
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(85)))

	cart.Add(scarf)
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(205)))

	cart.UpdateQuantity("2", 2)
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(445)))

	cart.Remove("1")
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(360)))

	cart.UpdateQuantity("2", -3)
	assert.True(t, cart.Total().IsZero())
}

func TestStore_AddToCartEmitsToast(t *testing.T) {
	s := New(catalog.New())
	p, ok := s.Catalog().ByID("1")
	require.True(t, ok)

	s.AddToCart(p)

	toast := s.Toast()
	assert.True(t, toast.Visible)
	assert.Contains(t, toast.Message, p.Name)
}
