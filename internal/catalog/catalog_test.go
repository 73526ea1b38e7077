package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SeedIntegrity(t *testing.T) {
	c := New()

	require.Equal(t, 6, c.Len())

	seen := make(map[string]struct{})
	for _, p := range c.Products() {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.ShortDescription)
		assert.NotEmpty(t, p.Ingredients)
		assert.True(t, p.Price.IsPositive(), "product %s price", p.ID)
		assert.NotEqual(t, CategoryAll, p.Category, "All is filter-only")

		_, dup := seen[p.ID]
		assert.False(t, dup, "duplicate product id %s", p.ID)
		seen[p.ID] = struct{}{}
	}
}

func TestCatalog_ByID(t *testing.T) {
	c := New()

	p, ok := c.ByID("1")
	require.True(t, ok)
	assert.Equal(t, "Midnight Recovery Serum", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(85)))

	_, ok = c.ByID("missing")
	assert.False(t, ok)
}

func TestCatalog_ProductsReturnsCopy(t *testing.T) {
	c := New()

	products := c.Products()
	products[0].Name = "mutated"

	p, ok := c.ByID("1")
	require.True(t, ok)
	assert.Equal(t, "Midnight Recovery Serum", p.Name)
}

func TestNewWithProducts_PreservesOrder(t *testing.T) {
	c := NewWithProducts([]Product{
		{ID: "z", Name: "Last"},
		{ID: "a", Name: "First"},
	})

	products := c.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "z", products[0].ID)
	assert.Equal(t, "a", products[1].ID)
}

func TestCategories_AllFirst(t *testing.T) {
	cats := Categories()

	require.NotEmpty(t, cats)
	assert.Equal(t, CategoryAll, cats[0])
	assert.Contains(t, cats, CategorySets)
}

func TestJournalPosts(t *testing.T) {
	posts := JournalPosts()

	require.Len(t, posts, 3)
	for _, post := range posts {
		assert.NotEmpty(t, post.ID)
		assert.NotEmpty(t, post.Title)
		assert.NotEmpty(t, post.ReadTime)
	}
}

func TestSeedOrders(t *testing.T) {
	orders := SeedOrders()

	require.Len(t, orders, 3)
	assert.Equal(t, "#YL-8402", orders[0].ID)
	assert.True(t, orders[0].Total.Equal(decimal.NewFromInt(205)))
	for _, o := range orders {
		assert.NotEmpty(t, o.Items)
		assert.NotEmpty(t, o.Status)
	}
}
