package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("Hoodie", "Warm hoodie", decimal.NewFromInt(35), "Men", "Hoodie", "L", 5, "")
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "Hoodie", product.Name)
		assert.Equal(t, "Warm hoodie", product.Description)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(35)))
		assert.Equal(t, "Men", product.Category)
		assert.Equal(t, 5, product.Stock)
		assert.NotZero(t, product.ID)
		assert.NotEmpty(t, product.InventoryID)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("", "", decimal.NewFromInt(10), "Men", "", "M", 1, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewProduct("Socks", "", decimal.NewFromInt(-1), "Men", "", "M", 1, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Price cannot be negative")
	})

	t.Run("fails with negative stock", func(t *testing.T) {
		_, err := NewProduct("Socks", "", decimal.NewFromInt(5), "Men", "", "M", -1, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Stock cannot be negative")
	})
}

func TestProductUpdate(t *testing.T) {
	product, err := NewProduct("Hoodie", "", decimal.NewFromInt(35), "Men", "Hoodie", "L", 5, "")
	require.NoError(t, err)

	t.Run("replaces editable fields", func(t *testing.T) {
		err := product.Update("Zip Hoodie", "With zipper", decimal.NewFromInt(45), "Women", "Hoodie", "M", 8, "/img/zip.webp")
		require.NoError(t, err)
		assert.Equal(t, "Zip Hoodie", product.Name)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(45)))
		assert.Equal(t, 8, product.Stock)
	})

	t.Run("invalid update leaves product unchanged", func(t *testing.T) {
		before := *product
		err := product.Update("", "", decimal.NewFromInt(-1), "", "", "", -1, "")
		require.Error(t, err)
		assert.Equal(t, before, *product)
	})
}

func TestProductAdjustStock(t *testing.T) {
	t.Run("applies positive and negative deltas", func(t *testing.T) {
		p := Product{Stock: 10}
		assert.Equal(t, 5, p.AdjustStock(5))
		assert.Equal(t, 15, p.Stock)
		assert.Equal(t, -7, p.AdjustStock(-7))
		assert.Equal(t, 8, p.Stock)
	})

	t.Run("clamps at zero", func(t *testing.T) {
		p := Product{Stock: 3}
		applied := p.AdjustStock(-10)
		assert.Equal(t, -3, applied)
		assert.Equal(t, 0, p.Stock)
	})
}

func TestProductReserveRelease(t *testing.T) {
	t.Run("reserve removes stock", func(t *testing.T) {
		p := Product{Stock: 10}
		require.NoError(t, p.Reserve(4))
		assert.Equal(t, 6, p.Stock)
	})

	t.Run("reserve fails beyond available stock", func(t *testing.T) {
		p := Product{Stock: 2}
		err := p.Reserve(3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Insufficient stock")
		assert.Equal(t, 2, p.Stock)
	})

	t.Run("reserve fails with non-positive quantity", func(t *testing.T) {
		p := Product{Stock: 2}
		require.Error(t, p.Reserve(0))
		require.Error(t, p.Reserve(-1))
	})

	t.Run("release restores reserved stock", func(t *testing.T) {
		p := Product{Stock: 10}
		require.NoError(t, p.Reserve(4))
		p.Release(4)
		assert.Equal(t, 10, p.Stock)
	})
}

func TestApplyFilter(t *testing.T) {
	products := SeedProducts()

	t.Run("empty filter returns all", func(t *testing.T) {
		assert.Len(t, ApplyFilter(products, Filter{}), len(products))
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		got := ApplyFilter(products, Filter{Search: "t-shirt"})
		require.Len(t, got, 1)
		assert.Equal(t, "T-shirt", got[0].Name)
	})

	t.Run("search matches category", func(t *testing.T) {
		got := ApplyFilter(products, Filter{Search: "women"})
		require.Len(t, got, 1)
		assert.Equal(t, "Jeans", got[0].Name)
	})

	t.Run("category filter is exact", func(t *testing.T) {
		got := ApplyFilter(products, Filter{Category: "Men"})
		require.Len(t, got, 1)
		assert.Equal(t, "T-shirt", got[0].Name)
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		min := decimal.NewFromInt(20)
		max := decimal.NewFromInt(20)
		got := ApplyFilter(products, Filter{MinPrice: &min, MaxPrice: &max})
		require.Len(t, got, 1)
		assert.Equal(t, "T-shirt", got[0].Name)

		min = decimal.NewFromInt(21)
		got = ApplyFilter(products, Filter{MinPrice: &min})
		require.Len(t, got, 1)
		assert.Equal(t, "Jeans", got[0].Name)
	})
}
