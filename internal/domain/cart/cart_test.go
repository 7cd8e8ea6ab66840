package cart

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verve-shop/storefront/internal/domain/catalog"
)

func product(id, price string) catalog.Product {
	return catalog.Product{ID: id, Name: "Product " + id, Price: decimal.RequireFromString(price), Stock: 10}
}

func TestCart_AddItemDistinctKeys(t *testing.T) {
	c := New()
	mat := product("4", "68.00")

	c.AddItem(mat, 1, "Sage", "")
	c.AddItem(mat, 2, "Sand", "")
	c.AddItem(mat, 3, "Sage", "")
	c.AddItem(product("2", "49.99"), 1, "", "1kg")
	c.AddItem(product("2", "49.99"), 1, "", "500g")

	lines := c.Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, Key{ProductID: "4", Color: "Sage"}, lines[0].Key())
	assert.Equal(t, 4, lines[0].Quantity)
	assert.Equal(t, Key{ProductID: "4", Color: "Sand"}, lines[1].Key())
	assert.Equal(t, 2, lines[1].Quantity)
	assert.Equal(t, Key{ProductID: "2", Size: "1kg"}, lines[2].Key())
	assert.Equal(t, Key{ProductID: "2", Size: "500g"}, lines[3].Key())
	assert.Equal(t, 8, c.TotalItems())
}

func TestCart_AddItemDefaultsQuantity(t *testing.T) {
	c := New()
	c.AddItem(product("1", "10"), 0, "", "")

	assert.Equal(t, 1, c.TotalItems())
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Run("sets exact quantity", func(t *testing.T) {
		c := New()
		c.AddItem(product("1", "10"), 1, "", "")

		c.UpdateQuantity("1", 7)

		line, ok := c.Line("1")
		require.True(t, ok)
		assert.Equal(t, 7, line.Quantity)
	})

	t.Run("zero and negative remove the line", func(t *testing.T) {
		for _, q := range []int{0, -3} {
			c := New()
			c.AddItem(product("1", "10"), 2, "", "")
			c.AddItem(product("2", "5"), 1, "", "")

			c.UpdateQuantity("1", q)

			lines := c.Lines()
			require.Len(t, lines, 1)
			assert.Equal(t, "2", lines[0].Product.ID)
		}
	})

	t.Run("first match by product id only", func(t *testing.T) {
		c := New()
		mat := product("4", "68.00")
		c.AddItem(mat, 1, "Sage", "")
		c.AddItem(mat, 1, "Sand", "")

		c.UpdateQuantity("4", 5)

		lines := c.Lines()
		assert.Equal(t, 5, lines[0].Quantity)
		assert.Equal(t, 1, lines[1].Quantity)
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		c := New()
		c.AddItem(product("1", "10"), 2, "", "")

		c.UpdateQuantity("missing", 4)

		assert.Equal(t, 2, c.TotalItems())
	})
}

func TestCart_RemoveItemRemovesAllLinesForProduct(t *testing.T) {
	c := New()
	mat := product("4", "68.00")
	c.AddItem(mat, 1, "Sage", "")
	c.AddItem(product("1", "10"), 1, "", "")
	c.AddItem(mat, 1, "Sand", "")

	c.RemoveItem("4")
	c.RemoveItem("missing")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "1", lines[0].Product.ID)
}

func TestCart_Subtotal(t *testing.T) {
	c := New()
	c.AddItem(product("1", "10"), 2, "", "")
	c.AddItem(product("2", "5"), 3, "", "")

	assert.True(t, decimal.NewFromInt(35).Equal(c.Subtotal()), "got %s", c.Subtotal())

	c.UpdateQuantity("2", 1)
	assert.True(t, decimal.NewFromInt(25).Equal(c.Subtotal()), "subtotal is recomputed on read")
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.AddItem(product("1", "10"), 2, "", "")
	c.AddItem(product("2", "5"), 3, "Red", "M")

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Lines())
	assert.True(t, c.Subtotal().IsZero())
	assert.Equal(t, 0, c.TotalItems())
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	c := New()
	c.AddItem(product("1", "10"), 2, "", "")

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 2, c.TotalItems())
}

func TestCart_JSONRoundTripKeepsOrder(t *testing.T) {
	c := New()
	c.AddItem(product("3", "19.99"), 1, "", "")
	c.AddItem(product("1", "34.99"), 2, "", "")

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	restored := New()
	require.NoError(t, json.Unmarshal(raw, restored))
	assert.Equal(t, []Key{{ProductID: "3"}, {ProductID: "1"}}, []Key{restored.Lines()[0].Key(), restored.Lines()[1].Key()})
	assert.True(t, c.Subtotal().Equal(restored.Subtotal()))
}

func TestCart_UnmarshalDropsInvalidLines(t *testing.T) {
	raw := `{"lines":[
		{"product":{"id":"1","price":"10"},"quantity":0},
		{"product":{"id":"2","price":"5"},"quantity":1},
		{"product":{"id":"2","price":"5"},"quantity":2}
	]}`

	c := New()
	require.NoError(t, json.Unmarshal([]byte(raw), c))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}
