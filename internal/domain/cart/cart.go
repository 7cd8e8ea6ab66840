// internal/domain/cart/cart.go
package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"github.com/verve-shop/storefront/internal/domain/catalog"
)

// Cart is an ordered collection of lines. Lines keep insertion order, no
// two lines share a Key, and every quantity is positive. Operations on ids
// that are not in the cart are no-ops.
type Cart struct {
	lines []Line
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// AddItem increments the matching line or appends a new one. Stock is not
// checked here.
func (c *Cart) AddItem(product catalog.Product, quantity int, color, size string) {
	if quantity < 1 {
		quantity = 1
	}

	key := Key{ProductID: product.ID, Color: color, Size: size}
	for i := range c.lines {
		if c.lines[i].Key() == key {
			c.lines[i].Quantity += quantity
			return
		}
	}

	c.lines = append(c.lines, Line{
		Product:  product,
		Quantity: quantity,
		Color:    color,
		Size:     size,
	})
}

// UpdateQuantity sets the quantity of the first line for the product, or
// removes that line when quantity is zero or negative. Color and size are
// not considered.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	c.lines[i].Quantity = quantity
}

// RemoveItem removes every line for the product
func (c *Cart) RemoveItem(productID string) {
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.Product.ID != productID {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines in insertion order
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line returns the first line for the product
func (c *Cart) Line(productID string) (Line, bool) {
	i := c.indexOf(productID)
	if i < 0 {
		return Line{}, false
	}
	return c.lines[i], true
}

// Len returns the number of distinct lines
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Subtotal sums price * quantity across all lines
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Total())
	}
	return total
}

// TotalItems sums quantities across all lines
func (c *Cart) TotalItems() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) indexOf(productID string) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

type cartJSON struct {
	Lines []Line `json:"lines"`
}

// MarshalJSON encodes the lines for session storage
func (c *Cart) MarshalJSON() ([]byte, error) {
	lines := c.lines
	if lines == nil {
		lines = []Line{}
	}
	return json.Marshal(cartJSON{Lines: lines})
}

// UnmarshalJSON restores a cart, re-adding lines so that the invariants hold
// even for hand-edited data
func (c *Cart) UnmarshalJSON(data []byte) error {
	var raw cartJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.lines = nil
	for _, l := range raw.Lines {
		if l.Quantity <= 0 {
			continue
		}
		c.AddItem(l.Product, l.Quantity, l.Color, l.Size)
	}
	return nil
}
