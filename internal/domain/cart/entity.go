// internal/domain/cart/entity.go
package cart

import (
	"github.com/shopspring/decimal"
	"github.com/verve-shop/storefront/internal/domain/catalog"
)

// Key identifies a cart line. The same product with a different color or
// size is a different line.
type Key struct {
	ProductID string `json:"product_id"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

// Line is a product snapshot with the chosen quantity and options.
// Empty Color or Size means no selection.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Color    string          `json:"color,omitempty"`
	Size     string          `json:"size,omitempty"`
}

// Key returns the line identity
func (l Line) Key() Key {
	return Key{ProductID: l.Product.ID, Color: l.Color, Size: l.Size}
}

// Total returns price * quantity for the line
func (l Line) Total() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
