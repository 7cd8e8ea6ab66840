// internal/domain/pricing/pricing.go
package pricing

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

var (
	// FreeShippingThreshold is the subtotal above which shipping is free
	FreeShippingThreshold = decimal.NewFromInt(100)
	// FlatShippingRate applies to subtotals at or below the threshold
	FlatShippingRate = decimal.RequireFromString("9.99")
	// TaxRate is the estimated sales tax applied to the subtotal
	TaxRate = decimal.RequireFromString("0.08")
)

// Quote is the derived price breakdown for a subtotal
type Quote struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Calculate derives shipping, tax and total from a subtotal. Every view
// that shows totals goes through here.
func Calculate(subtotal decimal.Decimal) Quote {
	shipping := FlatShippingRate
	if subtotal.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(TaxRate)

	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// FreeShipping reports whether the quote ships for free
func (q Quote) FreeShipping() bool {
	return q.Shipping.IsZero()
}

// FreeShippingRemaining is how much more must be spent to reach the
// threshold, or zero once the subtotal is at or above it.
func (q Quote) FreeShippingRemaining() decimal.Decimal {
	if q.Subtotal.LessThan(FreeShippingThreshold) {
		return FreeShippingThreshold.Sub(q.Subtotal)
	}
	return decimal.Zero
}

// MarshalJSON renders amounts rounded to cents
func (q Quote) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Subtotal              string `json:"subtotal"`
		Shipping              string `json:"shipping"`
		Tax                   string `json:"tax"`
		Total                 string `json:"total"`
		FreeShipping          bool   `json:"free_shipping"`
		FreeShippingRemaining string `json:"free_shipping_remaining"`
	}{
		Subtotal:              q.Subtotal.StringFixed(2),
		Shipping:              q.Shipping.StringFixed(2),
		Tax:                   q.Tax.StringFixed(2),
		Total:                 q.Total.StringFixed(2),
		FreeShipping:          q.FreeShipping(),
		FreeShippingRemaining: q.FreeShippingRemaining().StringFixed(2),
	})
}
