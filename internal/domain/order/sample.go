// internal/domain/order/sample.go
package order

import (
	"fmt"
	"time"

	"github.com/verve-shop/storefront/internal/domain/cart"
	"github.com/verve-shop/storefront/internal/domain/catalog"
	"github.com/verve-shop/storefront/internal/domain/pricing"
)

type sampleLine struct {
	productID string
	quantity  int
	color     string
	size      string
}

func sampleOrder(products map[string]catalog.Product, id, date string, status OrderStatus, lines ...sampleLine) Order {
	c := cart.New()
	for _, l := range lines {
		p, ok := products[l.productID]
		if !ok {
			panic(fmt.Sprintf("sample order %s references unknown product %s", id, l.productID))
		}
		c.AddItem(p, l.quantity, l.color, l.size)
	}

	return Order{
		ID:     id,
		Date:   mustDate(date),
		Status: status,
		Total:  pricing.Calculate(c.Subtotal()).Total.Round(2),
		Items:  c.Lines(),
	}
}

func mustDate(date string) time.Time {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleOrders returns the demo order history
func SampleOrders() []Order {
	products := make(map[string]catalog.Product)
	for _, p := range catalog.SampleProducts() {
		products[p.ID] = p
	}

	return []Order{
		sampleOrder(products, "ORD-2024-001", "2024-10-15", OrderStatusDelivered,
			sampleLine{productID: "1", quantity: 1},
			sampleLine{productID: "6", quantity: 2},
		),
		sampleOrder(products, "ORD-2025-002", "2025-01-08", OrderStatusShipped,
			sampleLine{productID: "4", quantity: 1, color: "Sage"},
			sampleLine{productID: "9", quantity: 2},
		),
		sampleOrder(products, "ORD-2025-003", "2025-02-02", OrderStatusPaid,
			sampleLine{productID: "2", quantity: 2, size: "1kg"},
			sampleLine{productID: "12", quantity: 1, size: "20 bags"},
		),
		sampleOrder(products, "ORD-2024-000", "2024-08-21", OrderStatusCancelled,
			sampleLine{productID: "10", quantity: 1, color: "White"},
		),
	}
}

// SampleAddresses returns the demo saved addresses
func SampleAddresses() []Address {
	return []Address{
		{
			ID:        "addr-1",
			Name:      "Home",
			Street:    "482 Willow Lane",
			City:      "Portland",
			State:     "OR",
			Zip:       "97205",
			Country:   "United States",
			Phone:     "(503) 555-0142",
			IsDefault: true,
		},
		{
			ID:      "addr-2",
			Name:    "Office",
			Street:  "1200 Market Street, Suite 400",
			City:    "San Francisco",
			State:   "CA",
			Zip:     "94103",
			Country: "United States",
			Phone:   "(415) 555-0199",
		},
	}
}
