package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verve-shop/storefront/internal/config"
	"github.com/verve-shop/storefront/internal/domain/order"
	"github.com/verve-shop/storefront/internal/domain/pricing"
)

func sampleOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	for _, o := range order.SampleOrders() {
		if o.ID == id {
			return &o
		}
	}
	t.Fatalf("no sample order %s", id)
	return nil
}

func newTestService() *Service {
	return NewService(&config.Config{Email: config.EmailConfig{
		FromName:  "VERVE",
		FromEmail: "orders@verve.shop",
		BaseURL:   "https://verve.shop",
	}}, nil)
}

func TestRenderInvoiceHTML(t *testing.T) {
	o := sampleOrder(t, "ORD-2025-002")
	home := order.SampleAddresses()[0]

	html, err := newTestService().RenderInvoiceHTML(o, &home)
	require.NoError(t, err)

	assert.Contains(t, html, "INV-ORD-2025-002")
	assert.Contains(t, html, "January 8, 2025")
	assert.Contains(t, html, "Bamboo Yoga Mat</strong><br><small>Sage</small>")
	assert.Contains(t, html, "$25.98")
	assert.Contains(t, html, "Subtotal:</td><td class=\"num\">$93.98")
	assert.Contains(t, html, "Total:</td><td class=\"num\">$111.49")
	assert.Contains(t, html, home.Street)
	assert.Contains(t, html, "the total is computed before rounding")
}

func TestInvoiceData_BreakdownMatchesTotal(t *testing.T) {
	svc := newTestService()

	for _, o := range order.SampleOrders() {
		data := svc.invoiceData(&o, nil)
		require.Len(t, data.Lines, len(o.Items))

		subtotal := decimal.RequireFromString(data.Subtotal)
		assert.Equal(t, o.Total.StringFixed(2), pricing.Calculate(subtotal).Total.StringFixed(2), o.ID)
	}
}

func TestInvoiceData_Options(t *testing.T) {
	data := newTestService().invoiceData(sampleOrder(t, "ORD-2025-003"), nil)

	require.Len(t, data.Lines, 2)
	assert.Equal(t, "1kg", data.Lines[0].Options)
	assert.Equal(t, "20 bags", data.Lines[1].Options)
}
