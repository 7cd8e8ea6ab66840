// internal/interfaces/http/handlers/invoice.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verve-shop/storefront/internal/domain/order"
	"github.com/verve-shop/storefront/internal/pkg/pdf"
)

// InvoiceHandler serves order invoices
type InvoiceHandler struct {
	orderService *order.Service
	pdfService   *pdf.Service
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(orderService *order.Service, pdfService *pdf.Service) *InvoiceHandler {
	return &InvoiceHandler{
		orderService: orderService,
		pdfService:   pdfService,
	}
}

// GenerateInvoice handles GET /account/orders/:id/invoice.
// ?format=html returns the page the PDF is rendered from.
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.orderService.GetOrder(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	addresses, err := h.orderService.ListAddresses(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	var billTo *order.Address
	if len(addresses) > 0 {
		billTo = &addresses[0]
	}

	if c.Query("format") == "html" {
		html, err := h.pdfService.RenderInvoiceHTML(&o.Order, billTo)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		return
	}

	buf, err := h.pdfService.GenerateInvoice(&o.Order, billTo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, o.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
