// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/verve-shop/storefront/internal/config"
	"github.com/verve-shop/storefront/internal/domain/order"
	"github.com/verve-shop/storefront/internal/domain/pricing"
)

// ErrGeneratorUnavailable means the wkhtmltopdf binary could not be found
var ErrGeneratorUnavailable = errors.New("pdf generator unavailable")

// Service handles PDF generation
type Service struct {
	company   CompanyInfo
	templates *template.Template
	logger    *logrus.Entry
}

// NewService creates a new PDF service
func NewService(cfg *config.Config, logger *logrus.Entry) *Service {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{
		company: CompanyInfo{
			Name:    cfg.Email.FromName,
			Email:   cfg.Email.FromEmail,
			Website: cfg.Email.BaseURL,
		},
		templates: template.Must(template.New("invoice").Parse(invoiceTemplate)),
		logger:    logger.WithField("component", "pdf"),
	}
}

// InvoiceData represents the data passed to the invoice template
type InvoiceData struct {
	InvoiceNumber string
	InvoiceDate   string
	Order         *order.Order
	BillTo        *order.Address
	Lines         []InvoiceLine
	Subtotal      string
	Shipping      string
	Tax           string
	Total         string
	Company       CompanyInfo
}

// InvoiceLine is one rendered order line
type InvoiceLine struct {
	Name     string
	Options  string
	SKU      string
	Quantity int
	Price    string
	Total    string
}

// CompanyInfo represents company information
type CompanyInfo struct {
	Name    string
	Email   string
	Website string
}

// invoiceData prices the order lines with the cart's pricing rules. Each
// breakdown field is rounded on its own, so the rounded parts can differ
// from the stored total by a cent.
func (s *Service) invoiceData(o *order.Order, billTo *order.Address) InvoiceData {
	subtotal := decimal.Zero
	lines := make([]InvoiceLine, len(o.Items))
	for i, item := range o.Items {
		subtotal = subtotal.Add(item.Total())

		var options []byte
		for _, opt := range []string{item.Color, item.Size} {
			if opt == "" {
				continue
			}
			if len(options) > 0 {
				options = append(options, " / "...)
			}
			options = append(options, opt...)
		}

		lines[i] = InvoiceLine{
			Name:     item.Product.Name,
			Options:  string(options),
			SKU:      item.Product.SKU,
			Quantity: item.Quantity,
			Price:    item.Product.Price.StringFixed(2),
			Total:    item.Total().StringFixed(2),
		}
	}
	quote := pricing.Calculate(subtotal)

	return InvoiceData{
		InvoiceNumber: "INV-" + o.ID,
		InvoiceDate:   o.Date.Format("January 2, 2006"),
		Order:         o,
		BillTo:        billTo,
		Lines:         lines,
		Subtotal:      quote.Subtotal.StringFixed(2),
		Shipping:      quote.Shipping.StringFixed(2),
		Tax:           quote.Tax.StringFixed(2),
		Total:         o.Total.StringFixed(2),
		Company:       s.company,
	}
}

// RenderInvoiceHTML renders the invoice page. billTo may be nil.
func (s *Service) RenderInvoiceHTML(o *order.Order, billTo *order.Address) (string, error) {
	var buf bytes.Buffer
	if err := s.templates.Execute(&buf, s.invoiceData(o, billTo)); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// GenerateInvoice generates a PDF invoice for an order
func (s *Service) GenerateInvoice(o *order.Order, billTo *order.Address) (*bytes.Buffer, error) {
	htmlContent, err := s.RenderInvoiceHTML(o, billTo)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	// Convert HTML to PDF
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneratorUnavailable, err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"order_id": o.ID,
		"bytes":    len(pdfg.Bytes()),
	}).Info("📄 Invoice generated")

	return bytes.NewBuffer(pdfg.Bytes()), nil
}
