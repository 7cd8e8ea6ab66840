// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/verve-shop/storefront/internal/config"
	"github.com/verve-shop/storefront/internal/domain/checkout"
)

// EmailService renders and delivers transactional email
type EmailService struct {
	config    config.EmailConfig
	templates map[EmailType]*template.Template
	logger    *logrus.Entry
	send      func(ctx context.Context, email *Email) error
}

// NewEmailService creates a new email service for the configured provider
func NewEmailService(cfg *config.Config, logger *logrus.Entry) (*EmailService, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	service := &EmailService{
		config:    cfg.Email,
		templates: templates,
		logger:    logger.WithField("component", "email"),
	}

	switch cfg.Email.Provider {
	case config.EmailProviderLog:
		service.send = service.sendLogEmail
	case config.EmailProviderSMTP:
		service.send = service.sendSMTPEmail
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", cfg.Email.Provider)
	}

	return service, nil
}

// SendEmail sends an email using the configured provider
func (s *EmailService) SendEmail(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}
	return s.send(ctx, email)
}

// SendOrderConfirmation renders and sends the order confirmation for a
// placed order
func (s *EmailService) SendOrderConfirmation(ctx context.Context, c *checkout.Confirmation) error {
	data := s.orderConfirmationData(c)

	htmlContent, err := s.renderTemplate(EmailTypeOrderConfirmation, data)
	if err != nil {
		return fmt.Errorf("failed to render order confirmation template: %w", err)
	}

	email := &Email{
		To:          []string{c.Email},
		Subject:     fmt.Sprintf("Your %s order %s is confirmed", s.config.FromName, c.Reference),
		HTMLContent: htmlContent,
		Type:        EmailTypeOrderConfirmation,
		Data: map[string]interface{}{
			"order_number": c.Reference,
			"total":        data.Total,
		},
	}

	return s.SendEmail(ctx, email)
}

func (s *EmailService) orderConfirmationData(c *checkout.Confirmation) OrderConfirmationData {
	items := make([]OrderItem, len(c.Lines))
	for i, l := range c.Lines {
		var options []string
		if l.Color != "" {
			options = append(options, l.Color)
		}
		if l.Size != "" {
			options = append(options, l.Size)
		}
		items[i] = OrderItem{
			Name:     l.Product.Name,
			Options:  strings.Join(options, " / "),
			Quantity: l.Quantity,
			Price:    l.Product.Price.StringFixed(2),
			Total:    l.Total().StringFixed(2),
		}
	}

	return OrderConfirmationData{
		EmailTemplateData: GetBaseTemplateData(s.config.FromName, s.config.BaseURL, c.ShipTo.FullName(), c.Email),
		OrderNumber:       c.Reference,
		OrderDate:         c.PlacedAt.Format("January 2, 2006"),
		Items:             items,
		Subtotal:          c.Quote.Subtotal.StringFixed(2),
		Shipping:          c.Quote.Shipping.StringFixed(2),
		Tax:               c.Quote.Tax.StringFixed(2),
		Total:             c.Quote.Total.StringFixed(2),
		PaymentMethod:     fmt.Sprintf("Card ending in %s", c.Payment.Last4),
		ShippingAddress: Address{
			Name:    c.ShipTo.FullName(),
			Street:  c.ShipTo.Address,
			City:    c.ShipTo.City,
			State:   c.ShipTo.State,
			Zip:     c.ShipTo.Zip,
			Country: c.ShipTo.Country,
		},
	}
}

// renderTemplate renders an email template with data
func (s *EmailService) renderTemplate(emailType EmailType, data interface{}) (string, error) {
	tmpl, exists := s.templates[emailType]
	if !exists {
		return "", fmt.Errorf("template %s not found", emailType)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", emailType, err)
	}

	return buf.String(), nil
}

// sendLogEmail writes the email to the log instead of delivering it
func (s *EmailService) sendLogEmail(_ context.Context, email *Email) error {
	s.logger.WithFields(logrus.Fields{
		"to":      strings.Join(email.To, ", "),
		"subject": email.Subject,
		"type":    email.Type,
		"bytes":   len(email.HTMLContent),
	}).Info("📧 Email (log provider)")
	return nil
}
