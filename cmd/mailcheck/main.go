// cmd/mailcheck/main.go
package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/verve-shop/storefront/internal/config"
	"github.com/verve-shop/storefront/internal/domain/cart"
	"github.com/verve-shop/storefront/internal/domain/catalog"
	"github.com/verve-shop/storefront/internal/domain/checkout"
	"github.com/verve-shop/storefront/internal/domain/pricing"
	"github.com/verve-shop/storefront/internal/pkg/email"
	"github.com/verve-shop/storefront/internal/pkg/logger"
)

// Sends a sample order confirmation through the configured email provider
func main() {
	to := flag.String("to", "", "recipient address")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	log := logger.Component(logger.New(cfg), "mailcheck")

	if *to == "" {
		log.Fatal("Usage: go run ./cmd/mailcheck -to you@example.com")
	}

	emailService, err := email.NewEmailService(cfg, log)
	if err != nil {
		log.Fatalf("Failed to configure email: %v", err)
	}

	products := catalog.SampleProducts()
	c := cart.New()
	c.AddItem(products[0], 1, "", "")
	c.AddItem(products[3], 1, products[3].DefaultColor(), "")

	confirmation := &checkout.Confirmation{
		Reference: "ORD-TEST0001",
		PlacedAt:  time.Now().UTC(),
		Email:     *to,
		ShipTo: checkout.ShippingForm{
			FirstName: "Test", LastName: "Shopper", Address: "1 Sample Street",
			City: "Portland", State: "OR", Zip: "97201", Country: "United States",
		},
		Payment:   checkout.PaymentSummary{Last4: "4242", NameOnCard: "Test Shopper"},
		Lines:     c.Lines(),
		ItemCount: c.TotalItems(),
		Quote:     pricing.Calculate(c.Subtotal()),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := emailService.SendOrderConfirmation(ctx, confirmation); err != nil {
		log.Fatalf("Failed to send email: %v", err)
	}
	log.WithField("provider", cfg.Email.Provider).Info("✅ Test email sent")
}
