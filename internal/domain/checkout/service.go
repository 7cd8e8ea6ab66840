// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/verve-shop/storefront/internal/domain/cart"
	"github.com/verve-shop/storefront/internal/domain/navigation"
	"github.com/verve-shop/storefront/internal/domain/pricing"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrIncompleteCheckout = errors.New("checkout is not complete")
)

// Confirmation is returned when an order is placed
type Confirmation struct {
	Reference string         `json:"reference"`
	PlacedAt  time.Time      `json:"placed_at"`
	Email     string         `json:"email"`
	ShipTo    ShippingForm   `json:"ship_to"`
	Payment   PaymentSummary `json:"payment"`
	Lines     []cart.Line    `json:"lines"`
	ItemCount int            `json:"item_count"`
	Quote     pricing.Quote  `json:"quote"`
}

// Notifier delivers order confirmations
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, confirmation *Confirmation) error
}

// Service completes checkouts
type Service struct {
	notifier Notifier
	logger   *logrus.Entry
	now      func() time.Time
}

// NewService creates a new checkout service. notifier may be nil.
func NewService(notifier Notifier, logger *logrus.Entry) *Service {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{
		notifier: notifier,
		logger:   logger.WithField("component", "checkout"),
		now:      time.Now,
	}
}

// PlaceOrder snapshots the cart into a confirmation, then clears the cart,
// resets the checkout and returns the shopper to the home page. Nothing is
// changed when a precondition fails. No order record or payment is created.
func (s *Service) PlaceOrder(ctx context.Context, c *cart.Cart, progress *Progress, nav *navigation.State) (*Confirmation, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if !progress.Ready() {
		return nil, fmt.Errorf("%w: currently at %s", ErrIncompleteCheckout, progress.Current())
	}

	confirmation := &Confirmation{
		Reference: newReference(),
		PlacedAt:  s.now().UTC(),
		Email:     progress.Contact.Email,
		ShipTo:    *progress.Shipping,
		Payment:   *progress.Payment,
		Lines:     c.Lines(),
		ItemCount: c.TotalItems(),
		Quote:     pricing.Calculate(c.Subtotal()),
	}

	c.Clear()
	progress.Reset()
	nav.Dispatch(navigation.SetCartOpen{Open: false})
	nav.Dispatch(navigation.Navigate{Page: navigation.Home{}})

	s.logger.WithFields(logrus.Fields{
		"reference": confirmation.Reference,
		"items":     confirmation.ItemCount,
		"total":     confirmation.Quote.Total.StringFixed(2),
	}).Info("✅ Order placed")

	if s.notifier != nil {
		if err := s.notifier.SendOrderConfirmation(ctx, confirmation); err != nil {
			s.logger.WithError(err).WithField("reference", confirmation.Reference).
				Warn("Failed to send order confirmation")
		}
	}

	return confirmation, nil
}

func newReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(id[:8])
}
