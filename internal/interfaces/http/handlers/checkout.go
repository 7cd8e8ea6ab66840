// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verve-shop/storefront/internal/domain/checkout"
	"github.com/verve-shop/storefront/internal/domain/session"
	"github.com/verve-shop/storefront/internal/domain/storefront"
)

// CheckoutHandler handles the multi-step checkout
type CheckoutHandler struct {
	checkoutService *checkout.Service
	sessions        *Sessions
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, sessions *Sessions) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		sessions:        sessions,
	}
}

// GetCheckout handles GET /checkout
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	sess, err := h.sessions.Load(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout retrieved successfully",
		"data":    storefront.NewCheckoutView(sess.Checkout, sess.Cart),
	})
}

// SubmitContact handles POST /checkout/contact
func (h *CheckoutHandler) SubmitContact(c *gin.Context) {
	var form checkout.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindError(c, err)
		return
	}

	h.advance(c, "Contact details saved", func(p *checkout.Progress) error {
		return p.SubmitContact(form)
	})
}

// SubmitShipping handles POST /checkout/shipping
func (h *CheckoutHandler) SubmitShipping(c *gin.Context) {
	var form checkout.ShippingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindError(c, err)
		return
	}

	h.advance(c, "Shipping address saved", func(p *checkout.Progress) error {
		return p.SubmitShipping(form)
	})
}

// SubmitPayment handles POST /checkout/payment
func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	var form checkout.PaymentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindError(c, err)
		return
	}

	h.advance(c, "Payment details saved", func(p *checkout.Progress) error {
		return p.SubmitPayment(form)
	})
}

// Back handles POST /checkout/back
func (h *CheckoutHandler) Back(c *gin.Context) {
	h.advance(c, "Returned to previous step", func(p *checkout.Progress) error {
		p.Back()
		return nil
	})
}

// PlaceOrder handles POST /checkout/place-order
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var confirmation *checkout.Confirmation
	_, err := h.sessions.Update(c, func(s *session.Session) error {
		var err error
		confirmation, err = h.checkoutService.PlaceOrder(c.Request.Context(), s.Cart, &s.Checkout, s.Nav)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    confirmation,
	})
}

func (h *CheckoutHandler) advance(c *gin.Context, message string, fn func(*checkout.Progress) error) {
	sess, err := h.sessions.Update(c, func(s *session.Session) error {
		return fn(&s.Checkout)
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    storefront.NewCheckoutView(sess.Checkout, sess.Cart),
	})
}
