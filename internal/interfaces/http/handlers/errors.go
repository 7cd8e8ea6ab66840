// internal/interfaces/http/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verve-shop/storefront/internal/domain/cart"
	"github.com/verve-shop/storefront/internal/domain/catalog"
	"github.com/verve-shop/storefront/internal/domain/checkout"
	"github.com/verve-shop/storefront/internal/domain/navigation"
	"github.com/verve-shop/storefront/internal/domain/order"
	"github.com/verve-shop/storefront/internal/pkg/auth"
	"github.com/verve-shop/storefront/internal/pkg/pdf"
)

// errorResponse maps a domain error to a status and user-facing message
func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"
	case errors.Is(err, order.ErrAddressNotFound):
		return http.StatusNotFound, "Address not found"

	case errors.Is(err, cart.ErrOutOfStock):
		return http.StatusConflict, "This item is out of stock"
	case errors.Is(err, cart.ErrExceedsStock):
		return http.StatusConflict, "Requested quantity exceeds available stock"
	case errors.Is(err, cart.ErrInvalidOption):
		return http.StatusBadRequest, "Invalid product option"
	case errors.Is(err, cart.ErrNoQuantity):
		return http.StatusBadRequest, "Quantity is required"

	case errors.Is(err, checkout.ErrInvalidForm):
		return http.StatusBadRequest, "Invalid checkout details"
	case errors.Is(err, checkout.ErrStepNotReached):
		return http.StatusConflict, "Complete the previous checkout steps first"
	case errors.Is(err, checkout.ErrEmptyCart):
		return http.StatusConflict, "Your cart is empty"
	case errors.Is(err, checkout.ErrIncompleteCheckout):
		return http.StatusConflict, "Checkout is not complete"

	case errors.Is(err, navigation.ErrUnknownAction):
		return http.StatusBadRequest, "Unknown action"
	case errors.Is(err, navigation.ErrUnknownPage):
		return http.StatusBadRequest, "Unknown page"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, auth.ErrAdminLoginDisabled):
		return http.StatusForbidden, "Admin login is not configured"

	case errors.Is(err, pdf.ErrGeneratorUnavailable):
		return http.StatusServiceUnavailable, "Invoice generation is unavailable, try ?format=html"
	}
	return http.StatusInternalServerError, "Internal server error"
}

// respondError writes the error response. Server errors carry no details.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	status, message := errorResponse(err)
	if status >= http.StatusInternalServerError {
		c.JSON(status, gin.H{
			"error": message,
		})
		return
	}

	c.JSON(status, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}

// respondBindError reports a malformed request body or query
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request data",
		"details": err.Error(),
	})
}
