// internal/interfaces/http/handlers/user_address.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verve-shop/storefront/internal/domain/order"
)

// AddressHandler handles saved address endpoints
type AddressHandler struct {
	orderService *order.Service
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(orderService *order.Service) *AddressHandler {
	return &AddressHandler{
		orderService: orderService,
	}
}

// GetAddresses handles GET /account/addresses
func (h *AddressHandler) GetAddresses(c *gin.Context) {
	addresses, err := h.orderService.ListAddresses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Addresses retrieved successfully",
		"data":    addresses,
	})
}
