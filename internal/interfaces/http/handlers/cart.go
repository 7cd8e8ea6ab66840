// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verve-shop/storefront/internal/domain/cart"
	"github.com/verve-shop/storefront/internal/domain/session"
	"github.com/verve-shop/storefront/internal/domain/storefront"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	sessions    *Sessions
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, sessions *Sessions) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		sessions:    sessions,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sess, err := h.sessions.Load(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    storefront.NewCartView(sess.Cart),
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	sess, err := h.sessions.Load(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": sess.Cart.TotalItems(),
		},
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sess, err := h.sessions.Update(c, func(s *session.Session) error {
		_, err := h.cartService.AddItem(c.Request.Context(), s.Cart, &req)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    storefront.NewCartView(sess.Cart),
	})
}

// UpdateCartItem handles PUT /cart/items/:product_id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req cart.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	productID := c.Param("product_id")
	sess, err := h.sessions.Update(c, func(s *session.Session) error {
		return h.cartService.UpdateQuantity(c.Request.Context(), s.Cart, productID, &req)
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    storefront.NewCartView(sess.Cart),
	})
}

// RemoveFromCart handles DELETE /cart/items/:product_id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID := c.Param("product_id")

	sess, err := h.sessions.Update(c, func(s *session.Session) error {
		s.Cart.RemoveItem(productID)
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    storefront.NewCartView(sess.Cart),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sess, err := h.sessions.Update(c, func(s *session.Session) error {
		s.Cart.Clear()
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    storefront.NewCartView(sess.Cart),
	})
}
