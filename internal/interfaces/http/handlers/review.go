// internal/interfaces/http/handlers/review.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verve-shop/storefront/internal/domain/catalog"
)

// ReviewHandler handles product review endpoints
type ReviewHandler struct {
	catalogService *catalog.Service
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(catalogService *catalog.Service) *ReviewHandler {
	return &ReviewHandler{
		catalogService: catalogService,
	}
}

// GetProductReviews handles GET /products/:id/reviews
func (h *ReviewHandler) GetProductReviews(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("id")

	product, err := h.catalogService.GetProduct(ctx, productID)
	if err != nil {
		respondError(c, err)
		return
	}

	reviews, err := h.catalogService.Reviews(ctx, productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reviews retrieved successfully",
		"data": gin.H{
			"product_id":   product.ID,
			"rating":       product.Rating,
			"review_count": product.ReviewCount,
			"reviews":      reviews,
		},
	})
}
