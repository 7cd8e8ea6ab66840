// internal/interfaces/http/handlers/category.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verve-shop/storefront/internal/domain/catalog"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	catalogService *catalog.Service
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(catalogService *catalog.Service) *CategoryHandler {
	return &CategoryHandler{
		catalogService: catalogService,
	}
}

// GetCategories handles GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}
