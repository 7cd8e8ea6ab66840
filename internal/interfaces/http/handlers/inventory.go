// internal/interfaces/http/handlers/inventory.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/verve-shop/storefront/internal/domain/catalog"
)

// InventoryHandler handles admin inventory endpoints
type InventoryHandler struct {
	catalogService *catalog.Service
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(catalogService *catalog.Service) *InventoryHandler {
	return &InventoryHandler{
		catalogService: catalogService,
	}
}

// GetInventory handles GET /admin/inventory
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	summary, err := h.catalogService.Inventory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory retrieved successfully",
		"data":    summary,
	})
}
