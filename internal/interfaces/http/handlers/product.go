// internal/interfaces/http/handlers/product.go
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/verve-shop/storefront/internal/domain/catalog"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	catalogService *catalog.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogService *catalog.Service) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

// ListingQuery represents the product listing query parameters
type ListingQuery struct {
	Category   string   `form:"category"`
	Categories []string `form:"categories"`
	Tags       []string `form:"tags"`
	MinPrice   string   `form:"min_price"`
	MaxPrice   string   `form:"max_price"`
	Sort       string   `form:"sort"`
}

// parseListingFilter binds the listing query. List values may be repeated
// or comma-separated.
func parseListingFilter(c *gin.Context) (catalog.Filter, error) {
	var q ListingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return catalog.Filter{}, err
	}

	sort, err := catalog.ParseSortKey(q.Sort)
	if err != nil {
		return catalog.Filter{}, err
	}

	f := catalog.Filter{
		Category:   strings.TrimSpace(q.Category),
		Categories: splitList(q.Categories),
		Tags:       splitList(q.Tags),
		Sort:       sort,
	}

	if f.MinPrice, err = parsePrice("min_price", q.MinPrice); err != nil {
		return catalog.Filter{}, err
	}
	if f.MaxPrice, err = parsePrice("max_price", q.MaxPrice); err != nil {
		return catalog.Filter{}, err
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return catalog.Filter{}, fmt.Errorf("min_price must not exceed max_price")
	}

	return f, nil
}

func parsePrice(name, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("%s must not be negative", name)
	}
	return &d, nil
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	filter, err := parseListingFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"count":    len(products),
			"sort":     filter.Sort,
			"filtered": filter.IsActive(),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// SearchProducts handles GET /search
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")

	results, err := h.catalogService.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Search completed successfully",
		"data": gin.H{
			"query":   query,
			"results": results,
			"count":   len(results),
		},
	})
}
