// internal/domain/catalog/entity.go
package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level below which a product shows a "only N left" notice
const LowStockThreshold = 10

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
)

// Color represents a named color variant of a product
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Product represents a catalog product. Products are immutable once loaded.
type Product struct {
	ID             string              `gorm:"primaryKey;size:64" json:"id"`
	Name           string              `gorm:"not null;size:255" json:"name"`
	Description    string              `gorm:"type:text" json:"description"`
	Price          decimal.Decimal     `gorm:"type:numeric(10,2);not null" json:"price"`
	CompareAtPrice decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"compare_at_price"`
	Category       string              `gorm:"not null;size:100;index" json:"category"`
	Rating         float64             `gorm:"not null;default:0" json:"rating"`
	ReviewCount    int                 `gorm:"not null;default:0" json:"review_count"`
	Images         []string            `gorm:"serializer:json" json:"images"`
	Colors         []Color             `gorm:"serializer:json" json:"colors,omitempty"`
	Sizes          []string            `gorm:"serializer:json" json:"sizes,omitempty"`
	Stock          int                 `gorm:"not null;default:0" json:"stock"`
	Tags           []string            `gorm:"serializer:json" json:"tags"`
	SKU            string              `gorm:"uniqueIndex;not null;size:100" json:"sku"`
	Position       int                 `gorm:"not null;default:0;index" json:"-"` // Catalog order
}

// Review represents a customer review of a product
type Review struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	ProductID string    `gorm:"not null;size:64;index" json:"product_id"`
	Author    string    `gorm:"not null;size:255" json:"author"`
	Rating    int       `gorm:"not null" json:"rating"`
	Date      time.Time `json:"date"`
	Verified  bool      `gorm:"default:false" json:"verified"`
	Comment   string    `gorm:"type:text" json:"comment"`
}

// CategorySummary is a category with the number of products in it
type CategorySummary struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// InventorySummary aggregates stock levels across the catalog
type InventorySummary struct {
	TotalProducts int       `json:"total_products"`
	TotalUnits    int       `json:"total_units"`
	LowStock      []Product `json:"low_stock"`
	OutOfStock    []Product `json:"out_of_stock"`
}

// TableName overrides
func (Product) TableName() string { return "products" }
func (Review) TableName() string  { return "product_reviews" }

// Validate checks the product invariants
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidProduct)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: %s has negative price", ErrInvalidProduct, p.ID)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: %s has negative stock", ErrInvalidProduct, p.ID)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("%w: %s rating %.1f out of range", ErrInvalidProduct, p.ID, p.Rating)
	}
	return nil
}

// Business methods for Product

func (p *Product) InStock() bool {
	return p.Stock > 0
}

func (p *Product) LowStock() bool {
	return p.Stock > 0 && p.Stock < LowStockThreshold
}

// DiscountPercent returns the rounded discount against the compare-at price
func (p *Product) DiscountPercent() int {
	if !p.CompareAtPrice.Valid || !p.CompareAtPrice.Decimal.IsPositive() {
		return 0
	}
	compare := p.CompareAtPrice.Decimal
	return int(compare.Sub(p.Price).Div(compare).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

func (p *Product) HasColor(name string) bool {
	for _, c := range p.Colors {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DefaultColor returns the first declared color, if any
func (p *Product) DefaultColor() string {
	if len(p.Colors) == 0 {
		return ""
	}
	return p.Colors[0].Name
}

// DefaultSize returns the first declared size, if any
func (p *Product) DefaultSize() string {
	if len(p.Sizes) == 0 {
		return ""
	}
	return p.Sizes[0]
}
