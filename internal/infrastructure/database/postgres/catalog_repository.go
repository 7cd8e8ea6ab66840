// internal/infrastructure/database/postgres/catalog_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/verve-shop/storefront/internal/domain/catalog"
	"gorm.io/gorm"
)

// CatalogRepository reads products and reviews from the database
type CatalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a catalog repository
func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Products returns the catalog in display order
func (r *CatalogRepository) Products(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Order("position ASC, id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

func (r *CatalogRepository) Product(ctx context.Context, id string) (*catalog.Product, error) {
	var product catalog.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", id, err)
	}
	return &product, nil
}

func (r *CatalogRepository) Reviews(ctx context.Context, productID string) ([]catalog.Review, error) {
	reviews := []catalog.Review{}
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("date DESC, id ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}
	return reviews, nil
}
