// internal/infrastructure/database/postgres/order_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/verve-shop/storefront/internal/domain/order"
	"gorm.io/gorm"
)

// OrderRepository reads order history and saved addresses
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Orders returns all orders, most recent first
func (r *OrderRepository) Orders(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := r.db.WithContext(ctx).Order("date DESC, id ASC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) Order(ctx context.Context, id string) (*order.Order, error) {
	var o order.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, order.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order %s: %w", id, err)
	}
	return &o, nil
}

func (r *OrderRepository) Addresses(ctx context.Context) ([]order.Address, error) {
	var addresses []order.Address
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to load addresses: %w", err)
	}
	return addresses, nil
}
