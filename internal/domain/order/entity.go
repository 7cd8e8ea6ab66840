// internal/domain/order/entity.go
package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/verve-shop/storefront/internal/domain/cart"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrAddressNotFound = errors.New("address not found")
)

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known values
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a past purchase. Orders are read-only.
type Order struct {
	ID     string          `gorm:"primaryKey;size:50" json:"id"`
	Date   time.Time       `gorm:"not null;index" json:"date"`
	Status OrderStatus     `gorm:"not null;size:20;default:'pending'" json:"status"`
	Total  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	Items  []cart.Line     `gorm:"serializer:json" json:"items"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// CanBuyAgain reports whether the order's items can be re-added
func (o Order) CanBuyAgain() bool {
	return o.Status == OrderStatusDelivered
}

// ItemCount sums item quantities
func (o Order) ItemCount() int {
	n := 0
	for _, l := range o.Items {
		n += l.Quantity
	}
	return n
}

// Address represents a saved shipping address
type Address struct {
	ID        string `gorm:"primaryKey;size:50" json:"id"`
	Name      string `gorm:"not null;size:100" json:"name"`
	Street    string `gorm:"not null;size:255" json:"street"`
	City      string `gorm:"not null;size:100" json:"city"`
	State     string `gorm:"not null;size:100" json:"state"`
	Zip       string `gorm:"not null;size:20" json:"zip"`
	Country   string `gorm:"not null;size:100" json:"country"`
	Phone     string `gorm:"size:30" json:"phone"`
	IsDefault bool   `gorm:"default:false" json:"is_default"`
}

// TableName specifies the table name for Address
func (Address) TableName() string {
	return "addresses"
}

// OrderView is an order with its derived flags for the account page
type OrderView struct {
	Order
	ItemCount   int  `json:"item_count"`
	CanBuyAgain bool `json:"can_buy_again"`
}

// NewOrderView wraps an order for display
func NewOrderView(o Order) OrderView {
	return OrderView{Order: o, ItemCount: o.ItemCount(), CanBuyAgain: o.CanBuyAgain()}
}

// Dashboard summarizes the account
type Dashboard struct {
	TotalOrders    int             `json:"total_orders"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	SavedAddresses int             `json:"saved_addresses"`
	RecentOrders   []OrderView     `json:"recent_orders"`
}
