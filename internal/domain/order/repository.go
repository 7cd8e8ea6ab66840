// internal/domain/order/repository.go
package order

import (
	"cmp"
	"context"
	"slices"
)

// Repository is the read-only source of order history
type Repository interface {
	// Orders returns all orders, most recent first
	Orders(ctx context.Context) ([]Order, error)
	Order(ctx context.Context, id string) (*Order, error)
	Addresses(ctx context.Context) ([]Address, error)
}

// MemoryRepository holds a fixed order history
type MemoryRepository struct {
	orders    []Order
	addresses []Address
}

// NewMemoryRepository copies the data and orders it by date
func NewMemoryRepository(orders []Order, addresses []Address) *MemoryRepository {
	repo := &MemoryRepository{
		orders:    slices.Clone(orders),
		addresses: slices.Clone(addresses),
	}
	SortByDate(repo.orders)
	return repo
}

// NewSampleRepository returns the built-in order history
func NewSampleRepository() *MemoryRepository {
	return NewMemoryRepository(SampleOrders(), SampleAddresses())
}

// SortByDate orders most recent first, keeping ties stable
func SortByDate(orders []Order) {
	slices.SortStableFunc(orders, func(a, b Order) int {
		return cmp.Compare(b.Date.UnixNano(), a.Date.UnixNano())
	})
}

func (r *MemoryRepository) Orders(_ context.Context) ([]Order, error) {
	return slices.Clone(r.orders), nil
}

func (r *MemoryRepository) Order(_ context.Context, id string) (*Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *MemoryRepository) Addresses(_ context.Context) ([]Address, error) {
	return slices.Clone(r.addresses), nil
}
