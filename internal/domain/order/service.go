// internal/domain/order/service.go
package order

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// RecentOrdersLimit is the number of orders shown on the dashboard
const RecentOrdersLimit = 3

// Service handles account business logic
type Service struct {
	repo Repository
}

// NewService creates a new order service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Dashboard summarizes the order history and saved addresses
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	orders, err := s.repo.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	addresses, err := s.repo.Addresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load addresses: %w", err)
	}

	spent := decimal.Zero
	for _, o := range orders {
		spent = spent.Add(o.Total)
	}

	recent := make([]OrderView, 0, RecentOrdersLimit)
	for _, o := range orders[:min(len(orders), RecentOrdersLimit)] {
		recent = append(recent, NewOrderView(o))
	}

	return &Dashboard{
		TotalOrders:    len(orders),
		TotalSpent:     spent,
		SavedAddresses: len(addresses),
		RecentOrders:   recent,
	}, nil
}

// ListOrders returns every order, most recent first
func (s *Service) ListOrders(ctx context.Context) ([]OrderView, error) {
	orders, err := s.repo.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	views := make([]OrderView, len(orders))
	for i, o := range orders {
		views[i] = NewOrderView(o)
	}
	return views, nil
}

// GetOrder returns a single order
func (s *Service) GetOrder(ctx context.Context, id string) (*OrderView, error) {
	o, err := s.repo.Order(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", id, err)
	}
	view := NewOrderView(*o)
	return &view, nil
}

// ListAddresses returns saved addresses with the default first
func (s *Service) ListAddresses(ctx context.Context) ([]Address, error) {
	addresses, err := s.repo.Addresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load addresses: %w", err)
	}

	slices.SortStableFunc(addresses, func(a, b Address) int {
		switch {
		case a.IsDefault == b.IsDefault:
			return 0
		case a.IsDefault:
			return -1
		default:
			return 1
		}
	})
	return addresses, nil
}
