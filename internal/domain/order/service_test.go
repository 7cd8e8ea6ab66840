package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderIDs(views []OrderView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.ID
	}
	return out
}

func TestSampleOrders(t *testing.T) {
	orders := SampleOrders()
	require.Len(t, orders, 4)

	totals := map[string]string{}
	for _, o := range orders {
		assert.True(t, o.Status.Valid(), o.ID)
		totals[o.ID] = o.Total.StringFixed(2)
	}
	assert.Equal(t, map[string]string{
		"ORD-2024-001": "86.66",
		"ORD-2025-002": "111.49",
		"ORD-2025-003": "125.25",
		"ORD-2024-000": "69.38",
	}, totals)
}

func TestService_Dashboard(t *testing.T) {
	svc := NewService(NewSampleRepository())

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, d.TotalOrders)
	assert.Equal(t, "392.78", d.TotalSpent.StringFixed(2))
	assert.Equal(t, 2, d.SavedAddresses)
	assert.Equal(t, []string{"ORD-2025-003", "ORD-2025-002", "ORD-2024-001"}, orderIDs(d.RecentOrders))
}

func TestService_DashboardEmpty(t *testing.T) {
	svc := NewService(NewMemoryRepository(nil, nil))

	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, d.TotalOrders)
	assert.True(t, d.TotalSpent.IsZero())
	assert.Empty(t, d.RecentOrders)
}

func TestService_ListOrders(t *testing.T) {
	svc := NewService(NewSampleRepository())

	views, err := svc.ListOrders(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"ORD-2025-003", "ORD-2025-002", "ORD-2024-001", "ORD-2024-000"}, orderIDs(views))
	for _, v := range views {
		assert.Equal(t, v.Status == OrderStatusDelivered, v.CanBuyAgain, v.ID)
	}
	assert.Equal(t, 3, views[0].ItemCount)
}

func TestService_GetOrder(t *testing.T) {
	svc := NewService(NewSampleRepository())

	v, err := svc.GetOrder(context.Background(), "ORD-2024-001")
	require.NoError(t, err)
	assert.True(t, v.CanBuyAgain)
	require.Len(t, v.Items, 2)
	assert.Equal(t, "Organic Vitamin C Serum", v.Items[0].Product.Name)

	_, err = svc.GetOrder(context.Background(), "ORD-404")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestService_ListAddressesDefaultFirst(t *testing.T) {
	repo := NewMemoryRepository(nil, []Address{
		{ID: "a"},
		{ID: "b", IsDefault: true},
		{ID: "c"},
	})

	addresses, err := NewService(repo).ListAddresses(context.Background())
	require.NoError(t, err)

	ids := []string{addresses[0].ID, addresses[1].ID, addresses[2].ID}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

type failingRepository struct{ *MemoryRepository }

func (failingRepository) Orders(context.Context) ([]Order, error) {
	return nil, errors.New("connection refused")
}

func TestService_DashboardPropagatesErrors(t *testing.T) {
	_, err := NewService(failingRepository{NewMemoryRepository(nil, nil)}).Dashboard(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}

func TestMemoryRepository_SortsByDate(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	repo := NewMemoryRepository([]Order{
		{ID: "old", Date: day(1), Total: decimal.NewFromInt(1)},
		{ID: "new", Date: day(9), Total: decimal.NewFromInt(1)},
		{ID: "mid", Date: day(5), Total: decimal.NewFromInt(1)},
	}, nil)

	orders, err := repo.Orders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new", orders[0].ID)
	assert.Equal(t, "mid", orders[1].ID)
	assert.Equal(t, "old", orders[2].ID)
}
