package usecase

import (
	"testing"
	"time"

	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/avelora/storefront-admin-service/internal/sales/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	// Wednesday, fixed so weekday labels are deterministic.
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	orders := []model.Order{
		{ID: "o1", StoreID: "store-1", UserID: "user-a", Total: 100, Status: "PAID", CreatedAt: now},
		{ID: "o2", StoreID: "store-1", UserID: "user-b", Total: 50, Status: "PAID", CreatedAt: now.AddDate(0, 0, -2)},
		{ID: "o3", StoreID: "store-1", UserID: "user-a", Total: 30, Status: "PAID", CreatedAt: now.AddDate(0, 0, -40)},
	}
	lines := []dto.OrderLine{
		{ProductID: "p1", ProductName: "Tee", CategoryName: "Clothing"},
		{ProductID: "p1", ProductName: "Tee", CategoryName: "Clothing"},
		{ProductID: "p2", ProductName: "Cap", CategoryName: "Clothing"},
	}
	categoryNames := []string{"Clothing", "Shoes"}
	productNames := []string{"Tee", "Cap", "Sock", "Hat"}

	data := aggregate(now, orders, lines, categoryNames, productNames)

	assert.Equal(t, 180.0, data.TotalRevenue)
	assert.Equal(t, 3, data.TotalSales)
	assert.Equal(t, 60.0, data.AvgOrderValue)

	// o3 is older than the 30 day window, but user-a still counts through o1.
	assert.Equal(t, 2, data.NewCustomers)

	require.Len(t, data.SalesData, 7)
	assert.Equal(t, "Thursday", data.SalesData[0].Date)
	assert.Equal(t, "Wednesday", data.SalesData[6].Date)
	assert.Equal(t, 100.0, data.SalesData[6].Total)
	assert.Equal(t, "Monday", data.SalesData[4].Date)
	assert.Equal(t, 50.0, data.SalesData[4].Total)
	assert.Equal(t, 0.0, data.SalesData[0].Total)

	// Categories without sales still appear with a zero count.
	require.Len(t, data.CategorySalesData, 2)
	assert.Equal(t, dto.CategorySales{Category: "Clothing", Sales: 3}, data.CategorySalesData[0])
	assert.Equal(t, dto.CategorySales{Category: "Shoes", Sales: 0}, data.CategorySalesData[1])

	require.Len(t, data.RecentOrders, 3)
	assert.Equal(t, "o1", data.RecentOrders[0].ID)
	assert.Equal(t, "o2", data.RecentOrders[1].ID)
	assert.Equal(t, "o3", data.RecentOrders[2].ID)
	assert.Equal(t, "2024-05-15", data.RecentOrders[0].Date)

	// Ranking is capped at three and keeps zero-sale products in catalog order.
	require.Len(t, data.TopProducts, 3)
	assert.Equal(t, dto.TopProduct{Name: "Tee", Sold: 2}, data.TopProducts[0])
	assert.Equal(t, dto.TopProduct{Name: "Cap", Sold: 1}, data.TopProducts[1])
	assert.Equal(t, dto.TopProduct{Name: "Sock", Sold: 0}, data.TopProducts[2])
}

func TestAggregateEmptyStore(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	data := aggregate(now, nil, nil, []string{"Clothing"}, nil)

	assert.Equal(t, 0.0, data.TotalRevenue)
	assert.Equal(t, 0, data.TotalSales)
	assert.Equal(t, 0.0, data.AvgOrderValue)
	assert.Equal(t, 0, data.NewCustomers)
	require.Len(t, data.SalesData, 7)
	require.Len(t, data.CategorySalesData, 1)
	assert.Equal(t, 0, data.CategorySalesData[0].Sales)
	assert.Empty(t, data.RecentOrders)
	assert.Empty(t, data.TopProducts)
}
