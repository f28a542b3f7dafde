package usecase

import (
	"sort"
	"time"

	"github.com/avelora/storefront-admin-service/internal/model"
	"github.com/avelora/storefront-admin-service/internal/sales/dto"
)

const (
	newCustomerWindow = 30 * 24 * time.Hour
	seriesDays        = 7
	rankingSize       = 3
)

// aggregate reduces a store's order history into the dashboard summary. Pure:
// everything derives from the inputs and the supplied clock reading.
func aggregate(now time.Time, orders []model.Order, lines []dto.OrderLine, categoryNames, productNames []string) *dto.DashboardData {
	data := &dto.DashboardData{
		TotalSales: len(orders),
	}

	for _, o := range orders {
		data.TotalRevenue += o.Total
	}
	if data.TotalSales > 0 {
		data.AvgOrderValue = data.TotalRevenue / float64(data.TotalSales)
	}

	// Distinct customers within the trailing 30 days.
	cutoff := now.Add(-newCustomerWindow)
	customers := map[string]struct{}{}
	for _, o := range orders {
		if !o.CreatedAt.Before(cutoff) {
			customers[o.UserID] = struct{}{}
		}
	}
	data.NewCustomers = len(customers)

	// Daily revenue for the trailing 7 days, keyed by weekday name, oldest first.
	data.SalesData = make([]dto.DailySales, 0, seriesDays)
	for i := 0; i < seriesDays; i++ {
		day := now.AddDate(0, 0, -(seriesDays - 1 - i))
		var total float64
		for _, o := range orders {
			if sameDay(o.CreatedAt, day) {
				total += o.Total
			}
		}
		data.SalesData = append(data.SalesData, dto.DailySales{
			Date:  day.Weekday().String(),
			Total: total,
		})
	}

	// Units sold per category; categories with no sales still appear.
	categoryCounts := map[string]int{}
	for _, l := range lines {
		categoryCounts[l.CategoryName]++
	}
	data.CategorySalesData = make([]dto.CategorySales, 0, len(categoryNames))
	for _, name := range categoryNames {
		data.CategorySalesData = append(data.CategorySalesData, dto.CategorySales{
			Category: name,
			Sales:    categoryCounts[name],
		})
	}

	// Three most recent orders.
	recent := make([]model.Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > rankingSize {
		recent = recent[:rankingSize]
	}
	data.RecentOrders = make([]dto.RecentOrder, 0, len(recent))
	for _, o := range recent {
		data.RecentOrders = append(data.RecentOrders, dto.RecentOrder{
			ID:     o.ID,
			UserID: o.UserID,
			Total:  o.Total,
			Status: o.Status,
			Date:   o.CreatedAt.Format("2006-01-02"),
		})
	}

	// Top products by lifetime order-line count, over the full product list so a
	// store with few sales still gets a ranking.
	productCounts := map[string]int{}
	for _, l := range lines {
		productCounts[l.ProductName]++
	}
	ranked := make([]dto.TopProduct, 0, len(productNames))
	for _, name := range productNames {
		ranked = append(ranked, dto.TopProduct{Name: name, Sold: productCounts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Sold > ranked[j].Sold
	})
	if len(ranked) > rankingSize {
		ranked = ranked[:rankingSize]
	}
	data.TopProducts = ranked

	return data
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
