package domain

import "github.com/shopspring/decimal"

// DashboardStats aggregates the headline figures shown on the dashboard.
type DashboardStats struct {
	TotalSales           decimal.Decimal `json:"totalSales"`  // Sum of PAID invoice totals
	Outstanding          decimal.Decimal `json:"outstanding"` // Sum of PENDING invoice totals
	TotalPurchases       decimal.Decimal `json:"totalPurchases"`
	NetProfit            decimal.Decimal `json:"netProfit"` // totalSales - totalPurchases
	PendingInvoicesCount int64           `json:"pendingInvoicesCount"`
	LowStockItemsCount   int64           `json:"lowStockItemsCount"`
}
