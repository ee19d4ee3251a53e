package dto

import (
	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse defines the dashboard aggregates returned to the client.
// Monetary fields serialize as decimal strings.
type DashboardStatsResponse struct {
	TotalSales           decimal.Decimal `json:"totalSales"`
	Outstanding          decimal.Decimal `json:"outstanding"`
	TotalPurchases       decimal.Decimal `json:"totalPurchases"`
	NetProfit            decimal.Decimal `json:"netProfit"`
	PendingInvoicesCount int64           `json:"pendingInvoicesCount"`
	LowStockItemsCount   int64           `json:"lowStockItemsCount"`
}

// ToDashboardStatsResponse converts domain.DashboardStats to its DTO.
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalSales:           s.TotalSales,
		Outstanding:          s.Outstanding,
		TotalPurchases:       s.TotalPurchases,
		NetProfit:            s.NetProfit,
		PendingInvoicesCount: s.PendingInvoicesCount,
		LowStockItemsCount:   s.LowStockItemsCount,
	}
}
