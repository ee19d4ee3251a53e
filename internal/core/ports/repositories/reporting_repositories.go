package repositories

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
)

// ReportingRepositoryFacade defines aggregate queries for the dashboard.
type ReportingRepositoryFacade interface {
	// GetDashboardStats computes the dashboard aggregates in the database.
	// NetProfit is derived by the service layer.
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
