package services

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
)

// ReportingSvcFacade defines the dashboard reporting operations.
type ReportingSvcFacade interface {
	// GetDashboardStats returns the dashboard aggregates, including derived
	// net profit.
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
