package services

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
	portsrepo "github.com/Yeldokv/Finora/internal/core/ports/repositories"
	portssvc "github.com/Yeldokv/Finora/internal/core/ports/services"
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new dashboard reporting service instance.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

func (s *reportingService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := s.reportingRepo.GetDashboardStats(ctx)
	if err != nil {
		return nil, err
	}

	// Net profit is derived here rather than in SQL so the formula lives in
	// one reviewable place.
	stats.NetProfit = stats.TotalSales.Sub(stats.TotalPurchases)
	return stats, nil
}
