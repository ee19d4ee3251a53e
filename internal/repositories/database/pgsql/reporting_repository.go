package pgsql

import (
	"context"

	"github.com/Yeldokv/Finora/internal/apperrors"
	"github.com/Yeldokv/Finora/internal/core/domain"
	portsrepo "github.com/Yeldokv/Finora/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for dashboard aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// GetDashboardStats gathers every aggregate in a single round trip. Sums are
// coalesced to zero so an empty database still yields usable figures.
func (r *PgxReportingRepository) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(total_amount) FROM invoices WHERE status = 'PAID'), 0)    AS total_sales,
			COALESCE((SELECT SUM(total_amount) FROM invoices WHERE status = 'PENDING'), 0) AS outstanding,
			COALESCE((SELECT SUM(total_amount) FROM purchases), 0)                         AS total_purchases,
			(SELECT COUNT(*) FROM invoices WHERE status = 'PENDING')                       AS pending_invoices,
			(SELECT COUNT(*) FROM items WHERE current_stock <= minimum_stock)              AS low_stock_items;
	`
	var stats domain.DashboardStats
	err := r.Pool.QueryRow(ctx, query).Scan(
		&stats.TotalSales,
		&stats.Outstanding,
		&stats.TotalPurchases,
		&stats.PendingInvoicesCount,
		&stats.LowStockItemsCount,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to compute dashboard stats", err)
	}
	return &stats, nil
}
