package pgsql

import (
	portsrepo "github.com/Yeldokv/Finora/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	customerRepo := newPgxCustomerRepository(dbPool)
	vendorRepo := newPgxVendorRepository(dbPool)
	itemRepo := newPgxItemRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool, itemRepo)
	purchaseRepo := newPgxPurchaseRepository(dbPool, itemRepo)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	financialYearRepo := newPgxFinancialYearRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CustomerRepo:      customerRepo,
		VendorRepo:        vendorRepo,
		ItemRepo:          itemRepo,
		InvoiceRepo:       invoiceRepo,
		PurchaseRepo:      purchaseRepo,
		LedgerRepo:        ledgerRepo,
		FinancialYearRepo: financialYearRepo,
		ReportingRepo:     reportingRepo,
	}
}
