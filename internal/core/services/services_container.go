package services

import (
	portsrepo "github.com/Yeldokv/Finora/internal/core/ports/repositories"
	portssvc "github.com/Yeldokv/Finora/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Customer:      NewCustomerService(repos.CustomerRepo),
		Vendor:        NewVendorService(repos.VendorRepo),
		Item:          NewItemService(repos.ItemRepo),
		Invoice:       NewInvoiceService(repos.InvoiceRepo, repos.ItemRepo, repos.CustomerRepo),
		Purchase:      NewPurchaseService(repos.PurchaseRepo, repos.ItemRepo, repos.VendorRepo),
		Ledger:        NewLedgerService(repos.LedgerRepo),
		FinancialYear: NewFinancialYearService(repos.FinancialYearRepo),
		Reporting:     NewReportingService(repos.ReportingRepo),
	}
}
