package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Customer      CustomerSvcFacade
	Vendor        VendorSvcFacade
	Item          ItemSvcFacade
	Invoice       InvoiceSvcFacade
	Purchase      PurchaseSvcFacade
	Ledger        LedgerSvcFacade
	FinancialYear FinancialYearSvcFacade
	Reporting     ReportingSvcFacade
}
