package repositories

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceReader defines read operations for invoices.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice header by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceItems retrieves all lines of an invoice.
	FindInvoiceItems(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error)

	// ListInvoices retrieves all invoice headers, newest first.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// FindLatestInvoice retrieves the most recently created invoice,
	// ordered by created_at with invoice_id as tie-break.
	FindLatestInvoice(ctx context.Context) (*domain.Invoice, error)

	// CountInvoices returns the number of existing invoices.
	CountInvoices(ctx context.Context) (int64, error)
}

// InvoiceWriter defines write operations for invoices.
type InvoiceWriter interface {
	// SaveInvoice persists the invoice header, its lines and the per-item
	// stock deltas in a single database transaction.
	SaveInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceItem, stockDeltas map[string]decimal.Decimal) error

	// UpdateInvoice updates mutable header fields (status, notes, due date).
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice reverses the stock deltas and removes the invoice and its
	// lines in a single transaction. It re-verifies inside the transaction
	// that the invoice is still the most recently created one and returns
	// ErrConflict otherwise.
	DeleteInvoice(ctx context.Context, invoiceID string, stockDeltas map[string]decimal.Decimal) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
