package services

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/Yeldokv/Finora/internal/dto"
)

// InvoiceSvcFacade defines the business operations for invoices.
type InvoiceSvcFacade interface {
	// CreateInvoice computes totals for the request lines, decreases stock
	// for each referenced item and persists everything atomically. The
	// returned invoice carries its computed lines.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// GetInvoiceByID retrieves an invoice with its lines.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves all invoice headers, newest first.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// UpdateInvoice applies mutable header fields (status, notes, due date).
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice and restores the stock its lines
	// consumed. Only the most recently created invoice can be deleted;
	// deleting any other returns ErrConflict.
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// NextInvoiceNumber returns the next sequential invoice number,
	// e.g. INV-2025-004.
	NextInvoiceNumber(ctx context.Context) (string, error)
}
