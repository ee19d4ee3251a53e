package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "PENDING"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// Invoice is a sales document. Totals are computed once at creation and
// never recomputed on read; totalAmount == subtotal + cgst + sgst + igst.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`     // Primary Key (UUID)
	InvoiceNumber string          `json:"invoiceNumber"` // Unique, e.g. INV-2025-004
	CustomerID    string          `json:"customerID"`    // FK -> Customer
	InvoiceDate   time.Time       `json:"invoiceDate"`
	DueDate       *time.Time      `json:"dueDate"` // Nullable
	Subtotal      decimal.Decimal `json:"subtotal"`
	CGSTAmount    decimal.Decimal `json:"cgstAmount"`
	SGSTAmount    decimal.Decimal `json:"sgstAmount"`
	IGSTAmount    decimal.Decimal `json:"igstAmount"` // Reserved for inter-state supply, currently always 0
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        InvoiceStatus   `json:"status"` // Default: PENDING
	Notes         string          `json:"notes"`  // Nullable
	CreatedAt     time.Time       `json:"createdAt"`

	// Items are loaded separately; nil on list/create results.
	Items []InvoiceItem `json:"items,omitempty"`
}

// InvoiceItem is one line of an invoice. Lines cannot outlive their invoice.
type InvoiceItem struct {
	InvoiceItemID string          `json:"invoiceItemID"` // Primary Key (UUID)
	InvoiceID     string          `json:"invoiceID"`     // FK -> Invoice (owner)
	ItemID        string          `json:"itemID"`        // FK -> Item (non-owning reference)
	Quantity      decimal.Decimal `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	Amount        decimal.Decimal `json:"amount"` // Tax-inclusive line amount
}
