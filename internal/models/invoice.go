package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice mirrors the invoices table.
type Invoice struct {
	InvoiceID     string
	InvoiceNumber string
	CustomerID    string
	InvoiceDate   time.Time
	DueDate       *time.Time
	Subtotal      decimal.Decimal
	CGSTAmount    decimal.Decimal
	SGSTAmount    decimal.Decimal
	IGSTAmount    decimal.Decimal
	TotalAmount   decimal.Decimal
	Status        string
	Notes         string
	CreatedAt     time.Time
}

// InvoiceItem mirrors the invoice_items table.
type InvoiceItem struct {
	InvoiceItemID string
	InvoiceID     string
	ItemID        string
	Quantity      decimal.Decimal
	Rate          decimal.Decimal
	TaxRate       decimal.Decimal
	Amount        decimal.Decimal
}
