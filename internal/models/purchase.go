package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase mirrors the purchases table.
type Purchase struct {
	PurchaseID     string
	PurchaseNumber string
	VendorID       string
	PurchaseDate   time.Time
	Subtotal       decimal.Decimal
	CGSTAmount     decimal.Decimal
	SGSTAmount     decimal.Decimal
	IGSTAmount     decimal.Decimal
	TotalAmount    decimal.Decimal
	Notes          string
	CreatedAt      time.Time
}

// PurchaseItem mirrors the purchase_items table.
type PurchaseItem struct {
	PurchaseItemID string
	PurchaseID     string
	ItemID         string
	Quantity       decimal.Decimal
	Rate           decimal.Decimal
	TaxRate        decimal.Decimal
	Amount         decimal.Decimal
}
