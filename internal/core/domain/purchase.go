package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a purchase record. Structurally an invoice without due date
// and status, referencing a vendor instead of a customer; purchase lines
// increase stock where invoice lines decrease it.
type Purchase struct {
	PurchaseID     string          `json:"purchaseID"`     // Primary Key (UUID)
	PurchaseNumber string          `json:"purchaseNumber"` // Unique, e.g. PUR-2025-004
	VendorID       string          `json:"vendorID"`       // FK -> Vendor
	PurchaseDate   time.Time       `json:"purchaseDate"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	CGSTAmount     decimal.Decimal `json:"cgstAmount"`
	SGSTAmount     decimal.Decimal `json:"sgstAmount"`
	IGSTAmount     decimal.Decimal `json:"igstAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Notes          string          `json:"notes"`
	CreatedAt      time.Time       `json:"createdAt"`

	// Items are loaded separately; nil on list/create results.
	Items []PurchaseItem `json:"items,omitempty"`
}

// PurchaseItem is one line of a purchase record.
type PurchaseItem struct {
	PurchaseItemID string          `json:"purchaseItemID"` // Primary Key (UUID)
	PurchaseID     string          `json:"purchaseID"`     // FK -> Purchase (owner)
	ItemID         string          `json:"itemID"`         // FK -> Item
	Quantity       decimal.Decimal `json:"quantity"`
	Rate           decimal.Decimal `json:"rate"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	Amount         decimal.Decimal `json:"amount"`
}
