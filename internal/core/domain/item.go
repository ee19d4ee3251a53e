package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is an inventory item that document lines reference.
// CurrentStock is only ever mutated by document create/delete (inside the
// same database transaction as the document write) or by a direct item edit.
type Item struct {
	ItemID       string          `json:"itemID"` // Primary Key (UUID)
	Name         string          `json:"name"`
	HSN          string          `json:"hsn"`  // Nullable; tax classification code
	Unit         string          `json:"unit"` // Default: PCS
	Rate         decimal.Decimal `json:"rate"`
	TaxRate      decimal.Decimal `json:"taxRate"` // GST percentage, default 18
	OpeningStock decimal.Decimal `json:"openingStock"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	MinimumStock decimal.Decimal `json:"minimumStock"` // Low-stock alert threshold
	CreatedAt    time.Time       `json:"createdAt"`
}
