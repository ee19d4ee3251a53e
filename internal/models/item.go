package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item mirrors the items table.
// Stock columns are NUMERIC; quantities can be fractional (e.g. KG).
type Item struct {
	ItemID       string
	Name         string
	HSN          string
	Unit         string
	Rate         decimal.Decimal
	TaxRate      decimal.Decimal
	OpeningStock decimal.Decimal
	CurrentStock decimal.Decimal
	MinimumStock decimal.Decimal
	CreatedAt    time.Time
}
