package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry mirrors the ledger_entries table.
type LedgerEntry struct {
	EntryID       string
	EntryDate     time.Time
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
	ReferenceType string
	ReferenceID   string
	CreatedAt     time.Time
}
