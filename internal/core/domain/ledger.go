package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerReferenceType classifies what a ledger entry refers to.
type LedgerReferenceType string

const (
	LedgerRefInvoice  LedgerReferenceType = "INVOICE"
	LedgerRefPurchase LedgerReferenceType = "PURCHASE"
	LedgerRefManual   LedgerReferenceType = "MANUAL"
)

// LedgerEntry is a manual journal line. Append-only; independent of the
// lifecycle of any document it references.
type LedgerEntry struct {
	EntryID       string              `json:"entryID"` // Primary Key (UUID)
	EntryDate     time.Time           `json:"entryDate"`
	Description   string              `json:"description"`
	DebitAccount  string              `json:"debitAccount"`  // Free-text account name
	CreditAccount string              `json:"creditAccount"` // Free-text account name
	Amount        decimal.Decimal     `json:"amount"`
	ReferenceType LedgerReferenceType `json:"referenceType"` // Nullable
	ReferenceID   string              `json:"referenceID"`   // Nullable; weak reference, never enforced
	CreatedAt     time.Time           `json:"createdAt"`
}
