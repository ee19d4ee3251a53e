package repositories

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
)

// LedgerRepositoryFacade defines persistence operations for the manual ledger.
// The ledger is append-only; there are no update or delete operations.
type LedgerRepositoryFacade interface {
	// SaveLedgerEntry appends a new ledger entry.
	SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error

	// ListLedgerEntries retrieves all ledger entries, newest first.
	ListLedgerEntries(ctx context.Context) ([]domain.LedgerEntry, error)
}
