package services

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/Yeldokv/Finora/internal/dto"
)

// LedgerSvcFacade defines the business operations for the manual ledger.
type LedgerSvcFacade interface {
	// CreateLedgerEntry appends a new ledger entry. The amount must be
	// strictly positive.
	CreateLedgerEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error)

	// ListLedgerEntries retrieves all ledger entries, newest first.
	ListLedgerEntries(ctx context.Context) ([]domain.LedgerEntry, error)
}
