package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Yeldokv/Finora/internal/apperrors"
	"github.com/Yeldokv/Finora/internal/core/domain"
	portsrepo "github.com/Yeldokv/Finora/internal/core/ports/repositories"
	portssvc "github.com/Yeldokv/Finora/internal/core/ports/services"
	"github.com/Yeldokv/Finora/internal/dto"
	"github.com/google/uuid"
)

type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates a new manual ledger service instance.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

func (s *ledgerService) CreateLedgerEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: ledger amount must be positive", apperrors.ErrValidation)
	}

	refType := req.ReferenceType
	if refType == "" {
		refType = domain.LedgerRefManual
	}

	entry := domain.LedgerEntry{
		EntryID:       uuid.NewString(),
		EntryDate:     req.EntryDate,
		Description:   req.Description,
		DebitAccount:  req.DebitAccount,
		CreditAccount: req.CreditAccount,
		Amount:        req.Amount,
		ReferenceType: refType,
		ReferenceID:   req.ReferenceID,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.ledgerRepo.SaveLedgerEntry(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *ledgerService) ListLedgerEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	return s.ledgerRepo.ListLedgerEntries(ctx)
}
