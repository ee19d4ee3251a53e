package mapping

import (
	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/Yeldokv/Finora/internal/models"
)

// ToModelLedgerEntry converts a domain.LedgerEntry to its database model.
func ToModelLedgerEntry(e domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:       e.EntryID,
		EntryDate:     e.EntryDate,
		Description:   e.Description,
		DebitAccount:  e.DebitAccount,
		CreditAccount: e.CreditAccount,
		Amount:        e.Amount,
		ReferenceType: string(e.ReferenceType),
		ReferenceID:   e.ReferenceID,
		CreatedAt:     e.CreatedAt,
	}
}

// ToDomainLedgerEntry converts a database model to a domain.LedgerEntry.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:       m.EntryID,
		EntryDate:     m.EntryDate,
		Description:   m.Description,
		DebitAccount:  m.DebitAccount,
		CreditAccount: m.CreditAccount,
		Amount:        m.Amount,
		ReferenceType: domain.LedgerReferenceType(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		CreatedAt:     m.CreatedAt,
	}
}
