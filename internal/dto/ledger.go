package dto

import (
	"time"

	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest defines the data needed to append a ledger entry.
type CreateLedgerEntryRequest struct {
	EntryDate     time.Time                  `json:"entryDate" binding:"required"`
	Description   string                     `json:"description" binding:"required"`
	DebitAccount  string                     `json:"debitAccount" binding:"required"`
	CreditAccount string                     `json:"creditAccount" binding:"required"`
	Amount        decimal.Decimal            `json:"amount" binding:"required"`
	ReferenceType domain.LedgerReferenceType `json:"referenceType" binding:"omitempty,oneof=INVOICE PURCHASE MANUAL"`
	ReferenceID   string                     `json:"referenceID"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID       string                     `json:"entryID"`
	EntryDate     time.Time                  `json:"entryDate"`
	Description   string                     `json:"description"`
	DebitAccount  string                     `json:"debitAccount"`
	CreditAccount string                     `json:"creditAccount"`
	Amount        decimal.Decimal            `json:"amount"`
	ReferenceType domain.LedgerReferenceType `json:"referenceType,omitempty"`
	ReferenceID   string                     `json:"referenceID,omitempty"`
	CreatedAt     time.Time                  `json:"createdAt"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:       e.EntryID,
		EntryDate:     e.EntryDate,
		Description:   e.Description,
		DebitAccount:  e.DebitAccount,
		CreditAccount: e.CreditAccount,
		Amount:        e.Amount,
		ReferenceType: e.ReferenceType,
		ReferenceID:   e.ReferenceID,
		CreatedAt:     e.CreatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of domain ledger entries to DTOs.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToLedgerEntryResponse(&e)
	}
	return res
}
