package repositories

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseReader defines read operations for purchases.
type PurchaseReader interface {
	// FindPurchaseByID retrieves a purchase header by its unique identifier.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// FindPurchaseItems retrieves all lines of a purchase.
	FindPurchaseItems(ctx context.Context, purchaseID string) ([]domain.PurchaseItem, error)

	// ListPurchases retrieves all purchase headers, newest first.
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)

	// FindLatestPurchase retrieves the most recently created purchase,
	// ordered by created_at with purchase_id as tie-break.
	FindLatestPurchase(ctx context.Context) (*domain.Purchase, error)

	// CountPurchases returns the number of existing purchases.
	CountPurchases(ctx context.Context) (int64, error)
}

// PurchaseWriter defines write operations for purchases.
type PurchaseWriter interface {
	// SavePurchase persists the purchase header, its lines and the per-item
	// stock deltas in a single database transaction.
	SavePurchase(ctx context.Context, purchase domain.Purchase, lines []domain.PurchaseItem, stockDeltas map[string]decimal.Decimal) error

	// UpdatePurchase updates mutable header fields (notes).
	UpdatePurchase(ctx context.Context, purchase domain.Purchase) error

	// DeletePurchase reverses the stock deltas and removes the purchase and
	// its lines in a single transaction, re-verifying that the purchase is
	// still the most recently created one.
	DeletePurchase(ctx context.Context, purchaseID string, stockDeltas map[string]decimal.Decimal) error
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces.
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
