package services

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/Yeldokv/Finora/internal/dto"
)

// PurchaseSvcFacade defines the business operations for purchases.
type PurchaseSvcFacade interface {
	// CreatePurchase computes totals for the request lines, increases stock
	// for each referenced item and persists everything atomically.
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error)

	// GetPurchaseByID retrieves a purchase with its lines.
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchases retrieves all purchase headers, newest first.
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)

	// UpdatePurchase applies mutable header fields (notes).
	UpdatePurchase(ctx context.Context, purchaseID string, req dto.UpdatePurchaseRequest) (*domain.Purchase, error)

	// DeletePurchase removes a purchase and reverses the stock its lines
	// added. Only the most recently created purchase can be deleted.
	DeletePurchase(ctx context.Context, purchaseID string) error

	// NextPurchaseNumber returns the next sequential purchase number,
	// e.g. PUR-2025-004.
	NextPurchaseNumber(ctx context.Context) (string, error)
}
