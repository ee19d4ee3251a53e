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
	"github.com/Yeldokv/Finora/internal/utils/gst"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type purchaseService struct {
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	itemRepo     portsrepo.ItemReader
	vendorRepo   portsrepo.VendorRepositoryFacade
}

// NewPurchaseService creates a new purchase service instance.
func NewPurchaseService(
	purchaseRepo portsrepo.PurchaseRepositoryFacade,
	itemRepo portsrepo.ItemReader,
	vendorRepo portsrepo.VendorRepositoryFacade,
) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		itemRepo:     itemRepo,
		vendorRepo:   vendorRepo,
	}
}

// CreatePurchase validates the request lines, computes the document totals
// with the same engine invoices use, and persists the purchase together with
// the stock increase of every referenced item in one transaction.
func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.Purchase, error) {
	lineInputs := make([]gst.LineInput, len(req.Items))
	for i, li := range req.Items {
		lineInputs[i] = gst.LineInput{
			ItemID:   li.ItemID,
			Quantity: li.Quantity,
			Rate:     li.Rate,
			TaxRate:  li.TaxRate,
		}
	}

	totals, err := gst.ComputeTotals(lineInputs)
	if err != nil {
		return nil, err
	}

	if err := s.verifyLineItemsExist(ctx, req.Items); err != nil {
		return nil, err
	}

	if _, err := s.vendorRepo.FindVendorByID(ctx, req.VendorID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, fmt.Errorf("%w: vendor %s does not exist", apperrors.ErrValidation, req.VendorID)
		}
		return nil, err
	}

	purchaseNumber := req.PurchaseNumber
	if purchaseNumber == "" {
		purchaseNumber, err = s.NextPurchaseNumber(ctx)
		if err != nil {
			return nil, err
		}
	}

	purchase := domain.Purchase{
		PurchaseID:     uuid.NewString(),
		PurchaseNumber: purchaseNumber,
		VendorID:       req.VendorID,
		PurchaseDate:   req.PurchaseDate,
		Subtotal:       totals.Subtotal,
		CGSTAmount:     totals.CGST,
		SGSTAmount:     totals.SGST,
		IGSTAmount:     totals.IGST,
		TotalAmount:    totals.TotalAmount,
		Notes:          req.Notes,
		CreatedAt:      time.Now().UTC(),
	}

	lines := make([]domain.PurchaseItem, len(req.Items))
	stockDeltas := make(map[string]decimal.Decimal)
	for i, li := range req.Items {
		lines[i] = domain.PurchaseItem{
			PurchaseItemID: uuid.NewString(),
			PurchaseID:     purchase.PurchaseID,
			ItemID:         li.ItemID,
			Quantity:       li.Quantity,
			Rate:           li.Rate,
			TaxRate:        li.TaxRate,
			Amount:         totals.Lines[i].Amount,
		}
		// Purchases replenish stock.
		stockDeltas[li.ItemID] = stockDeltas[li.ItemID].Add(li.Quantity)
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase, lines, stockDeltas); err != nil {
		return nil, err
	}

	purchase.Items = lines
	return &purchase, nil
}

func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	items, err := s.purchaseRepo.FindPurchaseItems(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	purchase.Items = items
	return purchase, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	return s.purchaseRepo.ListPurchases(ctx)
}

func (s *purchaseService) UpdatePurchase(ctx context.Context, purchaseID string, req dto.UpdatePurchaseRequest) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	if req.Notes != nil {
		purchase.Notes = *req.Notes
	}

	if err := s.purchaseRepo.UpdatePurchase(ctx, *purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// DeletePurchase removes a purchase and takes back the stock its lines added.
// Only the most recently created purchase may be deleted.
func (s *purchaseService) DeletePurchase(ctx context.Context, purchaseID string) error {
	if _, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID); err != nil {
		return err
	}

	latest, err := s.purchaseRepo.FindLatestPurchase(ctx)
	if err != nil {
		return err
	}
	if latest.PurchaseID != purchaseID {
		return fmt.Errorf("%w: only the most recently created purchase can be deleted", apperrors.ErrConflict)
	}

	lines, err := s.purchaseRepo.FindPurchaseItems(ctx, purchaseID)
	if err != nil {
		return err
	}

	stockDeltas := make(map[string]decimal.Decimal)
	for _, li := range lines {
		stockDeltas[li.ItemID] = stockDeltas[li.ItemID].Sub(li.Quantity)
	}

	return s.purchaseRepo.DeletePurchase(ctx, purchaseID, stockDeltas)
}

func (s *purchaseService) NextPurchaseNumber(ctx context.Context) (string, error) {
	count, err := s.purchaseRepo.CountPurchases(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PUR-%d-%03d", time.Now().UTC().Year(), count+1), nil
}

func (s *purchaseService) verifyLineItemsExist(ctx context.Context, lines []dto.DocumentLineRequest) error {
	itemIDs := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, li := range lines {
		if _, ok := seen[li.ItemID]; ok {
			continue
		}
		seen[li.ItemID] = struct{}{}
		itemIDs = append(itemIDs, li.ItemID)
	}

	items, err := s.itemRepo.FindItemsByIDs(ctx, itemIDs)
	if err != nil {
		return err
	}
	for _, id := range itemIDs {
		if _, ok := items[id]; !ok {
			return fmt.Errorf("%w: item %s does not exist", apperrors.ErrValidation, id)
		}
	}
	return nil
}
