package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Yeldokv/Finora/internal/apperrors"
	"github.com/Yeldokv/Finora/internal/core/domain"
	portsrepo "github.com/Yeldokv/Finora/internal/core/ports/repositories"
	portssvc "github.com/Yeldokv/Finora/internal/core/ports/services"
	"github.com/Yeldokv/Finora/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// defaultTaxRate is the GST percentage applied when an item is created
// without one.
var defaultTaxRate = decimal.NewFromInt(18)

const defaultUnit = "PCS"

type itemService struct {
	itemRepo portsrepo.ItemRepositoryFacade
}

// NewItemService creates a new inventory item service instance.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade) portssvc.ItemSvcFacade {
	return &itemService{itemRepo: itemRepo}
}

func (s *itemService) CreateItem(ctx context.Context, req dto.CreateItemRequest) (*domain.Item, error) {
	if req.Rate.IsNegative() {
		return nil, fmt.Errorf("%w: item rate cannot be negative", apperrors.ErrValidation)
	}

	taxRate := defaultTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: tax rate must be between 0 and 100", apperrors.ErrValidation)
	}

	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = defaultUnit
	}

	item := domain.Item{
		ItemID:       uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		HSN:          req.HSN,
		Unit:         unit,
		Rate:         req.Rate,
		TaxRate:      taxRate,
		OpeningStock: req.OpeningStock,
		CurrentStock: req.OpeningStock,
		MinimumStock: req.MinimumStock,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	return s.itemRepo.FindItemByID(ctx, itemID)
}

func (s *itemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.itemRepo.ListItems(ctx)
}

func (s *itemService) ListLowStockItems(ctx context.Context) ([]domain.Item, error) {
	return s.itemRepo.ListLowStockItems(ctx)
}

func (s *itemService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.HSN != nil {
		item.HSN = *req.HSN
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.Rate != nil {
		if req.Rate.IsNegative() {
			return nil, fmt.Errorf("%w: item rate cannot be negative", apperrors.ErrValidation)
		}
		item.Rate = *req.Rate
	}
	if req.TaxRate != nil {
		if req.TaxRate.IsNegative() || req.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("%w: tax rate must be between 0 and 100", apperrors.ErrValidation)
		}
		item.TaxRate = *req.TaxRate
	}
	if req.CurrentStock != nil {
		item.CurrentStock = *req.CurrentStock
	}
	if req.MinimumStock != nil {
		item.MinimumStock = *req.MinimumStock
	}

	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, itemID string) error {
	return s.itemRepo.DeleteItem(ctx, itemID)
}
