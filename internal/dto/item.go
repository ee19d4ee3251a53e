package dto

import (
	"time"

	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateItemRequest defines the data needed to create a new inventory item.
// CurrentStock is initialized from OpeningStock; it is not accepted here.
type CreateItemRequest struct {
	Name         string          `json:"name" binding:"required"`
	HSN          string          `json:"hsn"`
	Unit         string          `json:"unit"`
	Rate         decimal.Decimal `json:"rate"`
	TaxRate      *decimal.Decimal `json:"taxRate"` // Defaults to 18 when omitted
	OpeningStock decimal.Decimal `json:"openingStock"`
	MinimumStock decimal.Decimal `json:"minimumStock"`
}

// UpdateItemRequest defines the data allowed for updating an item.
// CurrentStock may be edited directly here; document create/delete is the
// only other path that mutates it.
type UpdateItemRequest struct {
	Name         *string          `json:"name"`
	HSN          *string          `json:"hsn"`
	Unit         *string          `json:"unit"`
	Rate         *decimal.Decimal `json:"rate"`
	TaxRate      *decimal.Decimal `json:"taxRate"`
	CurrentStock *decimal.Decimal `json:"currentStock"`
	MinimumStock *decimal.Decimal `json:"minimumStock"`
}

// ItemResponse defines the data returned for an inventory item.
type ItemResponse struct {
	ItemID       string          `json:"itemID"`
	Name         string          `json:"name"`
	HSN          string          `json:"hsn"`
	Unit         string          `json:"unit"`
	Rate         decimal.Decimal `json:"rate"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	OpeningStock decimal.Decimal `json:"openingStock"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	MinimumStock decimal.Decimal `json:"minimumStock"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToItemResponse converts a domain.Item to ItemResponse DTO.
func ToItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:       i.ItemID,
		Name:         i.Name,
		HSN:          i.HSN,
		Unit:         i.Unit,
		Rate:         i.Rate,
		TaxRate:      i.TaxRate,
		OpeningStock: i.OpeningStock,
		CurrentStock: i.CurrentStock,
		MinimumStock: i.MinimumStock,
		CreatedAt:    i.CreatedAt,
	}
}

// ToItemResponses converts a slice of domain items to DTOs.
func ToItemResponses(items []domain.Item) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i, item := range items {
		res[i] = ToItemResponse(&item)
	}
	return res
}
