package dto

import (
	"time"

	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the data needed to record a purchase.
// PurchaseNumber is optional; when empty the next sequential number is assigned.
type CreatePurchaseRequest struct {
	PurchaseNumber string                `json:"purchaseNumber"`
	VendorID       string                `json:"vendorID" binding:"required"`
	PurchaseDate   time.Time             `json:"purchaseDate" binding:"required"`
	Notes          string                `json:"notes"`
	Items          []DocumentLineRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdatePurchaseRequest defines the mutable purchase header fields.
type UpdatePurchaseRequest struct {
	Notes *string `json:"notes"`
}

// PurchaseItemResponse defines the data returned for a purchase line.
type PurchaseItemResponse struct {
	PurchaseItemID string          `json:"purchaseItemID"`
	ItemID         string          `json:"itemID"`
	Quantity       decimal.Decimal `json:"quantity"`
	Rate           decimal.Decimal `json:"rate"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	Amount         decimal.Decimal `json:"amount"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	PurchaseID     string                 `json:"purchaseID"`
	PurchaseNumber string                 `json:"purchaseNumber"`
	VendorID       string                 `json:"vendorID"`
	PurchaseDate   time.Time              `json:"purchaseDate"`
	Subtotal       decimal.Decimal        `json:"subtotal"`
	CGSTAmount     decimal.Decimal        `json:"cgstAmount"`
	SGSTAmount     decimal.Decimal        `json:"sgstAmount"`
	IGSTAmount     decimal.Decimal        `json:"igstAmount"`
	TotalAmount    decimal.Decimal        `json:"totalAmount"`
	Notes          string                 `json:"notes"`
	CreatedAt      time.Time              `json:"createdAt"`
	Items          []PurchaseItemResponse `json:"items,omitempty"`
}

// ToPurchaseResponse converts a domain.Purchase to PurchaseResponse DTO.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	resp := PurchaseResponse{
		PurchaseID:     p.PurchaseID,
		PurchaseNumber: p.PurchaseNumber,
		VendorID:       p.VendorID,
		PurchaseDate:   p.PurchaseDate,
		Subtotal:       p.Subtotal,
		CGSTAmount:     p.CGSTAmount,
		SGSTAmount:     p.SGSTAmount,
		IGSTAmount:     p.IGSTAmount,
		TotalAmount:    p.TotalAmount,
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
	}
	if len(p.Items) > 0 {
		resp.Items = make([]PurchaseItemResponse, len(p.Items))
		for i, li := range p.Items {
			resp.Items[i] = PurchaseItemResponse{
				PurchaseItemID: li.PurchaseItemID,
				ItemID:         li.ItemID,
				Quantity:       li.Quantity,
				Rate:           li.Rate,
				TaxRate:        li.TaxRate,
				Amount:         li.Amount,
			}
		}
	}
	return resp
}

// ToPurchaseResponses converts a slice of domain purchases to DTOs.
func ToPurchaseResponses(purchases []domain.Purchase) []PurchaseResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		res[i] = ToPurchaseResponse(&p)
	}
	return res
}
