package dto

import (
	"time"

	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DocumentLineRequest is one raw line of an invoice or purchase request.
// Amounts are computed server side; any client-sent totals are ignored.
type DocumentLineRequest struct {
	ItemID   string          `json:"itemID" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Rate     decimal.Decimal `json:"rate"`
	TaxRate  decimal.Decimal `json:"taxRate"`
}

// CreateInvoiceRequest defines the data needed to create an invoice.
// InvoiceNumber is optional; when empty the next sequential number is assigned.
type CreateInvoiceRequest struct {
	InvoiceNumber string                `json:"invoiceNumber"`
	CustomerID    string                `json:"customerID" binding:"required"`
	InvoiceDate   time.Time             `json:"invoiceDate" binding:"required"`
	DueDate       *time.Time            `json:"dueDate"`
	Notes         string                `json:"notes"`
	Items         []DocumentLineRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest defines the mutable invoice header fields.
// Totals and lines are immutable after creation.
type UpdateInvoiceRequest struct {
	Status  *domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=PENDING PAID CANCELLED"`
	Notes   *string               `json:"notes"`
	DueDate *time.Time            `json:"dueDate"`
}

// InvoiceItemResponse defines the data returned for an invoice line.
type InvoiceItemResponse struct {
	InvoiceItemID string          `json:"invoiceItemID"`
	ItemID        string          `json:"itemID"`
	Quantity      decimal.Decimal `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	Amount        decimal.Decimal `json:"amount"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string                `json:"invoiceID"`
	InvoiceNumber string                `json:"invoiceNumber"`
	CustomerID    string                `json:"customerID"`
	InvoiceDate   time.Time             `json:"invoiceDate"`
	DueDate       *time.Time            `json:"dueDate,omitempty"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	CGSTAmount    decimal.Decimal       `json:"cgstAmount"`
	SGSTAmount    decimal.Decimal       `json:"sgstAmount"`
	IGSTAmount    decimal.Decimal       `json:"igstAmount"`
	TotalAmount   decimal.Decimal       `json:"totalAmount"`
	Status        domain.InvoiceStatus  `json:"status"`
	Notes         string                `json:"notes"`
	CreatedAt     time.Time             `json:"createdAt"`
	Items         []InvoiceItemResponse `json:"items,omitempty"`
}

// NextNumberResponse carries the next sequential document number.
type NextNumberResponse struct {
	NextNumber string `json:"nextNumber"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		Subtotal:      inv.Subtotal,
		CGSTAmount:    inv.CGSTAmount,
		SGSTAmount:    inv.SGSTAmount,
		IGSTAmount:    inv.IGSTAmount,
		TotalAmount:   inv.TotalAmount,
		Status:        inv.Status,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
	}
	if len(inv.Items) > 0 {
		resp.Items = make([]InvoiceItemResponse, len(inv.Items))
		for i, li := range inv.Items {
			resp.Items[i] = InvoiceItemResponse{
				InvoiceItemID: li.InvoiceItemID,
				ItemID:        li.ItemID,
				Quantity:      li.Quantity,
				Rate:          li.Rate,
				TaxRate:       li.TaxRate,
				Amount:        li.Amount,
			}
		}
	}
	return resp
}

// ToInvoiceResponses converts a slice of domain invoices to DTOs.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv)
	}
	return res
}
