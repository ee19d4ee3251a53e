package mapping

import (
	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/Yeldokv/Finora/internal/models"
)

// ToModelInvoice converts a domain.Invoice to its database model.
// Line items are mapped separately.
func ToModelInvoice(inv domain.Invoice) models.Invoice {
	return models.Invoice{
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
		Status:        string(inv.Status),
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
	}
}

// ToDomainInvoice converts a database model to a domain.Invoice.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		CustomerID:    m.CustomerID,
		InvoiceDate:   m.InvoiceDate,
		DueDate:       m.DueDate,
		Subtotal:      m.Subtotal,
		CGSTAmount:    m.CGSTAmount,
		SGSTAmount:    m.SGSTAmount,
		IGSTAmount:    m.IGSTAmount,
		TotalAmount:   m.TotalAmount,
		Status:        domain.InvoiceStatus(m.Status),
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

// ToModelInvoiceItem converts a domain invoice line to its database model.
func ToModelInvoiceItem(li domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		InvoiceItemID: li.InvoiceItemID,
		InvoiceID:     li.InvoiceID,
		ItemID:        li.ItemID,
		Quantity:      li.Quantity,
		Rate:          li.Rate,
		TaxRate:       li.TaxRate,
		Amount:        li.Amount,
	}
}

// ToDomainInvoiceItem converts a database model to a domain invoice line.
func ToDomainInvoiceItem(m models.InvoiceItem) domain.InvoiceItem {
	return domain.InvoiceItem{
		InvoiceItemID: m.InvoiceItemID,
		InvoiceID:     m.InvoiceID,
		ItemID:        m.ItemID,
		Quantity:      m.Quantity,
		Rate:          m.Rate,
		TaxRate:       m.TaxRate,
		Amount:        m.Amount,
	}
}

// ToDomainInvoiceItemSlice converts invoice line models to domain lines.
func ToDomainInvoiceItemSlice(ms []models.InvoiceItem) []domain.InvoiceItem {
	lines := make([]domain.InvoiceItem, len(ms))
	for i, m := range ms {
		lines[i] = ToDomainInvoiceItem(m)
	}
	return lines
}
