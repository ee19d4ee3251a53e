package mapping

import (
	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/Yeldokv/Finora/internal/models"
)

// ToModelPurchase converts a domain.Purchase to its database model.
func ToModelPurchase(p domain.Purchase) models.Purchase {
	return models.Purchase{
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
}

// ToDomainPurchase converts a database model to a domain.Purchase.
func ToDomainPurchase(m models.Purchase) domain.Purchase {
	return domain.Purchase{
		PurchaseID:     m.PurchaseID,
		PurchaseNumber: m.PurchaseNumber,
		VendorID:       m.VendorID,
		PurchaseDate:   m.PurchaseDate,
		Subtotal:       m.Subtotal,
		CGSTAmount:     m.CGSTAmount,
		SGSTAmount:     m.SGSTAmount,
		IGSTAmount:     m.IGSTAmount,
		TotalAmount:    m.TotalAmount,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
	}
}

// ToModelPurchaseItem converts a domain purchase line to its database model.
func ToModelPurchaseItem(li domain.PurchaseItem) models.PurchaseItem {
	return models.PurchaseItem{
		PurchaseItemID: li.PurchaseItemID,
		PurchaseID:     li.PurchaseID,
		ItemID:         li.ItemID,
		Quantity:       li.Quantity,
		Rate:           li.Rate,
		TaxRate:        li.TaxRate,
		Amount:         li.Amount,
	}
}

// ToDomainPurchaseItem converts a database model to a domain purchase line.
func ToDomainPurchaseItem(m models.PurchaseItem) domain.PurchaseItem {
	return domain.PurchaseItem{
		PurchaseItemID: m.PurchaseItemID,
		PurchaseID:     m.PurchaseID,
		ItemID:         m.ItemID,
		Quantity:       m.Quantity,
		Rate:           m.Rate,
		TaxRate:        m.TaxRate,
		Amount:         m.Amount,
	}
}

// ToDomainPurchaseItemSlice converts purchase line models to domain lines.
func ToDomainPurchaseItemSlice(ms []models.PurchaseItem) []domain.PurchaseItem {
	lines := make([]domain.PurchaseItem, len(ms))
	for i, m := range ms {
		lines[i] = ToDomainPurchaseItem(m)
	}
	return lines
}
