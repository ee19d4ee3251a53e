package mapping

import (
	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/Yeldokv/Finora/internal/models"
)

// ToModelItem converts a domain.Item to its database model.
func ToModelItem(i domain.Item) models.Item {
	return models.Item{
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

// ToDomainItem converts a database model to a domain.Item.
func ToDomainItem(m models.Item) domain.Item {
	return domain.Item{
		ItemID:       m.ItemID,
		Name:         m.Name,
		HSN:          m.HSN,
		Unit:         m.Unit,
		Rate:         m.Rate,
		TaxRate:      m.TaxRate,
		OpeningStock: m.OpeningStock,
		CurrentStock: m.CurrentStock,
		MinimumStock: m.MinimumStock,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainItemSlice converts a slice of item models to domain items.
func ToDomainItemSlice(ms []models.Item) []domain.Item {
	items := make([]domain.Item, len(ms))
	for i, m := range ms {
		items[i] = ToDomainItem(m)
	}
	return items
}
