package mapping

import (
	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/Yeldokv/Finora/internal/models"
)

// ToModelFinancialYear converts a domain.FinancialYear to its database model.
func ToModelFinancialYear(fy domain.FinancialYear) models.FinancialYear {
	return models.FinancialYear{
		FinancialYearID: fy.FinancialYearID,
		Name:            fy.Name,
		StartDate:       fy.StartDate,
		EndDate:         fy.EndDate,
		IsActive:        fy.IsActive,
		CreatedAt:       fy.CreatedAt,
	}
}

// ToDomainFinancialYear converts a database model to a domain.FinancialYear.
func ToDomainFinancialYear(m models.FinancialYear) domain.FinancialYear {
	return domain.FinancialYear{
		FinancialYearID: m.FinancialYearID,
		Name:            m.Name,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
	}
}
