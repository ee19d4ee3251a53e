package dto

import (
	"time"

	"github.com/Yeldokv/Finora/internal/core/domain"
)

// CreateFinancialYearRequest defines the data needed to create a financial year.
type CreateFinancialYearRequest struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required,gtfield=StartDate"`
	IsActive  bool      `json:"isActive"`
}

// FinancialYearResponse defines the data returned for a financial year.
type FinancialYearResponse struct {
	FinancialYearID string    `json:"financialYearID"`
	Name            string    `json:"name"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToFinancialYearResponse converts a domain.FinancialYear to its DTO.
func ToFinancialYearResponse(fy *domain.FinancialYear) FinancialYearResponse {
	return FinancialYearResponse{
		FinancialYearID: fy.FinancialYearID,
		Name:            fy.Name,
		StartDate:       fy.StartDate,
		EndDate:         fy.EndDate,
		IsActive:        fy.IsActive,
		CreatedAt:       fy.CreatedAt,
	}
}

// ToFinancialYearResponses converts a slice of domain financial years to DTOs.
func ToFinancialYearResponses(years []domain.FinancialYear) []FinancialYearResponse {
	res := make([]FinancialYearResponse, len(years))
	for i, fy := range years {
		res[i] = ToFinancialYearResponse(&fy)
	}
	return res
}
