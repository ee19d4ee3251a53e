package services

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/Yeldokv/Finora/internal/dto"
)

// FinancialYearSvcFacade defines the business operations for financial years.
type FinancialYearSvcFacade interface {
	// CreateFinancialYear creates a new financial year. When created as
	// active it becomes the only active year.
	CreateFinancialYear(ctx context.Context, req dto.CreateFinancialYearRequest) (*domain.FinancialYear, error)

	// ListFinancialYears retrieves all financial years, newest first.
	ListFinancialYears(ctx context.Context) ([]domain.FinancialYear, error)

	// GetActiveFinancialYear retrieves the currently active financial year.
	GetActiveFinancialYear(ctx context.Context) (*domain.FinancialYear, error)
}
