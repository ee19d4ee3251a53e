package repositories

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
)

// FinancialYearRepositoryFacade defines persistence operations for financial years.
type FinancialYearRepositoryFacade interface {
	// SaveFinancialYear persists a new financial year. When the year is
	// created as active, all other years are deactivated in the same
	// transaction.
	SaveFinancialYear(ctx context.Context, fy domain.FinancialYear) error

	// ListFinancialYears retrieves all financial years, newest first.
	ListFinancialYears(ctx context.Context) ([]domain.FinancialYear, error)

	// FindActiveFinancialYear retrieves the currently active financial year.
	FindActiveFinancialYear(ctx context.Context) (*domain.FinancialYear, error)
}
