package models

import "time"

// FinancialYear mirrors the financial_years table.
type FinancialYear struct {
	FinancialYearID string
	Name            string
	StartDate       time.Time
	EndDate         time.Time
	IsActive        bool
	CreatedAt       time.Time
}
