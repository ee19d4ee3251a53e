package domain

import "time"

// FinancialYear is an accounting period, e.g. "FY 2024-25". At most one
// year is active at a time.
type FinancialYear struct {
	FinancialYearID string    `json:"financialYearID"` // Primary Key (UUID)
	Name            string    `json:"name"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}
