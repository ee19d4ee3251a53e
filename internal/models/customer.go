package models

import "time"

// Customer mirrors the customers table.
type Customer struct {
	CustomerID string
	Name       string
	Address    string
	GSTIN      string
	Phone      string
	Email      string
	CreatedAt  time.Time
}
