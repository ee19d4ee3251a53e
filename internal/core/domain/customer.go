package domain

import "time"

// Customer is a party invoices are billed to.
type Customer struct {
	CustomerID string    `json:"customerID"` // Primary Key (UUID)
	Name       string    `json:"name"`
	Address    string    `json:"address"` // Nullable
	GSTIN      string    `json:"gstin"`   // Nullable; 15-char GST identification number
	Phone      string    `json:"phone"`   // Nullable
	Email      string    `json:"email"`   // Nullable
	CreatedAt  time.Time `json:"createdAt"`
}
