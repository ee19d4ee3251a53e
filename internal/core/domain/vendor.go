package domain

import "time"

// Vendor is a party purchases are recorded against.
type Vendor struct {
	VendorID  string    `json:"vendorID"` // Primary Key (UUID)
	Name      string    `json:"name"`
	Address   string    `json:"address"` // Nullable
	GSTIN     string    `json:"gstin"`   // Nullable
	Phone     string    `json:"phone"`   // Nullable
	Email     string    `json:"email"`   // Nullable
	CreatedAt time.Time `json:"createdAt"`
}
