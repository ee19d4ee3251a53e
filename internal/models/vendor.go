package models

import "time"

// Vendor mirrors the vendors table.
type Vendor struct {
	VendorID  string
	Name      string
	Address   string
	GSTIN     string
	Phone     string
	Email     string
	CreatedAt time.Time
}
