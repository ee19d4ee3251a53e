package repositories

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
)

// VendorRepositoryFacade defines persistence operations for vendors.
type VendorRepositoryFacade interface {
	// SaveVendor persists a new vendor.
	SaveVendor(ctx context.Context, vendor domain.Vendor) error

	// FindVendorByID retrieves a vendor by its unique identifier.
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves all vendors, newest first.
	ListVendors(ctx context.Context) ([]domain.Vendor, error)

	// UpdateVendor updates an existing vendor's details.
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error

	// DeleteVendor removes a vendor.
	DeleteVendor(ctx context.Context, vendorID string) error
}
