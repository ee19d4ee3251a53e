package services

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/Yeldokv/Finora/internal/dto"
)

// VendorSvcFacade defines the business operations for vendors.
type VendorSvcFacade interface {
	// CreateVendor creates a new vendor from the request data.
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error)

	// GetVendorByID retrieves a vendor by its unique identifier.
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves all vendors, newest first.
	ListVendors(ctx context.Context) ([]domain.Vendor, error)

	// UpdateVendor applies the provided fields to an existing vendor.
	UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest) (*domain.Vendor, error)

	// DeleteVendor removes a vendor.
	DeleteVendor(ctx context.Context, vendorID string) error
}
