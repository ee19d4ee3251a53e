package mapping

import (
	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/Yeldokv/Finora/internal/models"
)

// ToModelVendor converts a domain.Vendor to its database model.
func ToModelVendor(v domain.Vendor) models.Vendor {
	return models.Vendor{
		VendorID:  v.VendorID,
		Name:      v.Name,
		Address:   v.Address,
		GSTIN:     v.GSTIN,
		Phone:     v.Phone,
		Email:     v.Email,
		CreatedAt: v.CreatedAt,
	}
}

// ToDomainVendor converts a database model to a domain.Vendor.
func ToDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID:  m.VendorID,
		Name:      m.Name,
		Address:   m.Address,
		GSTIN:     m.GSTIN,
		Phone:     m.Phone,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}
