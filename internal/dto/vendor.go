package dto

import (
	"time"

	"github.com/Yeldokv/Finora/internal/core/domain"
)

// CreateVendorRequest defines the data needed to create a new vendor.
type CreateVendorRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin" binding:"omitempty,gstin"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
}

// UpdateVendorRequest defines the data allowed for updating a vendor.
type UpdateVendorRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	GSTIN   *string `json:"gstin" binding:"omitempty"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

// VendorResponse defines the data returned for a vendor.
type VendorResponse struct {
	VendorID  string    `json:"vendorID"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	GSTIN     string    `json:"gstin"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToVendorResponse converts a domain.Vendor to VendorResponse DTO.
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:  v.VendorID,
		Name:      v.Name,
		Address:   v.Address,
		GSTIN:     v.GSTIN,
		Phone:     v.Phone,
		Email:     v.Email,
		CreatedAt: v.CreatedAt,
	}
}

// ToVendorResponses converts a slice of domain vendors to DTOs.
func ToVendorResponses(vendors []domain.Vendor) []VendorResponse {
	res := make([]VendorResponse, len(vendors))
	for i, v := range vendors {
		res[i] = ToVendorResponse(&v)
	}
	return res
}
