package dto

import (
	"time"

	"github.com/Yeldokv/Finora/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a new customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin" binding:"omitempty,gstin"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	GSTIN   *string `json:"gstin" binding:"omitempty"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID string    `json:"customerID"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	GSTIN      string    `json:"gstin"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Address:    c.Address,
		GSTIN:      c.GSTIN,
		Phone:      c.Phone,
		Email:      c.Email,
		CreatedAt:  c.CreatedAt,
	}
}

// ToCustomerResponses converts a slice of domain customers to DTOs.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}
