package services

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/Yeldokv/Finora/internal/dto"
)

// CustomerSvcFacade defines the business operations for customers.
type CustomerSvcFacade interface {
	// CreateCustomer creates a new customer from the request data.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// GetCustomerByID retrieves a customer by its unique identifier.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves all customers, newest first.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// UpdateCustomer applies the provided fields to an existing customer.
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)

	// DeleteCustomer removes a customer.
	DeleteCustomer(ctx context.Context, customerID string) error
}
