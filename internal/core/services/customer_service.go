package services

import (
	"context"
	"strings"
	"time"

	"github.com/Yeldokv/Finora/internal/core/domain"
	portsrepo "github.com/Yeldokv/Finora/internal/core/ports/repositories"
	portssvc "github.com/Yeldokv/Finora/internal/core/ports/services"
	"github.com/Yeldokv/Finora/internal/dto"
	"github.com/google/uuid"
)

type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer service instance.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Address:    req.Address,
		GSTIN:      normalizeGSTIN(req.GSTIN),
		Phone:      req.Phone,
		Email:      req.Email,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.GSTIN != nil {
		customer.GSTIN = normalizeGSTIN(*req.GSTIN)
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	return s.customerRepo.DeleteCustomer(ctx, customerID)
}

// normalizeGSTIN uppercases and trims a GST identification number so lookups
// are case-insensitive.
func normalizeGSTIN(gstin string) string {
	return strings.ToUpper(strings.TrimSpace(gstin))
}
