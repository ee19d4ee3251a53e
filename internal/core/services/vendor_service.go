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

type vendorService struct {
	vendorRepo portsrepo.VendorRepositoryFacade
}

// NewVendorService creates a new vendor service instance.
func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade) portssvc.VendorSvcFacade {
	return &vendorService{vendorRepo: vendorRepo}
}

func (s *vendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	vendor := domain.Vendor{
		VendorID:  uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Address:   req.Address,
		GSTIN:     normalizeGSTIN(req.GSTIN),
		Phone:     req.Phone,
		Email:     req.Email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (s *vendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	return s.vendorRepo.FindVendorByID(ctx, vendorID)
}

func (s *vendorService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	return s.vendorRepo.ListVendors(ctx)
}

func (s *vendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		vendor.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		vendor.Address = *req.Address
	}
	if req.GSTIN != nil {
		vendor.GSTIN = normalizeGSTIN(*req.GSTIN)
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}

	if err := s.vendorRepo.UpdateVendor(ctx, *vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) DeleteVendor(ctx context.Context, vendorID string) error {
	return s.vendorRepo.DeleteVendor(ctx, vendorID)
}
