package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Yeldokv/Finora/internal/apperrors"
	"github.com/Yeldokv/Finora/internal/core/domain"
	portsrepo "github.com/Yeldokv/Finora/internal/core/ports/repositories"
	portssvc "github.com/Yeldokv/Finora/internal/core/ports/services"
	"github.com/Yeldokv/Finora/internal/dto"
	"github.com/google/uuid"
)

type financialYearService struct {
	fyRepo portsrepo.FinancialYearRepositoryFacade
}

// NewFinancialYearService creates a new financial year service instance.
func NewFinancialYearService(fyRepo portsrepo.FinancialYearRepositoryFacade) portssvc.FinancialYearSvcFacade {
	return &financialYearService{fyRepo: fyRepo}
}

func (s *financialYearService) CreateFinancialYear(ctx context.Context, req dto.CreateFinancialYearRequest) (*domain.FinancialYear, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: financial year end date must be after start date", apperrors.ErrValidation)
	}

	fy := domain.FinancialYear{
		FinancialYearID: uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IsActive:        req.IsActive,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.fyRepo.SaveFinancialYear(ctx, fy); err != nil {
		return nil, err
	}
	return &fy, nil
}

func (s *financialYearService) ListFinancialYears(ctx context.Context) ([]domain.FinancialYear, error) {
	return s.fyRepo.ListFinancialYears(ctx)
}

func (s *financialYearService) GetActiveFinancialYear(ctx context.Context) (*domain.FinancialYear, error) {
	return s.fyRepo.FindActiveFinancialYear(ctx)
}
