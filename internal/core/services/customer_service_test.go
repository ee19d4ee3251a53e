package services_test

import (
	"context"
	"testing"

	"github.com/Yeldokv/Finora/internal/apperrors"
	"github.com/Yeldokv/Finora/internal/core/domain"
	portssvc "github.com/Yeldokv/Finora/internal/core/ports/services"
	"github.com/Yeldokv/Finora/internal/core/services"
	"github.com/Yeldokv/Finora/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockCustomerRepository is shared with the invoice service suite; it is
// defined in invoice_service_test.go.

// --- Test Suite Setup ---

type CustomerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCustomerRepository
	service  portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockRepo)
}

func (suite *CustomerServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Test Cases ---

func (suite *CustomerServiceTestSuite) TestCreateCustomer_NormalizesFields() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{
		Name:  "  Acme Traders  ",
		GSTIN: " 27aapfu0939f1zv ",
		Email: "billing@acme.example",
	}

	suite.mockRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Name == "Acme Traders" &&
			c.GSTIN == "27AAPFU0939F1ZV" &&
			c.CustomerID != ""
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Acme Traders", customer.Name)
	suite.Equal("27AAPFU0939F1ZV", customer.GSTIN)
	suite.False(customer.CreatedAt.IsZero())
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_PartialFields() {
	ctx := context.Background()
	customerID := uuid.NewString()
	existing := &domain.Customer{
		CustomerID: customerID,
		Name:       "Acme Traders",
		Address:    "12 Market Road",
		GSTIN:      "27AAPFU0939F1ZV",
	}

	newName := "Acme Traders Pvt Ltd"
	suite.mockRepo.On("FindCustomerByID", ctx, customerID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		// Untouched fields must survive a partial update
		return c.Name == newName && c.Address == "12 Market Road" && c.GSTIN == "27AAPFU0939F1ZV"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCustomer(ctx, customerID, dto.UpdateCustomerRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal("12 Market Road", updated.Address)
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_NotFound() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockRepo.On("FindCustomerByID", ctx, customerID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateCustomer(ctx, customerID, dto.UpdateCustomerRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestDeleteCustomer_Success() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockRepo.On("DeleteCustomer", ctx, customerID).Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteCustomer(ctx, customerID))
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
