package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Yeldokv/Finora/internal/apperrors"
	"github.com/Yeldokv/Finora/internal/core/domain"
	portssvc "github.com/Yeldokv/Finora/internal/core/ports/services"
	"github.com/Yeldokv/Finora/internal/core/services"
	"github.com/Yeldokv/Finora/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceItems(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindLatestInvoice(ctx context.Context) (*domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) CountInvoices(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceItem, stockDeltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, invoice, lines, stockDeltas)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string, stockDeltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, invoiceID, stockDeltas)
	return args.Error(0)
}

// MockCustomerRepository is a mock type for the CustomerRepositoryFacade interface
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo  *MockInvoiceRepository
	mockItemRepo     *MockItemRepository
	mockCustomerRepo *MockCustomerRepository
	service          portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockItemRepo = new(MockItemRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockItemRepo, suite.mockCustomerRepo)
}

func (suite *InvoiceServiceTestSuite) knownItems(ids ...string) map[string]domain.Item {
	items := make(map[string]domain.Item, len(ids))
	for _, id := range ids {
		items[id] = domain.Item{ItemID: id, Name: "Item " + id}
	}
	return items
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	customerID := uuid.NewString()
	itemA := uuid.NewString()
	itemB := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		CustomerID:  customerID,
		InvoiceDate: time.Now(),
		Items: []dto.DocumentLineRequest{
			{ItemID: itemA, Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(100), TaxRate: decimal.NewFromInt(18)},
			{ItemID: itemB, Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(50), TaxRate: decimal.NewFromInt(18)},
		},
	}

	suite.mockItemRepo.On("FindItemsByIDs", ctx, []string{itemA, itemB}).Return(suite.knownItems(itemA, itemB), nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(&domain.Customer{CustomerID: customerID}, nil).Once()
	suite.mockInvoiceRepo.On("CountInvoices", ctx).Return(int64(3), nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice"), mock.AnythingOfType("[]domain.InvoiceItem"), mock.MatchedBy(func(deltas map[string]decimal.Decimal) bool {
		// Sales decrease stock by the line quantity.
		return len(deltas) == 2 &&
			deltas[itemA].Equal(decimal.NewFromInt(-2)) &&
			deltas[itemB].Equal(decimal.NewFromInt(-1))
	})).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.NotEmpty(invoice.InvoiceID)
	suite.Equal(fmt.Sprintf("INV-%d-004", time.Now().UTC().Year()), invoice.InvoiceNumber)
	suite.Equal(domain.InvoicePending, invoice.Status)
	suite.True(invoice.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal was %s", invoice.Subtotal)
	suite.True(invoice.CGSTAmount.Equal(decimal.RequireFromString("22.5")), "cgst was %s", invoice.CGSTAmount)
	suite.True(invoice.SGSTAmount.Equal(invoice.CGSTAmount), "cgst and sgst must be equal halves")
	suite.True(invoice.IGSTAmount.IsZero())
	suite.True(invoice.TotalAmount.Equal(decimal.NewFromInt(295)), "total was %s", invoice.TotalAmount)

	// Persisted totals reconcile with their own components.
	sum := invoice.Subtotal.Add(invoice.CGSTAmount).Add(invoice.SGSTAmount).Add(invoice.IGSTAmount)
	suite.True(invoice.TotalAmount.Equal(sum))

	suite.Require().Len(invoice.Items, 2)
	suite.Equal(invoice.InvoiceID, invoice.Items[0].InvoiceID)
	suite.True(invoice.Items[0].Amount.Equal(decimal.NewFromInt(236)))
	suite.True(invoice.Items[1].Amount.Equal(decimal.NewFromInt(59)))

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockItemRepo.AssertExpectations(suite.T())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RepeatedItemAccumulatesStockDelta() {
	ctx := context.Background()
	customerID := uuid.NewString()
	itemA := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		CustomerID:  customerID,
		InvoiceDate: time.Now(),
		Items: []dto.DocumentLineRequest{
			{ItemID: itemA, Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(10), TaxRate: decimal.NewFromInt(5)},
			{ItemID: itemA, Quantity: decimal.NewFromInt(3), Rate: decimal.NewFromInt(12), TaxRate: decimal.NewFromInt(5)},
		},
	}

	suite.mockItemRepo.On("FindItemsByIDs", ctx, []string{itemA}).Return(suite.knownItems(itemA), nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(&domain.Customer{CustomerID: customerID}, nil).Once()
	suite.mockInvoiceRepo.On("CountInvoices", ctx).Return(int64(0), nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.Anything, mock.Anything, mock.MatchedBy(func(deltas map[string]decimal.Decimal) bool {
		return len(deltas) == 1 && deltas[itemA].Equal(decimal.NewFromInt(-5))
	})).Return(nil).Once()

	_, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownItemFailsWholeDocument() {
	ctx := context.Background()
	customerID := uuid.NewString()
	itemA := uuid.NewString()
	missing := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		CustomerID:  customerID,
		InvoiceDate: time.Now(),
		Items: []dto.DocumentLineRequest{
			{ItemID: itemA, Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(100), TaxRate: decimal.NewFromInt(18)},
			{ItemID: missing, Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(100), TaxRate: decimal.NewFromInt(18)},
		},
	}

	suite.mockItemRepo.On("FindItemsByIDs", ctx, []string{itemA, missing}).Return(suite.knownItems(itemA), nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(invoice)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_InvalidQuantityRejectedBeforeAnyLookup() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		CustomerID:  uuid.NewString(),
		InvoiceDate: time.Now(),
		Items: []dto.DocumentLineRequest{
			{ItemID: uuid.NewString(), Quantity: decimal.Zero, Rate: decimal.NewFromInt(100), TaxRate: decimal.NewFromInt(18)},
		},
	}

	invoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(invoice)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "FindItemsByIDs", mock.Anything, mock.Anything)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownCustomer() {
	ctx := context.Background()
	customerID := uuid.NewString()
	itemA := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		CustomerID:  customerID,
		InvoiceDate: time.Now(),
		Items: []dto.DocumentLineRequest{
			{ItemID: itemA, Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(100), TaxRate: decimal.NewFromInt(18)},
		},
	}

	suite.mockItemRepo.On("FindItemsByIDs", ctx, []string{itemA}).Return(suite.knownItems(itemA), nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.NewNotFoundError("customer not found")).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(invoice)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_ExplicitNumberSkipsCounter() {
	ctx := context.Background()
	customerID := uuid.NewString()
	itemA := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-2025-099",
		CustomerID:    customerID,
		InvoiceDate:   time.Now(),
		Items: []dto.DocumentLineRequest{
			{ItemID: itemA, Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(10), TaxRate: decimal.Zero},
		},
	}

	suite.mockItemRepo.On("FindItemsByIDs", ctx, []string{itemA}).Return(suite.knownItems(itemA), nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(&domain.Customer{CustomerID: customerID}, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("INV-2025-099", invoice.InvoiceNumber)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "CountInvoices", mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_LatestRestoresStock() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	itemA := uuid.NewString()
	itemB := uuid.NewString()
	lines := []domain.InvoiceItem{
		{InvoiceItemID: uuid.NewString(), InvoiceID: invoiceID, ItemID: itemA, Quantity: decimal.NewFromInt(2)},
		{InvoiceItemID: uuid.NewString(), InvoiceID: invoiceID, ItemID: itemB, Quantity: decimal.RequireFromString("1.5")},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(&domain.Invoice{InvoiceID: invoiceID}, nil).Once()
	suite.mockInvoiceRepo.On("FindLatestInvoice", ctx).Return(&domain.Invoice{InvoiceID: invoiceID}, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceItems", ctx, invoiceID).Return(lines, nil).Once()
	suite.mockInvoiceRepo.On("DeleteInvoice", ctx, invoiceID, mock.MatchedBy(func(deltas map[string]decimal.Decimal) bool {
		// Deletion is the exact inverse of creation.
		return len(deltas) == 2 &&
			deltas[itemA].Equal(decimal.NewFromInt(2)) &&
			deltas[itemB].Equal(decimal.RequireFromString("1.5"))
	})).Return(nil).Once()

	err := suite.service.DeleteInvoice(ctx, invoiceID)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_NotLatestIsConflict() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(&domain.Invoice{InvoiceID: invoiceID}, nil).Once()
	suite.mockInvoiceRepo.On("FindLatestInvoice", ctx).Return(&domain.Invoice{InvoiceID: uuid.NewString()}, nil).Once()

	err := suite.service.DeleteInvoice(ctx, invoiceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "DeleteInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestDeleteInvoice_NotFound() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(nil, apperrors.NewNotFoundError("invoice not found")).Once()

	err := suite.service.DeleteInvoice(ctx, invoiceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "DeleteInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_StatusOnly() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID: invoiceID,
		Status:    domain.InvoicePending,
		Notes:     "original notes",
	}
	paid := domain.InvoicePaid

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Status == domain.InvoicePaid && inv.Notes == "original notes"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateInvoice(ctx, invoiceID, dto.UpdateInvoiceRequest{Status: &paid})

	suite.Require().NoError(err)
	suite.Equal(domain.InvoicePaid, updated.Status)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestNextInvoiceNumber() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("CountInvoices", ctx).Return(int64(7), nil).Once()

	number, err := suite.service.NextInvoiceNumber(ctx)

	suite.Require().NoError(err)
	suite.Equal(fmt.Sprintf("INV-%d-008", time.Now().UTC().Year()), number)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_LoadsLines() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	lines := []domain.InvoiceItem{{InvoiceItemID: uuid.NewString(), InvoiceID: invoiceID}}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(&domain.Invoice{InvoiceID: invoiceID}, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceItems", ctx, invoiceID).Return(lines, nil).Once()

	invoice, err := suite.service.GetInvoiceByID(ctx, invoiceID)

	suite.Require().NoError(err)
	suite.Len(invoice.Items, 1)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
