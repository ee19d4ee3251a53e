package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Yeldokv/Finora/internal/apperrors"
	"github.com/Yeldokv/Finora/internal/core/domain"
	portssvc "github.com/Yeldokv/Finora/internal/core/ports/services"
	"github.com/Yeldokv/Finora/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}
func (m *MockInvoiceService) NextInvoiceNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Test Suite Setup ---

type InvoiceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockInvoiceService *MockInvoiceService
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	RegisterCustomValidators()

	suite.router = gin.New()
	suite.mockInvoiceService = new(MockInvoiceService)

	v1 := suite.router.Group("/api/v1")
	registerInvoiceRoutes(v1, suite.mockInvoiceService)
}

func (suite *InvoiceHandlerTestSuite) TearDownTest() {
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

// --- Test Cases ---

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_Success() {
	customerID := uuid.NewString()
	itemID := uuid.NewString()
	invoiceDate := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	expected := &domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: "INV-2025-001",
		CustomerID:    customerID,
		InvoiceDate:   invoiceDate,
		Subtotal:      decimal.RequireFromString("200.00"),
		CGSTAmount:    decimal.RequireFromString("18.00"),
		SGSTAmount:    decimal.RequireFromString("18.00"),
		IGSTAmount:    decimal.Zero,
		TotalAmount:   decimal.RequireFromString("236.00"),
		Status:        domain.InvoicePending,
		CreatedAt:     time.Now().UTC(),
	}

	suite.mockInvoiceService.On("CreateInvoice",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateInvoiceRequest) bool {
			return req.CustomerID == customerID && len(req.Items) == 1
		}),
	).Return(expected, nil).Once()

	body := fmt.Sprintf(`{
		"customerID": %q,
		"invoiceDate": %q,
		"items": [{"itemID": %q, "quantity": "2", "rate": "100", "taxRate": "18"}]
	}`, customerID, invoiceDate.Format(time.RFC3339), itemID)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.InvoiceNumber, resp.InvoiceNumber)
	suite.True(resp.TotalAmount.Equal(expected.TotalAmount))
	suite.Equal(string(domain.InvoicePending), string(resp.Status))
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_BindError_NoItems() {
	body := fmt.Sprintf(`{"customerID": %q, "invoiceDate": %q, "items": []}`,
		uuid.NewString(), time.Now().UTC().Format(time.RFC3339))

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	// min=1 on items fails binding before the service is reached
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_UnknownItem() {
	customerID := uuid.NewString()
	svcErr := fmt.Errorf("%w: item %s does not exist", apperrors.ErrValidation, uuid.NewString())

	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, mock.Anything).
		Return(nil, svcErr).Once()

	body := fmt.Sprintf(`{
		"customerID": %q,
		"invoiceDate": %q,
		"items": [{"itemID": %q, "quantity": "1", "rate": "50", "taxRate": "18"}]
	}`, customerID, time.Now().UTC().Format(time.RFC3339), uuid.NewString())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_DuplicateNumber() {
	svcErr := fmt.Errorf("%w: invoice number INV-2025-001 already exists", apperrors.ErrDuplicate)
	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, mock.Anything).
		Return(nil, svcErr).Once()

	body := fmt.Sprintf(`{
		"invoiceNumber": "INV-2025-001",
		"customerID": %q,
		"invoiceDate": %q,
		"items": [{"itemID": %q, "quantity": "1", "rate": "50", "taxRate": "18"}]
	}`, uuid.NewString(), time.Now().UTC().Format(time.RFC3339), uuid.NewString())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoiceByID_NotFound() {
	invoiceID := uuid.NewString()
	suite.mockInvoiceService.On("GetInvoiceByID", mock.Anything, invoiceID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestListInvoices_Success() {
	invoices := []domain.Invoice{
		{InvoiceID: uuid.NewString(), InvoiceNumber: "INV-2025-002", TotalAmount: decimal.RequireFromString("118.00")},
		{InvoiceID: uuid.NewString(), InvoiceNumber: "INV-2025-001", TotalAmount: decimal.RequireFromString("236.00")},
	}
	suite.mockInvoiceService.On("ListInvoices", mock.Anything).Return(invoices, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/invoices", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("INV-2025-002", resp[0].InvoiceNumber)
}

func (suite *InvoiceHandlerTestSuite) TestNextInvoiceNumber_Success() {
	suite.mockInvoiceService.On("NextInvoiceNumber", mock.Anything).
		Return("INV-2025-004", nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/invoices/next-number", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	// The static route must win over /:id
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.NextNumberResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("INV-2025-004", resp.NextNumber)
}

func (suite *InvoiceHandlerTestSuite) TestDeleteInvoice_Success() {
	invoiceID := uuid.NewString()
	suite.mockInvoiceService.On("DeleteInvoice", mock.Anything, invoiceID).
		Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/invoices/"+invoiceID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestDeleteInvoice_NotLatest() {
	invoiceID := uuid.NewString()
	svcErr := fmt.Errorf("%w: only the most recently created invoice can be deleted", apperrors.ErrConflict)
	suite.mockInvoiceService.On("DeleteInvoice", mock.Anything, invoiceID).
		Return(svcErr).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/invoices/"+invoiceID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp["error"], "most recently created")
}

func (suite *InvoiceHandlerTestSuite) TestUpdateInvoice_Success() {
	invoiceID := uuid.NewString()
	updated := &domain.Invoice{
		InvoiceID:     invoiceID,
		InvoiceNumber: "INV-2025-001",
		Status:        domain.InvoicePaid,
		TotalAmount:   decimal.RequireFromString("236.00"),
	}
	suite.mockInvoiceService.On("UpdateInvoice", mock.Anything, invoiceID,
		mock.MatchedBy(func(req dto.UpdateInvoiceRequest) bool {
			return req.Status != nil && *req.Status == domain.InvoicePaid
		}),
	).Return(updated, nil).Once()

	req, _ := http.NewRequest(http.MethodPut, "/api/v1/invoices/"+invoiceID,
		bytes.NewBufferString(`{"status": "PAID"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(string(domain.InvoicePaid), string(resp.Status))
}

func (suite *InvoiceHandlerTestSuite) TestUpdateInvoice_InvalidStatus() {
	invoiceID := uuid.NewString()

	req, _ := http.NewRequest(http.MethodPut, "/api/v1/invoices/"+invoiceID,
		bytes.NewBufferString(`{"status": "SHIPPED"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	// oneof binding rejects unknown statuses before the service is reached
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
