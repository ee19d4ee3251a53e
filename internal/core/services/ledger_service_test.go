package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Yeldokv/Finora/internal/apperrors"
	"github.com/Yeldokv/Finora/internal/core/domain"
	portssvc "github.com/Yeldokv/Finora/internal/core/ports/services"
	"github.com/Yeldokv/Finora/internal/core/services"
	"github.com/Yeldokv/Finora/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListLedgerEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCreateLedgerEntry_DefaultsToManual() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		EntryDate:     time.Now(),
		Description:   "Office rent for August",
		DebitAccount:  "Rent Expense",
		CreditAccount: "Cash",
		Amount:        decimal.RequireFromString("15000.00"),
	}

	suite.mockRepo.On("SaveLedgerEntry", ctx, mock.MatchedBy(func(entry domain.LedgerEntry) bool {
		return entry.ReferenceType == domain.LedgerRefManual
	})).Return(nil).Once()

	entry, err := suite.service.CreateLedgerEntry(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(domain.LedgerRefManual, entry.ReferenceType)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateLedgerEntry_NonPositiveAmountRejected() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		EntryDate:     time.Now(),
		Description:   "bad entry",
		DebitAccount:  "A",
		CreditAccount: "B",
		Amount:        decimal.Zero,
	}

	entry, err := suite.service.CreateLedgerEntry(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveLedgerEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListLedgerEntries() {
	ctx := context.Background()
	entries := []domain.LedgerEntry{{EntryID: "e1"}, {EntryID: "e2"}}

	suite.mockRepo.On("ListLedgerEntries", ctx).Return(entries, nil).Once()

	got, err := suite.service.ListLedgerEntries(ctx)

	suite.Require().NoError(err)
	suite.Len(got, 2)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
