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
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockItemRepository is a mock type for the ItemRepositoryFacade interface
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.Item, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Item), args.Error(1)
}

func (m *MockItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) ListLowStockItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockItemRepository) FindItemsByIDsForUpdate(ctx context.Context, tx pgx.Tx, itemIDs []string) (map[string]domain.Item, error) {
	args := m.Called(ctx, tx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Item), args.Error(1)
}

func (m *MockItemRepository) AdjustStockInTx(ctx context.Context, tx pgx.Tx, stockDeltas map[string]decimal.Decimal) error {
	args := m.Called(ctx, tx, stockDeltas)
	return args.Error(0)
}

// --- Test Suite Setup ---

type ItemServiceTestSuite struct {
	suite.Suite
	mockRepo *MockItemRepository
	service  portssvc.ItemSvcFacade
}

func (suite *ItemServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockItemRepository)
	suite.service = services.NewItemService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ItemServiceTestSuite) TestCreateItem_Defaults() {
	ctx := context.Background()
	req := dto.CreateItemRequest{
		Name:         "Copper Wire",
		Rate:         decimal.RequireFromString("120.50"),
		OpeningStock: decimal.NewFromInt(40),
		MinimumStock: decimal.NewFromInt(10),
	}

	suite.mockRepo.On("SaveItem", ctx, mock.AnythingOfType("domain.Item")).Return(nil).Once()

	item, err := suite.service.CreateItem(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.NotEmpty(item.ItemID)
	suite.Equal("PCS", item.Unit)
	suite.True(item.TaxRate.Equal(decimal.NewFromInt(18)), "tax rate defaults to 18, was %s", item.TaxRate)
	suite.True(item.CurrentStock.Equal(req.OpeningStock), "current stock starts at opening stock")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestCreateItem_NegativeRateRejected() {
	ctx := context.Background()
	req := dto.CreateItemRequest{
		Name: "Broken",
		Rate: decimal.NewFromInt(-1),
	}

	item, err := suite.service.CreateItem(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(item)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestCreateItem_TaxRateOutOfRange() {
	ctx := context.Background()
	tooHigh := decimal.NewFromInt(101)
	req := dto.CreateItemRequest{
		Name:    "Overtaxed",
		Rate:    decimal.NewFromInt(10),
		TaxRate: &tooHigh,
	}

	item, err := suite.service.CreateItem(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(item)
}

func (suite *ItemServiceTestSuite) TestUpdateItem_PartialFields() {
	ctx := context.Background()
	itemID := uuid.NewString()
	existing := &domain.Item{
		ItemID:       itemID,
		Name:         "Copper Wire",
		Unit:         "MTR",
		Rate:         decimal.NewFromInt(100),
		TaxRate:      decimal.NewFromInt(18),
		CurrentStock: decimal.NewFromInt(5),
		MinimumStock: decimal.NewFromInt(10),
	}
	newStock := decimal.NewFromInt(50)

	suite.mockRepo.On("FindItemByID", ctx, itemID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateItem", ctx, mock.MatchedBy(func(item domain.Item) bool {
		return item.CurrentStock.Equal(newStock) && item.Name == "Copper Wire" && item.Unit == "MTR"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateItem(ctx, itemID, dto.UpdateItemRequest{CurrentStock: &newStock})

	suite.Require().NoError(err)
	suite.True(updated.CurrentStock.Equal(newStock))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestUpdateItem_NotFound() {
	ctx := context.Background()
	itemID := uuid.NewString()

	suite.mockRepo.On("FindItemByID", ctx, itemID).Return(nil, apperrors.NewNotFoundError("item not found")).Once()

	updated, err := suite.service.UpdateItem(ctx, itemID, dto.UpdateItemRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
}

func (suite *ItemServiceTestSuite) TestListLowStockItems() {
	ctx := context.Background()
	low := []domain.Item{
		// The boundary is inclusive: stock equal to the minimum already counts.
		{ItemID: uuid.NewString(), CurrentStock: decimal.NewFromInt(10), MinimumStock: decimal.NewFromInt(10)},
		{ItemID: uuid.NewString(), CurrentStock: decimal.NewFromInt(2), MinimumStock: decimal.NewFromInt(10)},
	}

	suite.mockRepo.On("ListLowStockItems", ctx).Return(low, nil).Once()

	items, err := suite.service.ListLowStockItems(ctx)

	suite.Require().NoError(err)
	suite.Len(items, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}
