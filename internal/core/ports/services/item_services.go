package services

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/Yeldokv/Finora/internal/dto"
)

// ItemSvcFacade defines the business operations for inventory items.
type ItemSvcFacade interface {
	// CreateItem creates a new item; current stock starts at the opening stock.
	CreateItem(ctx context.Context, req dto.CreateItemRequest) (*domain.Item, error)

	// GetItemByID retrieves an item by its unique identifier.
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItems retrieves all items, newest first.
	ListItems(ctx context.Context) ([]domain.Item, error)

	// ListLowStockItems retrieves items whose current stock is at or below
	// their minimum stock threshold.
	ListLowStockItems(ctx context.Context) ([]domain.Item, error)

	// UpdateItem applies the provided fields to an existing item.
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest) (*domain.Item, error)

	// DeleteItem removes an item.
	DeleteItem(ctx context.Context, itemID string) error
}
