package repositories

import (
	"context"

	"github.com/Yeldokv/Finora/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ItemReader defines read operations for inventory items.
type ItemReader interface {
	// FindItemByID retrieves a specific item by its unique identifier.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// FindItemsByIDs retrieves multiple items by their IDs.
	FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.Item, error)

	// ListItems retrieves all items, newest first.
	ListItems(ctx context.Context) ([]domain.Item, error)

	// ListLowStockItems retrieves items with current_stock <= minimum_stock.
	ListLowStockItems(ctx context.Context) ([]domain.Item, error)
}

// ItemWriter defines write operations for inventory items.
type ItemWriter interface {
	// SaveItem persists a new item.
	SaveItem(ctx context.Context, item domain.Item) error

	// UpdateItem updates an existing item's details, including direct stock edits.
	UpdateItem(ctx context.Context, item domain.Item) error

	// DeleteItem removes an item.
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemStockSupport defines the stock mutations used inside document
// create/delete transactions.
type ItemStockSupport interface {
	// FindItemsByIDsForUpdate selects items and locks their rows within a transaction.
	FindItemsByIDsForUpdate(ctx context.Context, tx pgx.Tx, itemIDs []string) (map[string]domain.Item, error)

	// AdjustStockInTx applies current_stock += delta per item within a transaction.
	// Returns ErrNotFound if any referenced item does not exist, which rolls
	// back the enclosing document write.
	AdjustStockInTx(ctx context.Context, tx pgx.Tx, stockDeltas map[string]decimal.Decimal) error
}

// ItemRepositoryFacade combines all item-related repository interfaces.
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
	ItemStockSupport
}
