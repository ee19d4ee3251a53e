package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Yeldokv/Finora/internal/apperrors"
	"github.com/Yeldokv/Finora/internal/core/domain"
	portsrepo "github.com/Yeldokv/Finora/internal/core/ports/repositories"
	"github.com/Yeldokv/Finora/internal/models"
	"github.com/Yeldokv/Finora/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const itemColumns = `item_id, name, hsn, unit, rate, tax_rate, opening_stock, current_stock, minimum_stock, created_at`

type PgxItemRepository struct {
	BaseRepository
}

// newPgxItemRepository creates a new repository for inventory item data.
func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepositoryFacade {
	return &PgxItemRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	m := mapping.ToModelItem(item)

	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.Name,
		nullString(m.HSN),
		m.Unit,
		m.Rate,
		m.TaxRate,
		m.OpeningStock,
		m.CurrentStock,
		m.MinimumStock,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: item %s already exists", apperrors.ErrDuplicate, m.ItemID)
		}
		return apperrors.NewAppError(500, "failed to save item", err)
	}
	return nil
}

func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = $1;`

	m, err := scanItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("item %s not found", itemID))
		}
		return nil, apperrors.NewAppError(500, "failed to find item", err)
	}

	item := mapping.ToDomainItem(m)
	return &item, nil
}

func (r *PgxItemRepository) FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.Item, error) {
	if len(itemIDs) == 0 {
		return map[string]domain.Item{}, nil
	}

	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find items by IDs", err)
	}
	defer rows.Close()

	return collectItemMap(rows)
}

func (r *PgxItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC, item_id DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list items", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

func (r *PgxItemRepository) ListLowStockItems(ctx context.Context) ([]domain.Item, error) {
	// The boundary is inclusive: an item sitting exactly at its minimum
	// already needs reordering.
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE current_stock <= minimum_stock
		ORDER BY current_stock ASC, item_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list low stock items", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	m := mapping.ToModelItem(item)

	query := `
		UPDATE items
		SET name = $2, hsn = $3, unit = $4, rate = $5, tax_rate = $6, current_stock = $7, minimum_stock = $8
		WHERE item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.Name,
		nullString(m.HSN),
		m.Unit,
		m.Rate,
		m.TaxRate,
		m.CurrentStock,
		m.MinimumStock,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("item %s not found", m.ItemID))
	}
	return nil
}

func (r *PgxItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM items WHERE item_id = $1;`, itemID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("item %s not found", itemID))
	}
	return nil
}

// FindItemsByIDsForUpdate locks the item rows for the rest of the enclosing
// transaction so concurrent document writes against the same items serialize.
func (r *PgxItemRepository) FindItemsByIDsForUpdate(ctx context.Context, tx pgx.Tx, itemIDs []string) (map[string]domain.Item, error) {
	if len(itemIDs) == 0 {
		return map[string]domain.Item{}, nil
	}

	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id = ANY($1) FOR UPDATE;`
	rows, err := tx.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock items for update", err)
	}
	defer rows.Close()

	return collectItemMap(rows)
}

// AdjustStockInTx applies current_stock += delta per item inside the given
// transaction. Stock may go negative; the business does not block sales on
// bookkeeping gaps.
func (r *PgxItemRepository) AdjustStockInTx(ctx context.Context, tx pgx.Tx, stockDeltas map[string]decimal.Decimal) error {
	batch := &pgx.Batch{}
	itemIDs := make([]string, 0, len(stockDeltas))
	for itemID, delta := range stockDeltas {
		batch.Queue(`UPDATE items SET current_stock = current_stock + $1 WHERE item_id = $2;`, delta, itemID)
		itemIDs = append(itemIDs, itemID)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for _, itemID := range itemIDs {
		tag, err := br.Exec()
		if err != nil {
			return apperrors.NewAppError(500, fmt.Sprintf("failed to adjust stock for item %s", itemID), err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("item %s not found during stock adjustment", itemID))
		}
	}
	return nil
}

func scanItem(row pgx.Row) (models.Item, error) {
	var m models.Item
	var hsn sql.NullString
	err := row.Scan(
		&m.ItemID,
		&m.Name,
		&hsn,
		&m.Unit,
		&m.Rate,
		&m.TaxRate,
		&m.OpeningStock,
		&m.CurrentStock,
		&m.MinimumStock,
		&m.CreatedAt,
	)
	if err != nil {
		return m, err
	}
	m.HSN = hsn.String
	return m, nil
}

func collectItems(rows pgx.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item row", err)
		}
		items = append(items, mapping.ToDomainItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate item rows", err)
	}
	return items, nil
}

func collectItemMap(rows pgx.Rows) (map[string]domain.Item, error) {
	items := make(map[string]domain.Item)
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item row", err)
		}
		items[m.ItemID] = mapping.ToDomainItem(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate item rows", err)
	}
	return items, nil
}
