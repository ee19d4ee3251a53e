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

const purchaseColumns = `purchase_id, purchase_number, vendor_id, purchase_date, subtotal, cgst_amount, sgst_amount, igst_amount, total_amount, notes, created_at`

type PgxPurchaseRepository struct {
	BaseRepository
	itemStock portsrepo.ItemStockSupport
}

// newPgxPurchaseRepository creates a new repository for purchase data.
func newPgxPurchaseRepository(pool *pgxpool.Pool, itemStock portsrepo.ItemStockSupport) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{BaseRepository{Pool: pool}, itemStock}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

// SavePurchase mirrors SaveInvoice: header, lines and stock adjustments land
// in one transaction with the item rows locked up front.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase, lines []domain.PurchaseItem, stockDeltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	itemIDs := make([]string, 0, len(stockDeltas))
	for itemID := range stockDeltas {
		itemIDs = append(itemIDs, itemID)
	}
	if _, err := r.itemStock.FindItemsByIDsForUpdate(ctx, tx, itemIDs); err != nil {
		return err
	}

	m := mapping.ToModelPurchase(purchase)
	headerQuery := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.PurchaseID,
		m.PurchaseNumber,
		m.VendorID,
		m.PurchaseDate,
		m.Subtotal,
		m.CGSTAmount,
		m.SGSTAmount,
		m.IGSTAmount,
		m.TotalAmount,
		nullString(m.Notes),
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: purchase number %s already exists", apperrors.ErrDuplicate, m.PurchaseNumber)
		}
		return apperrors.NewAppError(500, "failed to save purchase", err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO purchase_items (purchase_item_id, purchase_id, item_id, quantity, rate, tax_rate, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, line := range lines {
		lm := mapping.ToModelPurchaseItem(line)
		batch.Queue(lineQuery, lm.PurchaseItemID, lm.PurchaseID, lm.ItemID, lm.Quantity, lm.Rate, lm.TaxRate, lm.Amount)
	}
	br := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to save purchase line", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to flush purchase lines", err)
	}

	if err := r.itemStock.AdjustStockInTx(ctx, tx, stockDeltas); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE purchase_id = $1;`

	m, err := scanPurchase(r.Pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("purchase %s not found", purchaseID))
		}
		return nil, apperrors.NewAppError(500, "failed to find purchase", err)
	}

	purchase := mapping.ToDomainPurchase(m)
	return &purchase, nil
}

func (r *PgxPurchaseRepository) FindPurchaseItems(ctx context.Context, purchaseID string) ([]domain.PurchaseItem, error) {
	query := `
		SELECT purchase_item_id, purchase_id, item_id, quantity, rate, tax_rate, amount
		FROM purchase_items
		WHERE purchase_id = $1
		ORDER BY purchase_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, purchaseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find purchase items", err)
	}
	defer rows.Close()

	var ms []models.PurchaseItem
	for rows.Next() {
		var m models.PurchaseItem
		if err := rows.Scan(&m.PurchaseItemID, &m.PurchaseID, &m.ItemID, &m.Quantity, &m.Rate, &m.TaxRate, &m.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase item row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate purchase item rows", err)
	}
	return mapping.ToDomainPurchaseItemSlice(ms), nil
}

func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases ORDER BY created_at DESC, purchase_id DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list purchases", err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		m, err := scanPurchase(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase row", err)
		}
		purchases = append(purchases, mapping.ToDomainPurchase(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate purchase rows", err)
	}
	return purchases, nil
}

func (r *PgxPurchaseRepository) FindLatestPurchase(ctx context.Context) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases ORDER BY created_at DESC, purchase_id DESC LIMIT 1;`

	m, err := scanPurchase(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no purchases exist")
		}
		return nil, apperrors.NewAppError(500, "failed to find latest purchase", err)
	}

	purchase := mapping.ToDomainPurchase(m)
	return &purchase, nil
}

func (r *PgxPurchaseRepository) CountPurchases(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM purchases;`).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count purchases", err)
	}
	return count, nil
}

func (r *PgxPurchaseRepository) UpdatePurchase(ctx context.Context, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)

	tag, err := r.Pool.Exec(ctx, `UPDATE purchases SET notes = $2 WHERE purchase_id = $1;`, m.PurchaseID, nullString(m.Notes))
	if err != nil {
		return apperrors.NewAppError(500, "failed to update purchase", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("purchase %s not found", m.PurchaseID))
	}
	return nil
}

// DeletePurchase reverses the stock the purchase added and removes it,
// re-verifying under the transaction that it is still the latest purchase.
func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string, stockDeltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var latestID string
	err = tx.QueryRow(ctx, `SELECT purchase_id FROM purchases ORDER BY created_at DESC, purchase_id DESC LIMIT 1 FOR UPDATE;`).Scan(&latestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError(fmt.Sprintf("purchase %s not found", purchaseID))
		}
		return apperrors.NewAppError(500, "failed to verify latest purchase", err)
	}
	if latestID != purchaseID {
		return fmt.Errorf("%w: only the most recently created purchase can be deleted", apperrors.ErrConflict)
	}

	itemIDs := make([]string, 0, len(stockDeltas))
	for itemID := range stockDeltas {
		itemIDs = append(itemIDs, itemID)
	}
	if _, err := r.itemStock.FindItemsByIDsForUpdate(ctx, tx, itemIDs); err != nil {
		return err
	}
	if err := r.itemStock.AdjustStockInTx(ctx, tx, stockDeltas); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1;`, purchaseID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete purchase", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("purchase %s not found", purchaseID))
	}

	return r.Commit(ctx, tx)
}

func scanPurchase(row pgx.Row) (models.Purchase, error) {
	var m models.Purchase
	var notes sql.NullString
	err := row.Scan(
		&m.PurchaseID,
		&m.PurchaseNumber,
		&m.VendorID,
		&m.PurchaseDate,
		&m.Subtotal,
		&m.CGSTAmount,
		&m.SGSTAmount,
		&m.IGSTAmount,
		&m.TotalAmount,
		&notes,
		&m.CreatedAt,
	)
	if err != nil {
		return m, err
	}
	m.Notes = notes.String
	return m, nil
}
