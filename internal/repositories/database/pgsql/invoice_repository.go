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

const invoiceColumns = `invoice_id, invoice_number, customer_id, invoice_date, due_date, subtotal, cgst_amount, sgst_amount, igst_amount, total_amount, status, notes, created_at`

type PgxInvoiceRepository struct {
	BaseRepository
	itemStock portsrepo.ItemStockSupport
}

// newPgxInvoiceRepository creates a new repository for invoice data. Stock
// mutations run through itemStock so invoices and purchases share one
// adjustment path.
func newPgxInvoiceRepository(pool *pgxpool.Pool, itemStock portsrepo.ItemStockSupport) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository{Pool: pool}, itemStock}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// SaveInvoice writes the header, the lines and the stock adjustments in one
// transaction. Item rows are locked first so concurrent documents touching
// the same items serialize instead of racing the stock update.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, lines []domain.InvoiceItem, stockDeltas map[string]decimal.Decimal) error {
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

	m := mapping.ToModelInvoice(invoice)
	headerQuery := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.InvoiceID,
		m.InvoiceNumber,
		m.CustomerID,
		m.InvoiceDate,
		m.DueDate,
		m.Subtotal,
		m.CGSTAmount,
		m.SGSTAmount,
		m.IGSTAmount,
		m.TotalAmount,
		m.Status,
		nullString(m.Notes),
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice number %s already exists", apperrors.ErrDuplicate, m.InvoiceNumber)
		}
		return apperrors.NewAppError(500, "failed to save invoice", err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO invoice_items (invoice_item_id, invoice_id, item_id, quantity, rate, tax_rate, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, line := range lines {
		lm := mapping.ToModelInvoiceItem(line)
		batch.Queue(lineQuery, lm.InvoiceItemID, lm.InvoiceID, lm.ItemID, lm.Quantity, lm.Rate, lm.TaxRate, lm.Amount)
	}
	br := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to save invoice line", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to flush invoice lines", err)
	}

	if err := r.itemStock.AdjustStockInTx(ctx, tx, stockDeltas); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`

	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("invoice %s not found", invoiceID))
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice", err)
	}

	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

func (r *PgxInvoiceRepository) FindInvoiceItems(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	query := `
		SELECT invoice_item_id, invoice_id, item_id, quantity, rate, tax_rate, amount
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY invoice_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find invoice items", err)
	}
	defer rows.Close()

	var ms []models.InvoiceItem
	for rows.Next() {
		var m models.InvoiceItem
		if err := rows.Scan(&m.InvoiceItemID, &m.InvoiceID, &m.ItemID, &m.Quantity, &m.Rate, &m.TaxRate, &m.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice item row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate invoice item rows", err)
	}
	return mapping.ToDomainInvoiceItemSlice(ms), nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC, invoice_id DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list invoices", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate invoice rows", err)
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) FindLatestInvoice(ctx context.Context) (*domain.Invoice, error) {
	// invoice_id breaks ties between invoices created in the same instant.
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC, invoice_id DESC LIMIT 1;`

	m, err := scanInvoice(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no invoices exist")
		}
		return nil, apperrors.NewAppError(500, "failed to find latest invoice", err)
	}

	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

func (r *PgxInvoiceRepository) CountInvoices(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices;`).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count invoices", err)
	}
	return count, nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)

	query := `
		UPDATE invoices
		SET status = $2, notes = $3, due_date = $4
		WHERE invoice_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.InvoiceID, m.Status, nullString(m.Notes), m.DueDate)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("invoice %s not found", m.InvoiceID))
	}
	return nil
}

// DeleteInvoice reverses the stock consumption and removes the invoice in one
// transaction. The latest-invoice check is repeated here under the
// transaction because the service-level check can go stale between request
// validation and commit.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string, stockDeltas map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var latestID string
	err = tx.QueryRow(ctx, `SELECT invoice_id FROM invoices ORDER BY created_at DESC, invoice_id DESC LIMIT 1 FOR UPDATE;`).Scan(&latestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError(fmt.Sprintf("invoice %s not found", invoiceID))
		}
		return apperrors.NewAppError(500, "failed to verify latest invoice", err)
	}
	if latestID != invoiceID {
		return fmt.Errorf("%w: only the most recently created invoice can be deleted", apperrors.ErrConflict)
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

	// Lines go with the header via ON DELETE CASCADE.
	tag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("invoice %s not found", invoiceID))
	}

	return r.Commit(ctx, tx)
}

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	var dueDate sql.NullTime
	var notes sql.NullString
	err := row.Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.CustomerID,
		&m.InvoiceDate,
		&dueDate,
		&m.Subtotal,
		&m.CGSTAmount,
		&m.SGSTAmount,
		&m.IGSTAmount,
		&m.TotalAmount,
		&m.Status,
		&notes,
		&m.CreatedAt,
	)
	if err != nil {
		return m, err
	}
	if dueDate.Valid {
		t := dueDate.Time
		m.DueDate = &t
	}
	m.Notes = notes.String
	return m, nil
}
