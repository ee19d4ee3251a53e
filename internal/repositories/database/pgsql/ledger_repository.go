package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Yeldokv/Finora/internal/apperrors"
	"github.com/Yeldokv/Finora/internal/core/domain"
	portsrepo "github.com/Yeldokv/Finora/internal/core/ports/repositories"
	"github.com/Yeldokv/Finora/internal/models"
	"github.com/Yeldokv/Finora/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the manual ledger.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func (r *PgxLedgerRepository) SaveLedgerEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)

	query := `
		INSERT INTO ledger_entries (entry_id, entry_date, description, debit_account, credit_account, amount, reference_type, reference_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.EntryDate,
		m.Description,
		m.DebitAccount,
		m.CreditAccount,
		m.Amount,
		nullString(m.ReferenceType),
		nullString(m.ReferenceID),
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ledger entry %s already exists", apperrors.ErrDuplicate, m.EntryID)
		}
		return apperrors.NewAppError(500, "failed to save ledger entry", err)
	}
	return nil
}

func (r *PgxLedgerRepository) ListLedgerEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	query := `
		SELECT entry_id, entry_date, description, debit_account, credit_account, amount, reference_type, reference_id, created_at
		FROM ledger_entries
		ORDER BY entry_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list ledger entries", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var m models.LedgerEntry
		var refType, refID sql.NullString
		err := rows.Scan(
			&m.EntryID,
			&m.EntryDate,
			&m.Description,
			&m.DebitAccount,
			&m.CreditAccount,
			&m.Amount,
			&refType,
			&refID,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		m.ReferenceType = refType.String
		m.ReferenceID = refID.String
		entries = append(entries, mapping.ToDomainLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate ledger entry rows", err)
	}
	return entries, nil
}
