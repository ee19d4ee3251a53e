package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yeldokv/Finora/internal/apperrors"
	"github.com/Yeldokv/Finora/internal/core/domain"
	portsrepo "github.com/Yeldokv/Finora/internal/core/ports/repositories"
	"github.com/Yeldokv/Finora/internal/models"
	"github.com/Yeldokv/Finora/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const financialYearColumns = `financial_year_id, name, start_date, end_date, is_active, created_at`

type PgxFinancialYearRepository struct {
	BaseRepository
}

// newPgxFinancialYearRepository creates a new repository for financial years.
func newPgxFinancialYearRepository(pool *pgxpool.Pool) portsrepo.FinancialYearRepositoryFacade {
	return &PgxFinancialYearRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.FinancialYearRepositoryFacade = (*PgxFinancialYearRepository)(nil)

// SaveFinancialYear inserts the year and, when it is active, deactivates all
// other years inside the same transaction so the single-active invariant
// cannot be observed broken.
func (r *PgxFinancialYearRepository) SaveFinancialYear(ctx context.Context, fy domain.FinancialYear) error {
	m := mapping.ToModelFinancialYear(fy)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if m.IsActive {
		if _, err := tx.Exec(ctx, `UPDATE financial_years SET is_active = FALSE WHERE is_active;`); err != nil {
			return apperrors.NewAppError(500, "failed to deactivate financial years", err)
		}
	}

	query := `
		INSERT INTO financial_years (` + financialYearColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, query, m.FinancialYearID, m.Name, m.StartDate, m.EndDate, m.IsActive, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: financial year %s already exists", apperrors.ErrDuplicate, m.Name)
		}
		return apperrors.NewAppError(500, "failed to save financial year", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxFinancialYearRepository) ListFinancialYears(ctx context.Context) ([]domain.FinancialYear, error) {
	query := `SELECT ` + financialYearColumns + ` FROM financial_years ORDER BY start_date DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list financial years", err)
	}
	defer rows.Close()

	var years []domain.FinancialYear
	for rows.Next() {
		var m models.FinancialYear
		if err := rows.Scan(&m.FinancialYearID, &m.Name, &m.StartDate, &m.EndDate, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan financial year row", err)
		}
		years = append(years, mapping.ToDomainFinancialYear(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate financial year rows", err)
	}
	return years, nil
}

func (r *PgxFinancialYearRepository) FindActiveFinancialYear(ctx context.Context) (*domain.FinancialYear, error) {
	query := `SELECT ` + financialYearColumns + ` FROM financial_years WHERE is_active LIMIT 1;`

	var m models.FinancialYear
	err := r.Pool.QueryRow(ctx, query).Scan(&m.FinancialYearID, &m.Name, &m.StartDate, &m.EndDate, &m.IsActive, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no active financial year")
		}
		return nil, apperrors.NewAppError(500, "failed to find active financial year", err)
	}

	fy := mapping.ToDomainFinancialYear(m)
	return &fy, nil
}
