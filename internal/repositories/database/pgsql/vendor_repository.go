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
)

type PgxVendorRepository struct {
	BaseRepository
}

// newPgxVendorRepository creates a new repository for vendor data.
func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)

	query := `
		INSERT INTO vendors (vendor_id, name, address, gstin, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.VendorID,
		m.Name,
		nullString(m.Address),
		nullString(m.GSTIN),
		nullString(m.Phone),
		nullString(m.Email),
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: vendor %s already exists", apperrors.ErrDuplicate, m.VendorID)
		}
		return apperrors.NewAppError(500, "failed to save vendor", err)
	}
	return nil
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `
		SELECT vendor_id, name, address, gstin, phone, email, created_at
		FROM vendors
		WHERE vendor_id = $1;
	`
	m, err := scanVendor(r.Pool.QueryRow(ctx, query, vendorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("vendor %s not found", vendorID))
		}
		return nil, apperrors.NewAppError(500, "failed to find vendor", err)
	}

	vendor := mapping.ToDomainVendor(m)
	return &vendor, nil
}

func (r *PgxVendorRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	query := `
		SELECT vendor_id, name, address, gstin, phone, email, created_at
		FROM vendors
		ORDER BY created_at DESC, vendor_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list vendors", err)
	}
	defer rows.Close()

	var vendors []domain.Vendor
	for rows.Next() {
		m, err := scanVendor(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan vendor row", err)
		}
		vendors = append(vendors, mapping.ToDomainVendor(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate vendor rows", err)
	}
	return vendors, nil
}

func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	m := mapping.ToModelVendor(vendor)

	query := `
		UPDATE vendors
		SET name = $2, address = $3, gstin = $4, phone = $5, email = $6
		WHERE vendor_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.VendorID,
		m.Name,
		nullString(m.Address),
		nullString(m.GSTIN),
		nullString(m.Phone),
		nullString(m.Email),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update vendor", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("vendor %s not found", m.VendorID))
	}
	return nil
}

func (r *PgxVendorRepository) DeleteVendor(ctx context.Context, vendorID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vendors WHERE vendor_id = $1;`, vendorID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete vendor", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("vendor %s not found", vendorID))
	}
	return nil
}

func scanVendor(row pgx.Row) (models.Vendor, error) {
	var m models.Vendor
	var address, gstin, phone, email sql.NullString
	err := row.Scan(&m.VendorID, &m.Name, &address, &gstin, &phone, &email, &m.CreatedAt)
	if err != nil {
		return m, err
	}
	m.Address = address.String
	m.GSTIN = gstin.String
	m.Phone = phone.String
	m.Email = email.String
	return m, nil
}
