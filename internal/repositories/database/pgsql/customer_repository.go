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

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)

	query := `
		INSERT INTO customers (customer_id, name, address, gstin, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		nullString(m.Address),
		nullString(m.GSTIN),
		nullString(m.Phone),
		nullString(m.Email),
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: customer %s already exists", apperrors.ErrDuplicate, m.CustomerID)
		}
		return apperrors.NewAppError(500, "failed to save customer", err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, address, gstin, phone, email, created_at
		FROM customers
		WHERE customer_id = $1;
	`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("customer %s not found", customerID))
		}
		return nil, apperrors.NewAppError(500, "failed to find customer", err)
	}

	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT customer_id, name, address, gstin, phone, email, created_at
		FROM customers
		ORDER BY created_at DESC, customer_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list customers", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan customer row", err)
		}
		customers = append(customers, mapping.ToDomainCustomer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate customer rows", err)
	}
	return customers, nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)

	query := `
		UPDATE customers
		SET name = $2, address = $3, gstin = $4, phone = $5, email = $6
		WHERE customer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		nullString(m.Address),
		nullString(m.GSTIN),
		nullString(m.Phone),
		nullString(m.Email),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("customer %s not found", m.CustomerID))
	}
	return nil
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("customer %s not found", customerID))
	}
	return nil
}

// scanCustomer reads one customer row, mapping NULL text columns to "".
func scanCustomer(row pgx.Row) (models.Customer, error) {
	var m models.Customer
	var address, gstin, phone, email sql.NullString
	err := row.Scan(&m.CustomerID, &m.Name, &address, &gstin, &phone, &email, &m.CreatedAt)
	if err != nil {
		return m, err
	}
	m.Address = address.String
	m.GSTIN = gstin.String
	m.Phone = phone.String
	m.Email = email.String
	return m, nil
}
