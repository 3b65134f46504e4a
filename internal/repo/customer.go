// Package repo contains all database access logic for the SkyRoute records
// system. Each resource has its own file with an interface and a Postgres
// implementation. No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/skyroute/skyroute/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
// Begin is included because several operations here are multi-statement and
// must commit or roll back as a unit (pgx.Tx implements it via savepoints).
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// Postgres error codes for constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// isPgError reports whether err is a Postgres error with the given SQLSTATE code.
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// CustomerRepo defines the persistence operations for Customers and their
// phone numbers. The service layer depends on this interface, not the
// concrete Postgres implementation, which allows the service to be
// unit-tested with a mock.
type CustomerRepo interface {
	// Create inserts a new customer and their phone number in one
	// transaction — both rows or neither. Returns domain.ErrConflict when
	// the national ID is already registered.
	Create(ctx context.Context, c domain.Customer, phone string) (domain.Customer, error)

	// GetByID retrieves a single customer by national ID.
	// Returns domain.ErrNotFound if no customer with that ID exists.
	GetByID(ctx context.Context, nationalID string) (domain.Customer, error)

	// List returns the customer directory joined with phone numbers,
	// ordered by surname then name. Inner join: a customer row without a
	// phone row would be omitted.
	List(ctx context.Context) ([]domain.CustomerListing, error)

	// UpdateField overwrites one attribute of an existing customer and
	// returns the updated record. Returns domain.ErrNotFound if no customer
	// matches, domain.ErrConflict when a national ID change collides with
	// an existing customer.
	UpdateField(ctx context.Context, nationalID string, field domain.CustomerField, value string) (domain.Customer, error)

	// Deactivate sets the customer's status to Inactive. Repeated calls
	// succeed. Returns domain.ErrNotFound if no customer matches.
	Deactivate(ctx context.Context, nationalID string) error

	// Delete removes a customer permanently, cascading to their phones.
	// Returns domain.ErrNotFound if absent and domain.ErrConflict when
	// sales still reference the customer.
	Delete(ctx context.Context, nationalID string) error
}

// pgCustomerRepo is the Postgres implementation of CustomerRepo.
type pgCustomerRepo struct {
	db db
}

// NewCustomerRepo constructs a CustomerRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewCustomerRepo(db db) CustomerRepo {
	return &pgCustomerRepo{db: db}
}

// customerColumns is the SELECT/RETURNING column list shared by every
// customer query, in scanCustomer order.
const customerColumns = `national_id, name, surname, address, email, status, created_at, updated_at`

// Create inserts the customer row and the phone row in one transaction.
// Committing them separately could orphan a customer when the phone insert
// fails; here both succeed or neither does.
func (r *pgCustomerRepo) Create(ctx context.Context, c domain.Customer, phone string) (domain.Customer, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.Create: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	const insertCustomer = `
		INSERT INTO customers (national_id, name, surname, address, email)
		VALUES (@national_id, @name, @surname, @address, @email)
		RETURNING ` + customerColumns

	row := tx.QueryRow(ctx, insertCustomer, pgx.NamedArgs{
		"national_id": c.NationalID,
		"name":        c.Name,
		"surname":     c.Surname,
		"address":     c.Address,
		"email":       c.Email,
	})
	created, err := scanCustomer(row)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.Create: national ID already registered: %w", domain.ErrConflict)
		}
		return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.Create: %w", err)
	}

	const insertPhone = `
		INSERT INTO phones (phone, national_id)
		VALUES (@phone, @national_id)`

	if _, err := tx.Exec(ctx, insertPhone, pgx.NamedArgs{
		"phone":       phone,
		"national_id": created.NationalID,
	}); err != nil {
		return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.Create: phone: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.Create: commit: %w", err)
	}
	return created, nil
}

// GetByID retrieves a customer by national ID.
func (r *pgCustomerRepo) GetByID(ctx context.Context, nationalID string) (domain.Customer, error) {
	const q = `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE national_id = @national_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"national_id": nationalID})
	result, err := scanCustomer(row)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns the full directory joined with phones.
func (r *pgCustomerRepo) List(ctx context.Context) ([]domain.CustomerListing, error) {
	const q = `
		SELECT c.name, c.surname, c.national_id, c.email, c.address, p.phone, c.status
		FROM customers c
		JOIN phones p ON p.national_id = c.national_id
		ORDER BY c.surname, c.name, p.phone`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CustomerRepo.List: %w", err)
	}
	defer rows.Close()

	listings := []domain.CustomerListing{}
	for rows.Next() {
		var l domain.CustomerListing
		if err := rows.Scan(&l.Name, &l.Surname, &l.NationalID, &l.Email, &l.Address, &l.Phone, &l.Status); err != nil {
			return nil, fmt.Errorf("repo.CustomerRepo.List: scan: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CustomerRepo.List: rows: %w", err)
	}
	return listings, nil
}

// customerColumnFor maps an updatable field to its column name. The map is
// the whitelist that keeps user-supplied field names out of the SQL text.
var customerColumnFor = map[domain.CustomerField]string{
	domain.CustomerFieldName:       "name",
	domain.CustomerFieldSurname:    "surname",
	domain.CustomerFieldNationalID: "national_id",
	domain.CustomerFieldEmail:      "email",
	domain.CustomerFieldAddress:    "address",
}

// UpdateField overwrites a single column and returns the updated record.
func (r *pgCustomerRepo) UpdateField(ctx context.Context, nationalID string, field domain.CustomerField, value string) (domain.Customer, error) {
	col, ok := customerColumnFor[field]
	if !ok {
		return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.UpdateField: %w: field %q", domain.ErrValidation, field)
	}

	q := fmt.Sprintf(`
		UPDATE customers
		SET %s = @value, updated_at = now()
		WHERE national_id = @national_id
		RETURNING `+customerColumns, col)

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"value": value, "national_id": nationalID})
	result, err := scanCustomer(row)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.UpdateField: national ID already registered: %w", domain.ErrConflict)
		}
		return domain.Customer{}, fmt.Errorf("repo.CustomerRepo.UpdateField: %w", err)
	}
	return result, nil
}

// Deactivate flips the customer's status to Inactive. The statement matches
// rows regardless of current status, so re-deactivating succeeds.
func (r *pgCustomerRepo) Deactivate(ctx context.Context, nationalID string) error {
	const q = `
		UPDATE customers
		SET status = @status, updated_at = now()
		WHERE national_id = @national_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"status":      domain.CustomerInactive,
		"national_id": nationalID,
	})
	if err != nil {
		return fmt.Errorf("repo.CustomerRepo.Deactivate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CustomerRepo.Deactivate: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes a customer permanently. Phones cascade; sales do not —
// a customer with ledger history surfaces as a conflict instead.
func (r *pgCustomerRepo) Delete(ctx context.Context, nationalID string) error {
	const q = `DELETE FROM customers WHERE national_id = @national_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"national_id": nationalID})
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return fmt.Errorf("repo.CustomerRepo.Delete: customer has sales: %w", domain.ErrConflict)
		}
		return fmt.Errorf("repo.CustomerRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CustomerRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanCustomer maps a single database row into a domain.Customer.
func scanCustomer(s scanner) (domain.Customer, error) {
	var c domain.Customer
	err := s.Scan(&c.NationalID, &c.Name, &c.Surname, &c.Address, &c.Email, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Customer{}, domain.ErrNotFound
		}
		return domain.Customer{}, err
	}
	return c, nil
}
