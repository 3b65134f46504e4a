package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/skyroute/skyroute/internal/domain"
)

// SaleRepo defines the persistence operations for Sales and their
// cancellation reasons.
type SaleRepo interface {
	// Create inserts a sale with status Active. The purchase timestamp is
	// set by the database clock and returned on the persisted record.
	Create(ctx context.Context, sale domain.Sale) (domain.Sale, error)

	// ListByCustomer returns the customer's sales with the given status,
	// most recent purchase first.
	ListByCustomer(ctx context.Context, nationalID string, status domain.SaleStatus) ([]domain.Sale, error)

	// Cancel flips an Active sale to Cancelled and records the reason, both
	// in one transaction. Returns domain.ErrNotFound when no Active sale
	// with that ID exists — already-cancelled sales do not match.
	Cancel(ctx context.Context, saleID uuid.UUID, reason string) error
}

// pgSaleRepo is the Postgres implementation of SaleRepo.
type pgSaleRepo struct {
	db db
}

// NewSaleRepo constructs a SaleRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback
// isolation.
func NewSaleRepo(db db) SaleRepo {
	return &pgSaleRepo{db: db}
}

const saleColumns = `id, purchased_at, destination_id, ticket_count, national_id, status`

// Create inserts a sale row; purchased_at defaults to now() in the schema.
func (r *pgSaleRepo) Create(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	const q = `
		INSERT INTO sales (destination_id, ticket_count, national_id)
		VALUES (@destination_id, @ticket_count, @national_id)
		RETURNING ` + saleColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"destination_id": sale.DestinationID,
		"ticket_count":   sale.TicketCount,
		"national_id":    sale.NationalID,
	})
	result, err := scanSale(row)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return domain.Sale{}, fmt.Errorf("repo.SaleRepo.Create: %w", domain.ErrNotFound)
		}
		return domain.Sale{}, fmt.Errorf("repo.SaleRepo.Create: %w", err)
	}
	return result, nil
}

// ListByCustomer returns sales for one customer filtered by status.
func (r *pgSaleRepo) ListByCustomer(ctx context.Context, nationalID string, status domain.SaleStatus) ([]domain.Sale, error) {
	const q = `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE national_id = @national_id AND status = @status
		ORDER BY purchased_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"national_id": nationalID, "status": status})
	if err != nil {
		return nil, fmt.Errorf("repo.SaleRepo.ListByCustomer: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.SaleRepo.ListByCustomer: scan: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.SaleRepo.ListByCustomer: rows: %w", err)
	}
	return sales, nil
}

// Cancel transitions the sale and records the reason in one transaction, so
// a cancelled sale always has its reason on file. The status predicate makes
// the transition one-way: a Cancelled sale never matches again.
func (r *pgSaleRepo) Cancel(ctx context.Context, saleID uuid.UUID, reason string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.SaleRepo.Cancel: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	const cancelSale = `
		UPDATE sales
		SET status = @cancelled
		WHERE id = @id AND status = @active`

	tag, err := tx.Exec(ctx, cancelSale, pgx.NamedArgs{
		"id":        saleID,
		"cancelled": domain.SaleCancelled,
		"active":    domain.SaleActive,
	})
	if err != nil {
		return fmt.Errorf("repo.SaleRepo.Cancel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.SaleRepo.Cancel: %w", domain.ErrNotFound)
	}

	const insertReason = `
		INSERT INTO cancellation_reasons (sale_id, reason)
		VALUES (@sale_id, @reason)`

	if _, err := tx.Exec(ctx, insertReason, pgx.NamedArgs{"sale_id": saleID, "reason": reason}); err != nil {
		return fmt.Errorf("repo.SaleRepo.Cancel: reason: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.SaleRepo.Cancel: commit: %w", err)
	}
	return nil
}

// scanSale maps a single database row into a domain.Sale.
func scanSale(s scanner) (domain.Sale, error) {
	var (
		sale   domain.Sale
		id     pgtype.UUID
		destID pgtype.UUID
	)
	err := s.Scan(&id, &sale.PurchasedAt, &destID, &sale.TicketCount, &sale.NationalID, &sale.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Sale{}, domain.ErrNotFound
		}
		return domain.Sale{}, err
	}
	sale.ID = uuid.UUID(id.Bytes)
	sale.DestinationID = uuid.UUID(destID.Bytes)
	return sale, nil
}
