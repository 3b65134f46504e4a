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

// DestinationRepo defines the persistence operations for Destinations and
// the City rows they reference.
type DestinationRepo interface {
	// Create resolves the city by exact (name, province, country) match,
	// inserting it with the given base cost when absent, then inserts a
	// destination referencing it — all in one transaction. When the city
	// already exists its identifier and stored cost are reused.
	Create(ctx context.Context, city domain.City) (domain.DestinationView, error)

	// GetByID retrieves one destination joined with its city.
	// Returns domain.ErrNotFound if no destination with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.DestinationView, error)

	// List returns all destinations joined with their cities, ordered by
	// country, province, city name.
	List(ctx context.Context) ([]domain.DestinationView, error)

	// Update overwrites one attribute of the destination's city row and
	// returns the refreshed view. text carries the value for the name
	// fields; cost carries it for baseCost. Returns domain.ErrNotFound if
	// the destination does not exist.
	Update(ctx context.Context, id uuid.UUID, field domain.DestinationField, text string, cost float64) (domain.DestinationView, error)

	// Delete removes the destination and, when no other destination still
	// references it, its city — both in one transaction. Returns
	// domain.ErrNotFound if the destination does not exist and
	// domain.ErrConflict when sales reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgDestinationRepo is the Postgres implementation of DestinationRepo.
type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

// destinationView is the join used by every read in this file.
const destinationView = `
	SELECT d.id, c.id, c.name, c.province, c.country, c.base_cost
	FROM destinations d
	JOIN cities c ON c.id = d.city_id`

// Create inserts the city if absent and the destination row in one
// transaction. The insert-if-absent runs through the UNIQUE constraint on
// (name, province, country), so two concurrent registrations of the same new
// city converge on a single row instead of racing a lookup-then-insert.
// The DO UPDATE SET trick forces the RETURNING clause to fire even when the
// conflict handler skips the insert; the existing base_cost is left intact.
func (r *pgDestinationRepo) Create(ctx context.Context, city domain.City) (domain.DestinationView, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.DestinationView{}, fmt.Errorf("repo.DestinationRepo.Create: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	const upsertCity = `
		INSERT INTO cities (name, province, country, base_cost)
		VALUES (@name, @province, @country, @base_cost)
		ON CONFLICT (name, province, country) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`

	var cityID pgtype.UUID
	err = tx.QueryRow(ctx, upsertCity, pgx.NamedArgs{
		"name":      city.Name,
		"province":  city.Province,
		"country":   city.Country,
		"base_cost": city.BaseCost,
	}).Scan(&cityID)
	if err != nil {
		return domain.DestinationView{}, fmt.Errorf("repo.DestinationRepo.Create: city: %w", err)
	}

	const insertDestination = `
		INSERT INTO destinations (city_id)
		VALUES (@city_id)
		RETURNING id`

	var destID pgtype.UUID
	err = tx.QueryRow(ctx, insertDestination, pgx.NamedArgs{"city_id": uuid.UUID(cityID.Bytes)}).Scan(&destID)
	if err != nil {
		return domain.DestinationView{}, fmt.Errorf("repo.DestinationRepo.Create: destination: %w", err)
	}

	row := tx.QueryRow(ctx, destinationView+` WHERE d.id = @id`, pgx.NamedArgs{"id": uuid.UUID(destID.Bytes)})
	view, err := scanDestinationView(row)
	if err != nil {
		return domain.DestinationView{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.DestinationView{}, fmt.Errorf("repo.DestinationRepo.Create: commit: %w", err)
	}
	return view, nil
}

// GetByID retrieves one destination joined with its city.
func (r *pgDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.DestinationView, error) {
	row := r.db.QueryRow(ctx, destinationView+` WHERE d.id = @id`, pgx.NamedArgs{"id": id})
	view, err := scanDestinationView(row)
	if err != nil {
		return domain.DestinationView{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return view, nil
}

// List returns all destinations joined with their cities.
func (r *pgDestinationRepo) List(ctx context.Context) ([]domain.DestinationView, error) {
	rows, err := r.db.Query(ctx, destinationView+` ORDER BY c.country, c.province, c.name`)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: %w", err)
	}
	defer rows.Close()

	views := []domain.DestinationView{}
	for rows.Next() {
		v, err := scanDestinationView(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DestinationRepo.List: scan: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: rows: %w", err)
	}
	return views, nil
}

// cityColumnFor maps an updatable field to its column on cities. The map is
// the whitelist that keeps user-supplied field names out of the SQL text.
var cityColumnFor = map[domain.DestinationField]string{
	domain.DestinationFieldCity:     "name",
	domain.DestinationFieldProvince: "province",
	domain.DestinationFieldCountry:  "country",
	domain.DestinationFieldBaseCost: "base_cost",
}

// Update mutates the city row behind the destination. Every destination
// sharing that city sees the change.
func (r *pgDestinationRepo) Update(ctx context.Context, id uuid.UUID, field domain.DestinationField, text string, cost float64) (domain.DestinationView, error) {
	col, ok := cityColumnFor[field]
	if !ok {
		return domain.DestinationView{}, fmt.Errorf("repo.DestinationRepo.Update: %w: field %q", domain.ErrValidation, field)
	}

	var value any = text
	if field == domain.DestinationFieldBaseCost {
		value = cost
	}

	q := fmt.Sprintf(`
		UPDATE cities
		SET %s = @value
		FROM destinations d
		WHERE d.id = @id AND cities.id = d.city_id`, col)

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"value": value, "id": id})
	if err != nil {
		return domain.DestinationView{}, fmt.Errorf("repo.DestinationRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.DestinationView{}, fmt.Errorf("repo.DestinationRepo.Update: %w", domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// Delete removes the destination and then the city, but only when the city
// is no longer referenced by any other destination. An unconditional city
// delete would break destinations that share it.
func (r *pgDestinationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.DestinationRepo.Delete: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	const deleteDestination = `
		DELETE FROM destinations
		WHERE id = @id
		RETURNING city_id`

	var cityID pgtype.UUID
	err = tx.QueryRow(ctx, deleteDestination, pgx.NamedArgs{"id": id}).Scan(&cityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("repo.DestinationRepo.Delete: %w", domain.ErrNotFound)
		}
		if isPgError(err, pgForeignKeyViolation) {
			return fmt.Errorf("repo.DestinationRepo.Delete: destination has sales: %w", domain.ErrConflict)
		}
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", err)
	}

	const deleteCity = `
		DELETE FROM cities
		WHERE id = @city_id
		  AND NOT EXISTS (SELECT 1 FROM destinations WHERE city_id = @city_id)`

	if _, err := tx.Exec(ctx, deleteCity, pgx.NamedArgs{"city_id": uuid.UUID(cityID.Bytes)}); err != nil {
		return fmt.Errorf("repo.DestinationRepo.Delete: city: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.DestinationRepo.Delete: commit: %w", err)
	}
	return nil
}

// scanDestinationView maps a joined destination/city row.
func scanDestinationView(s scanner) (domain.DestinationView, error) {
	var (
		v      domain.DestinationView
		id     pgtype.UUID
		cityID pgtype.UUID
	)
	err := s.Scan(&id, &cityID, &v.City, &v.Province, &v.Country, &v.BaseCost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DestinationView{}, domain.ErrNotFound
		}
		return domain.DestinationView{}, err
	}
	v.ID = uuid.UUID(id.Bytes)
	v.CityID = uuid.UUID(cityID.Bytes)
	return v, nil
}
