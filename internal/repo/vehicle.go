// Package repo contains all database access logic for the Motorlane API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/motorlane/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// VehicleRepo defines the persistence operations for the vehicle catalog.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type VehicleRepo interface {
	// Create inserts a new vehicle and returns the persisted record (with
	// DB-generated id and created_at populated).
	Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)

	// GetByID retrieves a single vehicle by primary key.
	// Returns domain.ErrNotFound if no vehicle with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Vehicle, error)

	// List returns all vehicles matching every present filter predicate,
	// newest first. Absent predicates (zero values) are not applied.
	List(ctx context.Context, f domain.VehicleFilter) ([]domain.Vehicle, error)

	// Summary returns per-brand vehicle counts, ordered alphabetically by brand.
	Summary(ctx context.Context) ([]domain.BrandCount, error)

	// Count returns the total number of vehicles in the catalog.
	Count(ctx context.Context) (int64, error)

	// DeleteAll removes every vehicle (bookmarks and bookings cascade away)
	// and returns the number of vehicles deleted.
	DeleteAll(ctx context.Context) (int64, error)
}

// pgVehicleRepo is the Postgres implementation of VehicleRepo.
type pgVehicleRepo struct {
	db db
}

// NewVehicleRepo constructs a VehicleRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewVehicleRepo(db db) VehicleRepo {
	return &pgVehicleRepo{db: db}
}

// Create inserts a new vehicle row and returns the full persisted record.
func (r *pgVehicleRepo) Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	const q = `
		INSERT INTO vehicles (brand, name, price, fuel_type, image_url, description)
		VALUES (@brand, @name, @price, @fuel_type, @image_url, @description)
		RETURNING id, brand, name, price, fuel_type, image_url, description, created_at`

	args := pgx.NamedArgs{
		"brand":       v.Brand,
		"name":        v.Name,
		"price":       v.Price,
		"fuel_type":   v.FuelType,
		"image_url":   v.ImageURL,
		"description": v.Description,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVehicle(row)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a vehicle by primary key.
func (r *pgVehicleRepo) GetByID(ctx context.Context, id int64) (domain.Vehicle, error) {
	const q = `
		SELECT id, brand, name, price, fuel_type, image_url, description, created_at
		FROM vehicles
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanVehicle(row)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns vehicles matching the filter, ordered by created_at descending.
// The WHERE clause is assembled from only the predicates that are present;
// an empty filter lists the whole catalog. The secondary id ordering makes
// results deterministic when several rows share a creation timestamp.
func (r *pgVehicleRepo) List(ctx context.Context, f domain.VehicleFilter) ([]domain.Vehicle, error) {
	q := `
		SELECT id, brand, name, price, fuel_type, image_url, description, created_at
		FROM vehicles`

	var conds []string
	args := pgx.NamedArgs{}

	if f.Brand != "" {
		conds = append(conds, "brand = @brand")
		args["brand"] = f.Brand
	}
	if f.FuelType != "" {
		conds = append(conds, "fuel_type = @fuel_type")
		args["fuel_type"] = f.FuelType
	}
	if f.MinPrice != nil {
		conds = append(conds, "price >= @min_price")
		args["min_price"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		conds = append(conds, "price <= @max_price")
		args["max_price"] = *f.MaxPrice
	}

	if len(conds) > 0 {
		q += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	q += "\n\t\tORDER BY created_at DESC, id DESC"

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.List: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VehicleRepo.List: scan: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.List: rows: %w", err)
	}

	return vehicles, nil
}

// Summary groups the whole catalog by brand and counts each group.
func (r *pgVehicleRepo) Summary(ctx context.Context) ([]domain.BrandCount, error) {
	const q = `
		SELECT brand, COUNT(id) AS total
		FROM vehicles
		GROUP BY brand
		ORDER BY brand`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.Summary: %w", err)
	}
	defer rows.Close()

	var counts []domain.BrandCount
	for rows.Next() {
		var c domain.BrandCount
		if err := rows.Scan(&c.Brand, &c.Total); err != nil {
			return nil, fmt.Errorf("repo.VehicleRepo.Summary: scan: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.Summary: rows: %w", err)
	}

	return counts, nil
}

// Count returns the total number of vehicles.
func (r *pgVehicleRepo) Count(ctx context.Context) (int64, error) {
	const q = `SELECT COUNT(*) FROM vehicles`

	var n int64
	if err := r.db.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.VehicleRepo.Count: %w", err)
	}
	return n, nil
}

// DeleteAll removes every vehicle. Dependent bookmarks and bookings are
// removed by the ON DELETE CASCADE foreign keys.
func (r *pgVehicleRepo) DeleteAll(ctx context.Context) (int64, error) {
	const q = `DELETE FROM vehicles`

	tag, err := r.db.Exec(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("repo.VehicleRepo.DeleteAll: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanVehicle maps a single database row into a domain.Vehicle.
func scanVehicle(s scanner) (domain.Vehicle, error) {
	var v domain.Vehicle
	err := s.Scan(&v.ID, &v.Brand, &v.Name, &v.Price, &v.FuelType, &v.ImageURL, &v.Description, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Vehicle{}, domain.ErrNotFound
		}
		return domain.Vehicle{}, err
	}
	return v, nil
}
