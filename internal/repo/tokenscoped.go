package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/motorlane/backend/internal/domain"
)

// TokenScopedRepo defines the persistence operations shared by every
// capability-token-scoped collection (bookmarks, bookings). The record type
// parameter is a pointer type embedding domain.TokenRecord.
type TokenScopedRepo[T domain.TokenScoped] interface {
	// Insert persists a new record and returns it with the DB-generated id
	// and created_at populated. The embedded Vehicle is NOT loaded here —
	// the caller already holds it from the referential check.
	Insert(ctx context.Context, rec T) (T, error)

	// ListByToken returns all records created under the given token, newest
	// first, with each record's Vehicle loaded eagerly in the same query.
	ListByToken(ctx context.Context, tok string) ([]T, error)

	// Delete removes a record by primary key.
	// Returns domain.ErrNotFound if no record with that ID exists.
	Delete(ctx context.Context, id int64) error
}

// tokenScopedSQL bundles the per-table SQL and row mapping that specialise
// the generic Postgres implementation for one record type. The queries carry
// table-specific column lists, so each collection supplies its own; the
// control flow around them is identical and lives in pgTokenScopedRepo.
type tokenScopedSQL[T domain.TokenScoped] struct {
	// name appears in wrapped error messages, e.g. "BookmarkRepo".
	name string

	// insert must RETURNING the record's own columns (not the vehicle's).
	insert string
	// list must select the record's columns followed by the joined vehicle
	// columns, filtered by a @token named argument, newest first.
	list string
	// delete must remove by @id.
	delete string

	// insertArgs extracts the named arguments for the insert statement.
	insertArgs func(T) pgx.NamedArgs
	// scan maps an insert/RETURNING row.
	scan func(scanner) (T, error)
	// scanJoined maps a list row including the joined vehicle columns.
	scanJoined func(scanner) (T, error)
}

// pgTokenScopedRepo is the Postgres implementation of TokenScopedRepo,
// generic over the record type. Instantiate it via NewBookmarkRepo or
// NewBookingRepo rather than directly.
type pgTokenScopedRepo[T domain.TokenScoped] struct {
	db  db
	sql tokenScopedSQL[T]
}

func (r *pgTokenScopedRepo[T]) Insert(ctx context.Context, rec T) (T, error) {
	var zero T

	row := r.db.QueryRow(ctx, r.sql.insert, r.sql.insertArgs(rec))
	result, err := r.sql.scan(row)
	if err != nil {
		return zero, fmt.Errorf("repo.%s.Insert: %w", r.sql.name, err)
	}
	return result, nil
}

func (r *pgTokenScopedRepo[T]) ListByToken(ctx context.Context, tok string) ([]T, error) {
	rows, err := r.db.Query(ctx, r.sql.list, pgx.NamedArgs{"token": tok})
	if err != nil {
		return nil, fmt.Errorf("repo.%s.ListByToken: %w", r.sql.name, err)
	}
	defer rows.Close()

	var records []T
	for rows.Next() {
		rec, err := r.sql.scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.%s.ListByToken: scan: %w", r.sql.name, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.%s.ListByToken: rows: %w", r.sql.name, err)
	}

	return records, nil
}

func (r *pgTokenScopedRepo[T]) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, r.sql.delete, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.%s.Delete: %w", r.sql.name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.%s.Delete: %w", r.sql.name, domain.ErrNotFound)
	}
	return nil
}

// notFoundOnNoRows maps pgx.ErrNoRows to domain.ErrNotFound and passes every
// other error through. Shared by the per-collection scan functions.
func notFoundOnNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
