package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/motorlane/backend/internal/domain"
	"github.com/motorlane/backend/internal/repo"
)

// CollectionService implements the capability-token collection pattern once,
// generically: create a record under a token, list everything the token
// groups, delete by id. Bookmarks and bookings are both instances of it —
// see NewBookmarkService and NewBookingService.
//
// The token is the entire authorization model. Whoever knows it can read and
// extend the group; nobody else can even learn the group exists.
type CollectionService[T domain.TokenScoped] struct {
	// name appears in wrapped error messages, e.g. "BookmarkService".
	name     string
	vehicles repo.VehicleRepo
	records  repo.TokenScopedRepo[T]
	newToken func() string
	// validate holds per-collection business rules; nil means none.
	validate func(T) error
}

// Create persists a new record in the collection.
//
// The referenced vehicle is looked up first so a dangling reference surfaces
// as a clear domain.ErrValidation ("vehicle does not exist") instead of a raw
// foreign key violation from the storage layer. The lookup also supplies the
// full vehicle embedded in the returned record.
//
// A token supplied by the caller is trusted and stored verbatim — that is how
// clients group several creates under one token. When no token is supplied a
// fresh one is generated and returned with the record.
func (s *CollectionService[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T

	if s.validate != nil {
		if err := s.validate(rec); err != nil {
			return zero, err
		}
	}

	base := rec.Base()
	vehicle, err := s.vehicles.GetByID(ctx, base.VehicleID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return zero, fmt.Errorf("%w: vehicle does not exist", domain.ErrValidation)
		}
		return zero, fmt.Errorf("service.%s.Create: %w", s.name, err)
	}

	if base.Token == "" {
		base.Token = s.newToken()
	}

	created, err := s.records.Insert(ctx, rec)
	if err != nil {
		return zero, fmt.Errorf("service.%s.Create: %w", s.name, err)
	}
	created.Base().Vehicle = vehicle
	return created, nil
}

// ListByToken returns all records grouped under the token, newest first.
//
// A missing or empty token always yields an empty slice without touching
// storage. This is the security boundary of the whole pattern: since token
// knowledge is the only authorization check, an absent token must never fall
// through to "list everything".
func (s *CollectionService[T]) ListByToken(ctx context.Context, tok string) ([]T, error) {
	if tok == "" {
		return []T{}, nil
	}
	records, err := s.records.ListByToken(ctx, tok)
	if err != nil {
		return nil, fmt.Errorf("service.%s.ListByToken: %w", s.name, err)
	}
	if records == nil {
		return []T{}, nil
	}
	return records, nil
}

// Delete removes a record by id with no token check: possession of the id is
// the only authorization. The asymmetry with Create/ListByToken is a
// deliberate design decision, not an oversight — ids are only ever disclosed
// in responses to callers who already held the token.
// Returns domain.ErrNotFound if no record with that ID exists.
func (s *CollectionService[T]) Delete(ctx context.Context, id int64) error {
	if err := s.records.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.%s.Delete: %w", s.name, err)
	}
	return nil
}
