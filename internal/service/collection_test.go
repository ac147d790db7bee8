package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorlane/backend/internal/domain"
	"github.com/motorlane/backend/internal/repo"
	"github.com/motorlane/backend/internal/service"
)

// mockTokenScopedRepo is a generic test double for repo.TokenScopedRepo.
// Set only the method fields your test needs.
type mockTokenScopedRepo[T domain.TokenScoped] struct {
	insert      func(ctx context.Context, rec T) (T, error)
	listByToken func(ctx context.Context, tok string) ([]T, error)
	delete      func(ctx context.Context, id int64) error
}

func (m *mockTokenScopedRepo[T]) Insert(ctx context.Context, rec T) (T, error) {
	return m.insert(ctx, rec)
}
func (m *mockTokenScopedRepo[T]) ListByToken(ctx context.Context, tok string) ([]T, error) {
	return m.listByToken(ctx, tok)
}
func (m *mockTokenScopedRepo[T]) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// compile-time check: the mock must satisfy the repo interface for both
// collection instances.
var (
	_ repo.TokenScopedRepo[*domain.Bookmark] = (*mockTokenScopedRepo[*domain.Bookmark])(nil)
	_ repo.TokenScopedRepo[*domain.Booking]  = (*mockTokenScopedRepo[*domain.Booking])(nil)
)

// ---- helpers ---------------------------------------------------------------

// vehicleLookup returns a vehicle repo whose GetByID always finds the given
// vehicle. Only getByID is set — the collection service must not touch
// anything else.
func vehicleLookup(v domain.Vehicle) *mockVehicleRepo {
	return &mockVehicleRepo{
		getByID: func(_ context.Context, id int64) (domain.Vehicle, error) {
			if id != v.ID {
				return domain.Vehicle{}, domain.ErrNotFound
			}
			return v, nil
		},
	}
}

// echoBookmarkRepo echoes inserted bookmarks back with a DB-style id assigned.
func echoBookmarkRepo() *mockTokenScopedRepo[*domain.Bookmark] {
	return &mockTokenScopedRepo[*domain.Bookmark]{
		insert: func(_ context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
			out := *b
			out.ID = 1
			return &out, nil
		},
	}
}

func catalogVehicle() domain.Vehicle {
	v := validVehicle()
	v.ID = 7
	return v
}

// ---- Create tests ----------------------------------------------------------

func TestCollectionService_Create_GeneratesTokenWhenAbsent(t *testing.T) {
	svc := service.NewBookmarkService(vehicleLookup(catalogVehicle()), echoBookmarkRepo())

	created, err := svc.Create(context.Background(), &domain.Bookmark{
		TokenRecord: domain.TokenRecord{VehicleID: 7},
	})

	require.NoError(t, err)
	// token.New produces unpadded base64url of 32 bytes: always 43 chars.
	assert.Len(t, created.Token, 43)
}

func TestCollectionService_Create_PreservesSuppliedToken(t *testing.T) {
	svc := service.NewBookmarkService(vehicleLookup(catalogVehicle()), echoBookmarkRepo())

	// Clients may supply any opaque string as a grouping token; it must be
	// stored verbatim, never rewritten.
	supplied := uuid.NewString()

	created, err := svc.Create(context.Background(), &domain.Bookmark{
		TokenRecord: domain.TokenRecord{VehicleID: 7, Token: supplied},
	})

	require.NoError(t, err)
	assert.Equal(t, supplied, created.Token)
}

func TestCollectionService_Create_EmbedsVehicle(t *testing.T) {
	vehicle := catalogVehicle()
	svc := service.NewBookmarkService(vehicleLookup(vehicle), echoBookmarkRepo())

	created, err := svc.Create(context.Background(), &domain.Bookmark{
		TokenRecord: domain.TokenRecord{VehicleID: 7},
	})

	require.NoError(t, err)
	assert.Equal(t, vehicle.ID, created.Vehicle.ID)
	assert.Equal(t, vehicle.Brand, created.Vehicle.Brand)
}

func TestCollectionService_Create_VehicleDoesNotExist(t *testing.T) {
	inserted := false
	records := echoBookmarkRepo()
	records.insert = func(_ context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
		inserted = true
		return b, nil
	}
	svc := service.NewBookmarkService(vehicleLookup(catalogVehicle()), records)

	_, err := svc.Create(context.Background(), &domain.Bookmark{
		TokenRecord: domain.TokenRecord{VehicleID: 9999},
	})

	// A dangling reference is a validation failure with a clear message,
	// not a storage-level integrity violation — and nothing is persisted.
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "vehicle does not exist")
	assert.False(t, inserted, "insert must not run when the vehicle is missing")
}

func TestCollectionService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	records := echoBookmarkRepo()
	records.insert = func(_ context.Context, _ *domain.Bookmark) (*domain.Bookmark, error) {
		return nil, repoErr
	}
	svc := service.NewBookmarkService(vehicleLookup(catalogVehicle()), records)

	_, err := svc.Create(context.Background(), &domain.Bookmark{
		TokenRecord: domain.TokenRecord{VehicleID: 7},
	})

	assert.ErrorIs(t, err, repoErr)
}

// ---- ListByToken tests -----------------------------------------------------

func TestCollectionService_ListByToken_EmptyTokenReturnsEmpty(t *testing.T) {
	queried := false
	records := &mockTokenScopedRepo[*domain.Bookmark]{
		listByToken: func(_ context.Context, _ string) ([]*domain.Bookmark, error) {
			queried = true
			return nil, nil
		},
	}
	svc := service.NewBookmarkService(vehicleLookup(catalogVehicle()), records)

	got, err := svc.ListByToken(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	// The security boundary: an absent token must never reach storage,
	// let alone leak the full collection.
	assert.False(t, queried, "repo must not be queried without a token")
}

func TestCollectionService_ListByToken_ReturnsGroup(t *testing.T) {
	tok := uuid.NewString()
	group := []*domain.Bookmark{
		{TokenRecord: domain.TokenRecord{ID: 2, VehicleID: 7, Token: tok}},
		{TokenRecord: domain.TokenRecord{ID: 1, VehicleID: 7, Token: tok}},
	}
	records := &mockTokenScopedRepo[*domain.Bookmark]{
		listByToken: func(_ context.Context, got string) ([]*domain.Bookmark, error) {
			assert.Equal(t, tok, got)
			return group, nil
		},
	}
	svc := service.NewBookmarkService(vehicleLookup(catalogVehicle()), records)

	got, err := svc.ListByToken(context.Background(), tok)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCollectionService_ListByToken_NilBecomesEmpty(t *testing.T) {
	records := &mockTokenScopedRepo[*domain.Bookmark]{
		listByToken: func(_ context.Context, _ string) ([]*domain.Bookmark, error) { return nil, nil },
	}
	svc := service.NewBookmarkService(vehicleLookup(catalogVehicle()), records)

	got, err := svc.ListByToken(context.Background(), "unknown-token")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Delete tests ----------------------------------------------------------

func TestCollectionService_Delete_OK(t *testing.T) {
	records := &mockTokenScopedRepo[*domain.Bookmark]{
		delete: func(_ context.Context, id int64) error {
			assert.EqualValues(t, 5, id)
			return nil
		},
	}
	svc := service.NewBookmarkService(vehicleLookup(catalogVehicle()), records)

	err := svc.Delete(context.Background(), 5)

	assert.NoError(t, err)
}

func TestCollectionService_Delete_NotFound(t *testing.T) {
	records := &mockTokenScopedRepo[*domain.Bookmark]{
		delete: func(_ context.Context, _ int64) error { return domain.ErrNotFound },
	}
	svc := service.NewBookmarkService(vehicleLookup(catalogVehicle()), records)

	err := svc.Delete(context.Background(), 9999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Booking validation ----------------------------------------------------

func validBooking() *domain.Booking {
	return &domain.Booking{
		TokenRecord:   domain.TokenRecord{VehicleID: 7},
		CustomerName:  "Priya Sharma",
		CustomerEmail: "priya@example.com",
	}
}

func echoBookingRepo() *mockTokenScopedRepo[*domain.Booking] {
	return &mockTokenScopedRepo[*domain.Booking]{
		insert: func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
			out := *b
			out.ID = 1
			return &out, nil
		},
	}
}

func TestBookingService_Create_Valid(t *testing.T) {
	svc := service.NewBookingService(vehicleLookup(catalogVehicle()), echoBookingRepo())

	created, err := svc.Create(context.Background(), validBooking())

	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", created.CustomerName)
	assert.Len(t, created.Token, 43)
}

func TestBookingService_Create_MissingCustomerName(t *testing.T) {
	svc := service.NewBookingService(vehicleLookup(catalogVehicle()), echoBookingRepo())

	b := validBooking()
	b.CustomerName = "   "

	_, err := svc.Create(context.Background(), b)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "customer_name")
}

func TestBookingService_Create_BadEmail(t *testing.T) {
	svc := service.NewBookingService(vehicleLookup(catalogVehicle()), echoBookingRepo())

	for _, bad := range []string{"", "not-an-email", "missing@domain@twice"} {
		t.Run(bad, func(t *testing.T) {
			b := validBooking()
			b.CustomerEmail = bad

			_, err := svc.Create(context.Background(), b)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Create_VehicleDoesNotExist(t *testing.T) {
	svc := service.NewBookingService(vehicleLookup(catalogVehicle()), echoBookingRepo())

	b := validBooking()
	b.VehicleID = 9999

	_, err := svc.Create(context.Background(), b)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "vehicle does not exist")
}
