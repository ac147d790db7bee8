package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorlane/backend/internal/domain"
	"github.com/motorlane/backend/internal/repo"
)

func TestVehicleRepo_Create(t *testing.T) {
	r := repo.NewVehicleRepo(newTestTx(t))
	ctx := context.Background()

	input := vehicleFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotZero(t, got.ID, "ID should be DB-generated")
	assert.Equal(t, input.Brand, got.Brand)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Price, got.Price)
	assert.Equal(t, input.FuelType, got.FuelType)
	assert.Equal(t, input.ImageURL, got.ImageURL)
	assert.Equal(t, input.Description, got.Description)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestVehicleRepo_GetByID(t *testing.T) {
	r := repo.NewVehicleRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, vehicleFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
}

func TestVehicleRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewVehicleRepo(newTestTx(t))

	_, err := r.GetByID(context.Background(), 999999999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehicleRepo_List_Filters(t *testing.T) {
	r := repo.NewVehicleRepo(newTestTx(t))
	ctx := context.Background()

	seed := []struct {
		brand, fuel string
		price       int64
	}{
		{"Toyota", "Petrol", 2000000},
		{"Toyota", "Hybrid", 3200000},
		{"Honda", "Petrol", 1500000},
		{"Tesla", "Electric", 4500000},
	}
	for _, s := range seed {
		v := vehicleFixture()
		v.Brand = s.brand
		v.FuelType = s.fuel
		v.Price = s.price
		_, err := r.Create(ctx, v)
		require.NoError(t, err)
	}

	price := func(n int64) *int64 { return &n }

	cases := []struct {
		name   string
		filter domain.VehicleFilter
		want   int
	}{
		{"no filter", domain.VehicleFilter{}, 4},
		{"brand", domain.VehicleFilter{Brand: "Toyota"}, 2},
		{"fuel type", domain.VehicleFilter{FuelType: "Petrol"}, 2},
		{"min price", domain.VehicleFilter{MinPrice: price(3000000)}, 2},
		{"max price", domain.VehicleFilter{MaxPrice: price(2000000)}, 2},
		{"price range", domain.VehicleFilter{MinPrice: price(1600000), MaxPrice: price(3500000)}, 2},
		{"brand and fuel", domain.VehicleFilter{Brand: "Toyota", FuelType: "Hybrid"}, 1},
		{"no match", domain.VehicleFilter{Brand: "Ford"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.List(ctx, tc.filter)
			require.NoError(t, err)
			assert.Len(t, got, tc.want)
		})
	}
}

func TestVehicleRepo_List_NewestFirst(t *testing.T) {
	r := repo.NewVehicleRepo(newTestTx(t))
	ctx := context.Background()

	first, err := r.Create(ctx, vehicleFixture())
	require.NoError(t, err)
	second, err := r.Create(ctx, vehicleFixture())
	require.NoError(t, err)

	got, err := r.List(ctx, domain.VehicleFilter{})

	require.NoError(t, err)
	require.Len(t, got, 2)
	// Rows created inside one transaction share a created_at timestamp, so
	// ordering falls through to the descending id tiebreak.
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}

func TestVehicleRepo_Summary(t *testing.T) {
	r := repo.NewVehicleRepo(newTestTx(t))
	ctx := context.Background()

	for _, brand := range []string{"Toyota", "Honda", "Toyota", "Toyota", "Honda"} {
		v := vehicleFixture()
		v.Brand = brand
		_, err := r.Create(ctx, v)
		require.NoError(t, err)
	}

	got, err := r.Summary(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	// Alphabetical by brand.
	assert.Equal(t, domain.BrandCount{Brand: "Honda", Total: 2}, got[0])
	assert.Equal(t, domain.BrandCount{Brand: "Toyota", Total: 3}, got[1])
}

func TestVehicleRepo_CountAndDeleteAll(t *testing.T) {
	tx := newTestTx(t)
	vehicles := repo.NewVehicleRepo(tx)
	bookmarks := repo.NewBookmarkRepo(tx)
	ctx := context.Background()

	created, err := vehicles.Create(ctx, vehicleFixture())
	require.NoError(t, err)
	_, err = vehicles.Create(ctx, vehicleFixture())
	require.NoError(t, err)

	// A dependent bookmark must cascade away with its vehicle.
	_, err = bookmarks.Insert(ctx, &domain.Bookmark{
		TokenRecord: domain.TokenRecord{VehicleID: created.ID, Token: "tok"},
	})
	require.NoError(t, err)

	n, err := vehicles.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	deleted, err := vehicles.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	n, err = vehicles.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	remaining, err := bookmarks.ListByToken(ctx, "tok")
	require.NoError(t, err)
	assert.Empty(t, remaining, "bookmarks must cascade with their vehicles")
}
