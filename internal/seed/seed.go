// Package seed populates the vehicle catalog on first start.
// The dataset is embedded in the binary; seeding is skipped entirely when the
// catalog already has vehicles, so restarts and redeploys never duplicate data.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/motorlane/backend/internal/domain"
	"github.com/motorlane/backend/internal/repo"
)

//go:embed vehicles.json
var vehiclesJSON []byte

// seedVehicle mirrors one entry of vehicles.json.
type seedVehicle struct {
	Brand       string `json:"brand"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	FuelType    string `json:"fuel_type"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

// Run inserts the embedded dataset when the catalog is empty and is a no-op
// otherwise. Call it after migrations have been applied.
func Run(ctx context.Context, vehicles repo.VehicleRepo, log *slog.Logger) error {
	n, err := vehicles.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed.Run: count: %w", err)
	}
	if n > 0 {
		return nil
	}

	var data []seedVehicle
	if err := json.Unmarshal(vehiclesJSON, &data); err != nil {
		return fmt.Errorf("seed.Run: parse embedded dataset: %w", err)
	}

	for _, sv := range data {
		_, err := vehicles.Create(ctx, domain.Vehicle{
			Brand:       sv.Brand,
			Name:        sv.Name,
			Price:       sv.Price,
			FuelType:    sv.FuelType,
			ImageURL:    sv.ImageURL,
			Description: sv.Description,
		})
		if err != nil {
			return fmt.Errorf("seed.Run: insert %s %s: %w", sv.Brand, sv.Name, err)
		}
	}

	log.Info("seeded vehicle catalog", "count", len(data))
	return nil
}
