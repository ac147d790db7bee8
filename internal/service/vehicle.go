// Package service contains the business logic for the Motorlane API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/motorlane/backend/internal/domain"
	"github.com/motorlane/backend/internal/repo"
)

// VehicleService implements business logic for the vehicle catalog.
type VehicleService struct {
	repo repo.VehicleRepo
}

// NewVehicleService constructs a VehicleService backed by the provided VehicleRepo.
func NewVehicleService(r repo.VehicleRepo) *VehicleService {
	return &VehicleService{repo: r}
}

// Create validates and persists a new vehicle. Authorization happens at the
// HTTP layer (admin bearer middleware) before this is ever reached.
// Returns domain.ErrValidation if input violates business rules.
func (s *VehicleService) Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	if err := validateVehicle(v); err != nil {
		return domain.Vehicle{}, err
	}
	result, err := s.repo.Create(ctx, v)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single vehicle by ID.
// Returns domain.ErrNotFound if no vehicle with that ID exists.
func (s *VehicleService) GetByID(ctx context.Context, id int64) (domain.Vehicle, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all vehicles matching the filter, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *VehicleService) List(ctx context.Context, f domain.VehicleFilter) ([]domain.Vehicle, error) {
	vehicles, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("service.VehicleService.List: %w", err)
	}
	if vehicles == nil {
		return []domain.Vehicle{}, nil
	}
	return vehicles, nil
}

// Summary returns per-brand vehicle counts ordered alphabetically by brand.
// Always returns a non-nil slice so callers can safely range over it.
func (s *VehicleService) Summary(ctx context.Context) ([]domain.BrandCount, error) {
	counts, err := s.repo.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.VehicleService.Summary: %w", err)
	}
	if counts == nil {
		return []domain.BrandCount{}, nil
	}
	return counts, nil
}

// validateVehicle enforces the catalog's creation rules.
//   - brand, name, fuel_type, and description must be non-blank.
//   - price must not be negative.
//   - image_url must parse as an absolute URL.
//
// fuel_type is deliberately NOT validated against a closed set — the catalog
// treats it as a free-form label (Petrol/Diesel/Electric by convention).
func validateVehicle(v domain.Vehicle) error {
	if strings.TrimSpace(v.Brand) == "" {
		return fmt.Errorf("%w: brand is required", domain.ErrValidation)
	}
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(v.FuelType) == "" {
		return fmt.Errorf("%w: fuel_type is required", domain.ErrValidation)
	}
	if strings.TrimSpace(v.Description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if v.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	u, err := url.Parse(v.ImageURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: image_url must be a valid URL", domain.ErrValidation)
	}
	return nil
}
