// Package domain contains the core data types for the Motorlane API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Vehicle is a single listing in the catalog.
// Records are immutable after creation: there is no update path, and deletion
// happens only through the clearvehicles admin CLI (which cascades to any
// bookmarks and bookings referencing the vehicle).
type Vehicle struct {
	ID          int64
	Brand       string
	Name        string
	Price       int64 // minor currency units, never negative
	FuelType    string
	ImageURL    string
	Description string
	CreatedAt   time.Time
}

// BrandCount is one row of the catalog summary: how many vehicles a brand has.
type BrandCount struct {
	Brand string
	Total int64
}
