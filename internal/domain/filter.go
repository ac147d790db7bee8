package domain

// VehicleFilter carries the recognized catalog listing filters from the HTTP
// layer to the repo layer. Zero-value fields mean "not filtered":
// empty strings for Brand/FuelType, nil pointers for the price bounds.
//
// The HTTP layer is responsible for dropping malformed price parameters
// silently — a filter that cannot be parsed behaves as if it were absent,
// it never produces an error.
type VehicleFilter struct {
	// Brand matches vehicles with exactly this brand.
	Brand string
	// FuelType matches vehicles with exactly this fuel type.
	FuelType string
	// MinPrice is an inclusive lower price bound.
	MinPrice *int64
	// MaxPrice is an inclusive upper price bound.
	MaxPrice *int64
}
