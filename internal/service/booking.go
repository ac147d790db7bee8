package service

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/motorlane/backend/internal/domain"
	"github.com/motorlane/backend/internal/repo"
	"github.com/motorlane/backend/internal/token"
)

// NewBookingService constructs the booking instance of the capability
// collection. Bookings validate the customer fields on top of the shared
// referential check. Note there is no delete endpoint for bookings, so the
// collection's Delete is never wired for this instance.
func NewBookingService(vehicles repo.VehicleRepo, bookings repo.TokenScopedRepo[*domain.Booking]) *CollectionService[*domain.Booking] {
	return &CollectionService[*domain.Booking]{
		name:     "BookingService",
		vehicles: vehicles,
		records:  bookings,
		newToken: token.New,
		validate: validateBooking,
	}
}

// validateBooking enforces the booking creation rules.
//   - customer_name must be non-blank.
//   - customer_email must parse as an address (RFC 5322 addr-spec).
func validateBooking(b *domain.Booking) error {
	if strings.TrimSpace(b.CustomerName) == "" {
		return fmt.Errorf("%w: customer_name is required", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(b.CustomerEmail); err != nil {
		return fmt.Errorf("%w: customer_email must be a valid email address", domain.ErrValidation)
	}
	return nil
}
