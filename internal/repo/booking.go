package repo

import (
	"github.com/jackc/pgx/v5"

	"github.com/motorlane/backend/internal/domain"
)

// NewBookingRepo constructs the booking instance of the token-scoped repo.
// Bookings add customer name and email on top of the shared shape. The
// generic Delete is implemented but never reached: no booking delete endpoint
// is exposed.
func NewBookingRepo(db db) TokenScopedRepo[*domain.Booking] {
	return &pgTokenScopedRepo[*domain.Booking]{
		db: db,
		sql: tokenScopedSQL[*domain.Booking]{
			name: "BookingRepo",

			insert: `
				INSERT INTO bookings (vehicle_id, customer_name, customer_email, booking_token)
				VALUES (@vehicle_id, @customer_name, @customer_email, @token)
				RETURNING id, vehicle_id, customer_name, customer_email, booking_token, created_at`,

			list: `
				SELECT b.id, b.vehicle_id, b.customer_name, b.customer_email, b.booking_token, b.created_at,
				       v.id, v.brand, v.name, v.price, v.fuel_type, v.image_url, v.description, v.created_at
				FROM bookings b
				JOIN vehicles v ON v.id = b.vehicle_id
				WHERE b.booking_token = @token
				ORDER BY b.created_at DESC, b.id DESC`,

			delete: `DELETE FROM bookings WHERE id = @id`,

			insertArgs: func(b *domain.Booking) pgx.NamedArgs {
				return pgx.NamedArgs{
					"vehicle_id":     b.VehicleID,
					"customer_name":  b.CustomerName,
					"customer_email": b.CustomerEmail,
					"token":          b.Token,
				}
			},
			scan:       scanBooking,
			scanJoined: scanBookingWithVehicle,
		},
	}
}

// scanBooking maps an insert/RETURNING row into a domain.Booking.
func scanBooking(s scanner) (*domain.Booking, error) {
	var b domain.Booking
	err := s.Scan(&b.ID, &b.VehicleID, &b.CustomerName, &b.CustomerEmail, &b.Token, &b.CreatedAt)
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return &b, nil
}

// scanBookingWithVehicle maps a joined list row, vehicle columns included.
func scanBookingWithVehicle(s scanner) (*domain.Booking, error) {
	var b domain.Booking
	v := &b.Vehicle
	err := s.Scan(
		&b.ID, &b.VehicleID, &b.CustomerName, &b.CustomerEmail, &b.Token, &b.CreatedAt,
		&v.ID, &v.Brand, &v.Name, &v.Price, &v.FuelType, &v.ImageURL, &v.Description, &v.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return &b, nil
}
