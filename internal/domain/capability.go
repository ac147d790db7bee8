package domain

import "time"

// TokenRecord is the shared shape of a capability-token-scoped child record.
// A record belongs to exactly one Vehicle and is addressable only by knowledge
// of its Token — an unguessable string acting as a bearer capability in place
// of an authenticated user identity. Many records may share one token; that is
// the grouping mechanism that lets an anonymous client accumulate several
// bookmarks or bookings under a single "session" token.
type TokenRecord struct {
	ID        int64
	VehicleID int64
	Token     string
	CreatedAt time.Time

	// Vehicle is the full referenced vehicle, loaded eagerly (single-query
	// join) when the record is listed or created, so response views never
	// need a second lookup.
	Vehicle Vehicle
}

// Base returns the embedded TokenRecord. Types embedding TokenRecord satisfy
// TokenScoped automatically, which is what lets the generic collection
// service and repo operate on bookmarks and bookings alike.
func (r *TokenRecord) Base() *TokenRecord { return r }

// TokenScoped is implemented by every record type that participates in the
// capability-token collection pattern.
type TokenScoped interface {
	Base() *TokenRecord
}

// Bookmark marks a vehicle as saved under a bookmark token.
// It carries no fields of its own beyond the shared token-record shape.
type Bookmark struct {
	TokenRecord
}

// Booking is a reservation request for a vehicle, grouped under a booking
// token. There is no delete endpoint for bookings.
type Booking struct {
	TokenRecord
	CustomerName  string
	CustomerEmail string
}
