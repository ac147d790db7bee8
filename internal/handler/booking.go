package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/motorlane/backend/internal/domain"
)

// bookingResponse is the JSON view of a booking, vehicle embedded in full.
type bookingResponse struct {
	ID            int64           `json:"id"`
	Vehicle       vehicleResponse `json:"vehicle"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	BookingToken  string          `json:"booking_token"`
	CreatedAt     time.Time       `json:"created_at"`
}

// createBookingRequest is the booking creation body. CustomerEmail uses the
// oapi-codegen email type so a malformed address is rejected during JSON
// decoding, before any of the handler logic runs. BookingToken follows the
// same optional grouping semantics as bookmarks.
type createBookingRequest struct {
	Vehicle       int64               `json:"vehicle"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail openapi_types.Email `json:"customer_email"`
	BookingToken  string              `json:"booking_token"`
}

// createBooking handles POST /api/bookings.
func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, openapi_types.ErrValidationEmail) {
			badRequest(w, "customer_email must be a valid email address")
			return
		}
		badRequest(w, "invalid request body")
		return
	}
	if req.Vehicle == 0 {
		badRequest(w, "vehicle is required")
		return
	}

	created, err := s.bookings.Create(r.Context(), &domain.Booking{
		TokenRecord: domain.TokenRecord{
			VehicleID: req.Vehicle,
			Token:     req.BookingToken,
		},
		CustomerName:  req.CustomerName,
		CustomerEmail: string(req.CustomerEmail),
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationError(w, err)
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, bookingToResponse(created))
}

// listBookings handles GET /api/bookings/my.
// Same token scoping as bookmarks: no token, empty list.
func (s *Server) listBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.bookings.ListByToken(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		internalError(w, r, err)
		return
	}

	resp := make([]bookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = bookingToResponse(b)
	}
	writeJSON(w, http.StatusOK, resp)
}

// bookingToResponse converts a domain.Booking into its JSON view.
func bookingToResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		Vehicle:       vehicleToResponse(b.Vehicle),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		BookingToken:  b.Token,
		CreatedAt:     b.CreatedAt,
	}
}
