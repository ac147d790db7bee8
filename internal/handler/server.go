// Package handler implements the HTTP handlers for the Motorlane API.
// All handlers are methods on Server. Each endpoint decodes into an explicit
// typed request struct, calls the service layer, and encodes an explicit
// typed response struct — no dynamic payload inspection anywhere.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/motorlane/backend/internal/domain"
	"github.com/motorlane/backend/internal/middleware"
	"github.com/motorlane/backend/spec"
)

// VehicleServicer defines the business operations the vehicle handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type VehicleServicer interface {
	Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (domain.Vehicle, error)
	List(ctx context.Context, f domain.VehicleFilter) ([]domain.Vehicle, error)
	Summary(ctx context.Context) ([]domain.BrandCount, error)
}

// BookmarkServicer defines the operations the bookmark handlers depend on.
type BookmarkServicer interface {
	Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	ListByToken(ctx context.Context, tok string) ([]*domain.Bookmark, error)
	Delete(ctx context.Context, id int64) error
}

// BookingServicer defines the operations the booking handlers depend on.
// There is deliberately no Delete — bookings cannot be removed over HTTP.
type BookingServicer interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	ListByToken(ctx context.Context, tok string) ([]*domain.Booking, error)
}

// Server holds the dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	vehicles   VehicleServicer
	bookmarks  BookmarkServicer
	bookings   BookingServicer
	adminToken string
}

// NewServer constructs the Server with all its dependencies.
// adminToken is the shared secret the vehicle-creation gate compares against.
func NewServer(vehicles VehicleServicer, bookmarks BookmarkServicer, bookings BookingServicer, adminToken string) *Server {
	return &Server{
		vehicles:   vehicles,
		bookmarks:  bookmarks,
		bookings:   bookings,
		adminToken: adminToken,
	}
}

// Routes returns the chi router for the full API surface.
// Only vehicle creation sits behind the admin gate; everything else is open —
// the bookmark/booking endpoints authorize by capability token instead.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)
	r.Get("/openapi.yaml", s.getOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", s.listVehicles)
			r.With(middleware.NewAdminAuth(s.adminToken)).Post("/", s.createVehicle)
			r.Get("/summary", s.vehicleSummary)
			r.Get("/{id}", s.getVehicle)
		})

		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", s.listBookmarks)
			r.Post("/", s.createBookmark)
			r.Get("/my", s.listBookmarks) // alias kept for frontend compatibility
			r.Delete("/{id}", s.deleteBookmark)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", s.createBooking)
			r.Get("/my", s.listBookings)
		})
	})

	return r
}

// getOpenAPI serves the embedded OpenAPI document.
func (s *Server) getOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
