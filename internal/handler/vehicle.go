package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/motorlane/backend/internal/domain"
)

// vehicleResponse is the JSON view of a catalog vehicle.
type vehicleResponse struct {
	ID          int64     `json:"id"`
	Brand       string    `json:"brand"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	FuelType    string    `json:"fuel_type"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// createVehicleRequest is the admin-gated vehicle creation body.
type createVehicleRequest struct {
	Brand       string `json:"brand"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	FuelType    string `json:"fuel_type"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

// brandCountResponse is one row of the catalog summary view.
type brandCountResponse struct {
	Brand string `json:"brand"`
	Total int64  `json:"total"`
}

// listVehicles handles GET /api/vehicles.
// Recognized query parameters: brand, fuel_type (exact match), min_price,
// max_price (inclusive bounds). Filters that are absent or fail to parse as
// integers are dropped silently — listing stays permissive.
func (s *Server) listVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.vehicles.List(r.Context(), parseVehicleFilter(r.URL.Query()))
	if err != nil {
		internalError(w, r, err)
		return
	}

	resp := make([]vehicleResponse, len(vehicles))
	for i, v := range vehicles {
		resp[i] = vehicleToResponse(v)
	}
	writeJSON(w, http.StatusOK, resp)
}

// createVehicle handles POST /api/vehicles.
// The admin bearer middleware has already run; an unauthorized request never
// reaches this method.
func (s *Server) createVehicle(w http.ResponseWriter, r *http.Request) {
	var req createVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	created, err := s.vehicles.Create(r.Context(), domain.Vehicle{
		Brand:       req.Brand,
		Name:        req.Name,
		Price:       req.Price,
		FuelType:    req.FuelType,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationError(w, err)
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, vehicleToResponse(created))
}

// getVehicle handles GET /api/vehicles/{id}.
// A non-numeric id is indistinguishable from an unknown one: both are 404.
func (s *Server) getVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		notFound(w, "vehicle not found")
		return
	}

	vehicle, err := s.vehicles.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "vehicle not found")
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, vehicleToResponse(vehicle))
}

// vehicleSummary handles GET /api/vehicles/summary.
func (s *Server) vehicleSummary(w http.ResponseWriter, r *http.Request) {
	counts, err := s.vehicles.Summary(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}

	resp := make([]brandCountResponse, len(counts))
	for i, c := range counts {
		resp[i] = brandCountResponse{Brand: c.Brand, Total: c.Total}
	}
	writeJSON(w, http.StatusOK, resp)
}

// --- mapping helpers --------------------------------------------------------

// parseVehicleFilter builds a VehicleFilter from the listing query parameters.
// Malformed price values are treated as absent, never as errors.
func parseVehicleFilter(q url.Values) domain.VehicleFilter {
	f := domain.VehicleFilter{
		Brand:    q.Get("brand"),
		FuelType: q.Get("fuel_type"),
	}
	if n, err := strconv.ParseInt(q.Get("min_price"), 10, 64); err == nil {
		f.MinPrice = &n
	}
	if n, err := strconv.ParseInt(q.Get("max_price"), 10, 64); err == nil {
		f.MaxPrice = &n
	}
	return f
}

// vehicleToResponse converts a domain.Vehicle into its JSON view.
func vehicleToResponse(v domain.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:          v.ID,
		Brand:       v.Brand,
		Name:        v.Name,
		Price:       v.Price,
		FuelType:    v.FuelType,
		ImageURL:    v.ImageURL,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
	}
}
