package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/motorlane/backend/internal/domain"
	"github.com/motorlane/backend/internal/handler"
)

const testAdminToken = "test-admin-secret"

// mockVehicleService implements handler.VehicleServicer through function
// fields so each test sets exactly the behavior it needs.
type mockVehicleService struct {
	create  func(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)
	getByID func(ctx context.Context, id int64) (domain.Vehicle, error)
	list    func(ctx context.Context, f domain.VehicleFilter) ([]domain.Vehicle, error)
	summary func(ctx context.Context) ([]domain.BrandCount, error)
}

func (m *mockVehicleService) Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	return m.create(ctx, v)
}
func (m *mockVehicleService) GetByID(ctx context.Context, id int64) (domain.Vehicle, error) {
	return m.getByID(ctx, id)
}
func (m *mockVehicleService) List(ctx context.Context, f domain.VehicleFilter) ([]domain.Vehicle, error) {
	return m.list(ctx, f)
}
func (m *mockVehicleService) Summary(ctx context.Context) ([]domain.BrandCount, error) {
	return m.summary(ctx)
}

var _ handler.VehicleServicer = (*mockVehicleService)(nil)

type mockBookmarkService struct {
	create      func(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	listByToken func(ctx context.Context, tok string) ([]*domain.Bookmark, error)
	delete      func(ctx context.Context, id int64) error
}

func (m *mockBookmarkService) Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	return m.create(ctx, b)
}
func (m *mockBookmarkService) ListByToken(ctx context.Context, tok string) ([]*domain.Bookmark, error) {
	return m.listByToken(ctx, tok)
}
func (m *mockBookmarkService) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

var _ handler.BookmarkServicer = (*mockBookmarkService)(nil)

type mockBookingService struct {
	create      func(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	listByToken func(ctx context.Context, tok string) ([]*domain.Booking, error)
	delete      func(ctx context.Context, id int64) error
}

func (m *mockBookingService) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	return m.create(ctx, b)
}
func (m *mockBookingService) ListByToken(ctx context.Context, tok string) ([]*domain.Booking, error) {
	return m.listByToken(ctx, tok)
}

var _ handler.BookingServicer = (*mockBookingService)(nil)

// newTestServer builds the full router with the given mocks. Nil mocks are
// replaced with empty ones so unrelated routes still register.
func newTestServer(vehicles *mockVehicleService, bookmarks *mockBookmarkService, bookings *mockBookingService) http.Handler {
	if vehicles == nil {
		vehicles = &mockVehicleService{}
	}
	if bookmarks == nil {
		bookmarks = &mockBookmarkService{}
	}
	if bookings == nil {
		bookings = &mockBookingService{}
	}
	return handler.NewServer(vehicles, bookmarks, bookings, testAdminToken).Routes()
}

// doRequest runs one request through the router and returns the recorder.
func doRequest(t *testing.T, h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// adminHeader is the Authorization header the vehicle-creation gate accepts.
func adminHeader() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testAdminToken}
}

// decodeBody unmarshals the recorded JSON body into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// errorCode extracts the machine-readable code from an error payload.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, rec, &payload)
	return payload.Error.Code
}

// errorMessage extracts the human-readable message from an error payload.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, rec, &payload)
	return payload.Error.Message
}
