package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/motorlane/backend/internal/domain"
)

// bookmarkResponse is the JSON view of a bookmark. The referenced vehicle is
// embedded in full so clients never need a second lookup, and the effective
// token is always echoed back — that is how a client learns the token when
// the server generated it.
type bookmarkResponse struct {
	ID            int64           `json:"id"`
	Vehicle       vehicleResponse `json:"vehicle"`
	BookmarkToken string          `json:"bookmark_token"`
	CreatedAt     time.Time       `json:"created_at"`
}

// createBookmarkRequest is the bookmark creation body. BookmarkToken is
// optional: when present it is stored verbatim so the client can group
// several bookmarks under one token; when absent the server generates one.
type createBookmarkRequest struct {
	Vehicle       int64  `json:"vehicle"`
	BookmarkToken string `json:"bookmark_token"`
}

// listBookmarks handles GET /api/bookmarks and its /my alias.
// The token query parameter scopes the result; without it the response is
// always an empty list, never the whole collection.
func (s *Server) listBookmarks(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := s.bookmarks.ListByToken(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		internalError(w, r, err)
		return
	}

	resp := make([]bookmarkResponse, len(bookmarks))
	for i, b := range bookmarks {
		resp[i] = bookmarkToResponse(b)
	}
	writeJSON(w, http.StatusOK, resp)
}

// createBookmark handles POST /api/bookmarks.
func (s *Server) createBookmark(w http.ResponseWriter, r *http.Request) {
	var req createBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.Vehicle == 0 {
		badRequest(w, "vehicle is required")
		return
	}

	created, err := s.bookmarks.Create(r.Context(), &domain.Bookmark{
		TokenRecord: domain.TokenRecord{
			VehicleID: req.Vehicle,
			Token:     req.BookmarkToken,
		},
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationError(w, err)
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, bookmarkToResponse(created))
}

// deleteBookmark handles DELETE /api/bookmarks/{id}.
// No token accompanies the request: id possession alone authorizes deletion.
func (s *Server) deleteBookmark(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		notFound(w, "bookmark not found")
		return
	}

	if err := s.bookmarks.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "bookmark not found")
			return
		}
		internalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// bookmarkToResponse converts a domain.Bookmark into its JSON view.
func bookmarkToResponse(b *domain.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		ID:            b.ID,
		Vehicle:       vehicleToResponse(b.Vehicle),
		BookmarkToken: b.Token,
		CreatedAt:     b.CreatedAt,
	}
}
