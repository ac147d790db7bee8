package service

import (
	"github.com/motorlane/backend/internal/domain"
	"github.com/motorlane/backend/internal/repo"
	"github.com/motorlane/backend/internal/token"
)

// NewBookmarkService constructs the bookmark instance of the capability
// collection. Bookmarks have no fields of their own, so no extra validation
// beyond the referential check in CollectionService.Create.
func NewBookmarkService(vehicles repo.VehicleRepo, bookmarks repo.TokenScopedRepo[*domain.Bookmark]) *CollectionService[*domain.Bookmark] {
	return &CollectionService[*domain.Bookmark]{
		name:     "BookmarkService",
		vehicles: vehicles,
		records:  bookmarks,
		newToken: token.New,
	}
}
