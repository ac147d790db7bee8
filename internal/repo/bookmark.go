package repo

import (
	"github.com/jackc/pgx/v5"

	"github.com/motorlane/backend/internal/domain"
)

// NewBookmarkRepo constructs the bookmark instance of the token-scoped repo.
// Bookmarks carry no fields beyond the shared token-record shape.
func NewBookmarkRepo(db db) TokenScopedRepo[*domain.Bookmark] {
	return &pgTokenScopedRepo[*domain.Bookmark]{
		db: db,
		sql: tokenScopedSQL[*domain.Bookmark]{
			name: "BookmarkRepo",

			insert: `
				INSERT INTO bookmarks (vehicle_id, bookmark_token)
				VALUES (@vehicle_id, @token)
				RETURNING id, vehicle_id, bookmark_token, created_at`,

			list: `
				SELECT b.id, b.vehicle_id, b.bookmark_token, b.created_at,
				       v.id, v.brand, v.name, v.price, v.fuel_type, v.image_url, v.description, v.created_at
				FROM bookmarks b
				JOIN vehicles v ON v.id = b.vehicle_id
				WHERE b.bookmark_token = @token
				ORDER BY b.created_at DESC, b.id DESC`,

			delete: `DELETE FROM bookmarks WHERE id = @id`,

			insertArgs: func(b *domain.Bookmark) pgx.NamedArgs {
				return pgx.NamedArgs{"vehicle_id": b.VehicleID, "token": b.Token}
			},
			scan:       scanBookmark,
			scanJoined: scanBookmarkWithVehicle,
		},
	}
}

// scanBookmark maps an insert/RETURNING row into a domain.Bookmark.
func scanBookmark(s scanner) (*domain.Bookmark, error) {
	var b domain.Bookmark
	err := s.Scan(&b.ID, &b.VehicleID, &b.Token, &b.CreatedAt)
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return &b, nil
}

// scanBookmarkWithVehicle maps a joined list row, vehicle columns included.
func scanBookmarkWithVehicle(s scanner) (*domain.Bookmark, error) {
	var b domain.Bookmark
	v := &b.Vehicle
	err := s.Scan(
		&b.ID, &b.VehicleID, &b.Token, &b.CreatedAt,
		&v.ID, &v.Brand, &v.Name, &v.Price, &v.FuelType, &v.ImageURL, &v.Description, &v.CreatedAt,
	)
	if err != nil {
		return nil, notFoundOnNoRows(err)
	}
	return &b, nil
}
