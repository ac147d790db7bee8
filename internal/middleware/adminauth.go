package middleware

import (
	"encoding/json"
	"net/http"
)

// NewAdminAuth returns a middleware that gates an endpoint behind the static
// admin secret. The Authorization header must equal "Bearer " + secret
// byte for byte; anything else is refused with 403 before the wrapped
// handler runs, so a rejected request has no partial effect.
//
// This is a single shared secret, not an identity system: no hashing, no
// expiry, no rate limiting. The secret comes from process configuration and
// never changes while the server runs.
func NewAdminAuth(secret string) func(http.Handler) http.Handler {
	expected := "Bearer " + secret
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != expected {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]string{
						"code":    "forbidden",
						"message": "You are not authorized for this action. Invalid admin token.",
					},
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
