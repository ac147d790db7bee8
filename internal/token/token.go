// Package token generates the capability tokens used to group bookmarks and
// bookings. Knowledge of a token is the only thing that grants access to the
// records created under it, so tokens must be unguessable: they are drawn from
// the operating system CSPRNG, never from a seeded pseudo-random sequence.
package token

import (
	"crypto/rand"
	"encoding/base64"
)

// size is the number of random bytes per token. 32 bytes gives 256 bits of
// entropy, which makes collisions and guessing negligible without any
// uniqueness check or retry on the storage side.
const size = 32

// New returns a fresh URL-safe capability token: 32 random bytes encoded as
// unpadded base64url (43 characters).
//
// It panics if the system randomness source cannot be read — a machine in
// that state must not hand out capability tokens.
func New() string {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic("token: reading system randomness: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
