package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, malformed email, referencing
// a vehicle that does not exist).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")
