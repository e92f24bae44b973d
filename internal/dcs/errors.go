package dcs

import "errors"

// Common DCS API errors.
var (
	// ErrNotFound is returned when a repository or file does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when authentication fails.
	ErrUnauthorized = errors.New("unauthorized — check your DCS token")
	// ErrForbidden is returned when the token lacks access to the repository.
	ErrForbidden = errors.New("forbidden — token may lack read access")
)
