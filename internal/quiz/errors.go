package quiz

import "errors"

var (
	// ErrEmptyCatalog is returned when a challenge is requested before any
	// destinations have been seeded.
	ErrEmptyCatalog = errors.New("no destinations in catalog")
	// ErrDestinationNotFound indicates a submitted destination ID is unknown.
	ErrDestinationNotFound = errors.New("destination not found")
	// ErrUserNotFound indicates a user ID or username does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidInput is returned for missing required fields, before any
	// data access happens.
	ErrInvalidInput = errors.New("invalid input")
)
