package stores

import "errors"

// Store errors
var (
	// Booking workflow errors
	ErrNoActiveDraft         = errors.New("no active booking draft")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrBookingNotCancellable = errors.New("booking is not cancellable")

	// Catalog errors
	ErrTourNotFound         = errors.New("tour not found")
	ErrCivilizationNotFound = errors.New("civilization not found")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
