package domain

import "errors"

// Booking errors. Every failed booking request resolves to exactly one of them.
var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrPropertyInactive    = errors.New("property is inactive")
	ErrInvalidDates        = errors.New("invalid dates")
	ErrInvalidDateRange    = errors.New("check-in must be before check-out")
	ErrInvalidGuestCount   = errors.New("guests must be positive")
	ErrGuestCountExceeded  = errors.New("guests exceed max allowed")
	ErrPropertyUnavailable = errors.New("property not available")
	ErrBookingNotFound     = errors.New("booking not found")
)
