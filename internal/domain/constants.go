package domain

// Booking identifiers
const (
	DefaultBookingIDPrefix = "B"
	BookingIDDigits        = 3 // B001, B002, ...
)

// Percent scale used by occupancy rates
const PercentScale = 100
