package domain

import (
	"time"

	"github.com/m04kA/SMC-RentalReservations/pkg/dates"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// AllStatuses lists every known booking status
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// IsValid returns true if the status is one of the known statuses
func (s BookingStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Booking represents a stay at a property.
// CheckIn and CheckOut are dates (midnight UTC), the stay is [CheckIn, CheckOut).
type Booking struct {
	ID         string
	PropertyID string
	GuestName  string
	Guests     int
	CheckIn    time.Time
	CheckOut   time.Time
	Status     BookingStatus
	CreatedAt  time.Time
}

// IsConfirmed returns true if the booking blocks the property
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsPending returns true if the booking awaits confirmation
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Nights returns the number of nights of the stay
func (b *Booking) Nights() float64 {
	return dates.Nights(b.CheckIn, b.CheckOut)
}

// CoversDate returns true if the guest stays the night of d (CheckIn <= d < CheckOut)
func (b *Booking) CoversDate(d time.Time) bool {
	return dates.Contains(b.CheckIn, b.CheckOut, d)
}

// OverlapsWith returns true if the stay intersects [checkIn, checkOut)
func (b *Booking) OverlapsWith(checkIn, checkOut time.Time) bool {
	return dates.Overlaps(b.CheckIn, b.CheckOut, checkIn, checkOut)
}

// BookingRequest is a raw booking request as submitted by a caller.
// Dates are kept as strings, they are validated by the ledger.
type BookingRequest struct {
	PropertyID string
	GuestName  string
	Guests     int
	CheckIn    string
	CheckOut   string
}
