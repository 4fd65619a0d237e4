package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBooking_CoversDate(t *testing.T) {
	b := Booking{CheckIn: date(2026, 2, 11), CheckOut: date(2026, 2, 12)}

	assert.True(t, b.CoversDate(date(2026, 2, 11)))
	assert.False(t, b.CoversDate(date(2026, 2, 12)), "check-out day is not a night of the stay")
	assert.False(t, b.CoversDate(date(2026, 2, 10)))
	assert.Equal(t, 1.0, b.Nights())
}

func TestBooking_OverlapsWith(t *testing.T) {
	b := Booking{CheckIn: date(2026, 2, 10), CheckOut: date(2026, 2, 14)}

	assert.True(t, b.OverlapsWith(date(2026, 2, 12), date(2026, 2, 15)))
	assert.False(t, b.OverlapsWith(date(2026, 2, 14), date(2026, 2, 16)))
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, BookingStatus("confirmed").IsValid())
}

func TestBooking_StatusHelpers(t *testing.T) {
	tests := []struct {
		status                        BookingStatus
		confirmed, pending, cancelled bool
	}{
		{StatusConfirmed, true, false, false},
		{StatusPending, false, true, false},
		{StatusCancelled, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := Booking{Status: tt.status}
			assert.Equal(t, tt.confirmed, b.IsConfirmed())
			assert.Equal(t, tt.pending, b.IsPending())
			assert.Equal(t, tt.cancelled, b.IsCancelled())
		})
	}
}

func TestCityOccupancy_OccupancyRate(t *testing.T) {
	c := CityOccupancy{TotalActiveProperties: 4, OccupiedProperties: 1}
	assert.Equal(t, 25.0, c.OccupancyRate())
	assert.False(t, c.IsFull())

	empty := CityOccupancy{}
	assert.Equal(t, 0.0, empty.OccupancyRate())
}

func TestNewQuote(t *testing.T) {
	q := NewQuote(&Property{ID: "P001", NightlyRate: 120, CleaningFee: 30}, 2)
	assert.Equal(t, 270.0, q.Total)
	assert.Equal(t, "P001", q.PropertyID)
}
