package booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalReservations/internal/domain"
	"github.com/m04kA/SMC-RentalReservations/pkg/dates"
)

// validateRequest проверяет запрос против объекта размещения.
// Порядок проверок фиксирован: возвращается первая нарушенная.
func validateRequest(property *domain.Property, req domain.BookingRequest) (time.Time, time.Time, error) {
	if !property.IsActive {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: id=%s", domain.ErrPropertyInactive, property.ID)
	}

	checkIn, okIn := dates.Parse(req.CheckIn)
	checkOut, okOut := dates.Parse(req.CheckOut)
	if !okIn || !okOut {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: checkIn=%q, checkOut=%q", domain.ErrInvalidDates, req.CheckIn, req.CheckOut)
	}

	if !checkIn.Before(checkOut) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: checkIn=%s, checkOut=%s",
			domain.ErrInvalidDateRange, dates.Format(checkIn), dates.Format(checkOut))
	}

	if req.Guests <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: guests=%d", domain.ErrInvalidGuestCount, req.Guests)
	}

	if !property.CanHost(req.Guests) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: guests=%d, max=%d",
			domain.ErrGuestCountExceeded, req.Guests, property.MaxGuests)
	}

	return checkIn, checkOut, nil
}
