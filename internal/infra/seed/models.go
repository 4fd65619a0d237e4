package seed

import (
	"github.com/m04kA/SMC-RentalReservations/internal/domain"
	"github.com/m04kA/SMC-RentalReservations/pkg/dates"
)

// Dataset начальные данные: каталог и бронирования
type Dataset struct {
	Properties []PropertyRecord `toml:"properties" validate:"dive"`
	Bookings   []BookingRecord  `toml:"bookings" validate:"dive"`
}

// PropertyRecord объект размещения в файле данных
type PropertyRecord struct {
	ID          string   `toml:"id" validate:"required"`
	Name        string   `toml:"name" validate:"required"`
	City        string   `toml:"city" validate:"required"`
	Type        string   `toml:"type"`
	NightlyRate float64  `toml:"nightly_rate" validate:"gte=0"`
	CleaningFee float64  `toml:"cleaning_fee" validate:"gte=0"`
	MaxGuests   int      `toml:"max_guests" validate:"gt=0"`
	Amenities   []string `toml:"amenities" validate:"dive,required"`
	IsActive    bool     `toml:"is_active"`
}

// BookingRecord бронирование в файле данных.
// Вместимость объекта здесь не проверяется: исторические данные принимаются как есть.
type BookingRecord struct {
	ID         string `toml:"id" validate:"required"`
	PropertyID string `toml:"property_id" validate:"required"`
	GuestName  string `toml:"guest_name"`
	Guests     int    `toml:"guests" validate:"gt=0"`
	CheckIn    string `toml:"check_in" validate:"required,isodate"`
	CheckOut   string `toml:"check_out" validate:"required,isodate"`
	Status     string `toml:"status" validate:"required,bookingstatus"`
	CreatedAt  string `toml:"created_at" validate:"omitempty,isodate"`
}

// ToDomainProperties конвертирует каталог в domain модели
func (d *Dataset) ToDomainProperties() []domain.Property {
	result := make([]domain.Property, len(d.Properties))
	for i, p := range d.Properties {
		result[i] = domain.Property{
			ID:          p.ID,
			Name:        p.Name,
			City:        p.City,
			Type:        p.Type,
			NightlyRate: p.NightlyRate,
			CleaningFee: p.CleaningFee,
			MaxGuests:   p.MaxGuests,
			Amenities:   append([]string(nil), p.Amenities...),
			IsActive:    p.IsActive,
		}
	}
	return result
}

// ToDomainBookings конвертирует бронирования в domain модели.
// Даты уже проверены при загрузке.
func (d *Dataset) ToDomainBookings() []domain.Booking {
	result := make([]domain.Booking, len(d.Bookings))
	for i, b := range d.Bookings {
		checkIn, _ := dates.Parse(b.CheckIn)
		checkOut, _ := dates.Parse(b.CheckOut)
		createdAt, _ := dates.Parse(b.CreatedAt)

		result[i] = domain.Booking{
			ID:         b.ID,
			PropertyID: b.PropertyID,
			GuestName:  b.GuestName,
			Guests:     b.Guests,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			Status:     domain.BookingStatus(b.Status),
			CreatedAt:  createdAt,
		}
	}
	return result
}
