package models

import (
	"errors"
	"sort"

	"github.com/m04kA/SMC-RentalReservations/internal/domain"
	"github.com/m04kA/SMC-RentalReservations/pkg/dates"
)

// Коды результатов запроса на бронирование
const (
	CodeOK                  = "OK"
	CodePropertyNotFound    = "PROPERTY_NOT_FOUND"
	CodePropertyInactive    = "PROPERTY_INACTIVE"
	CodeInvalidDates        = "INVALID_DATES"
	CodeInvalidDateRange    = "INVALID_DATE_RANGE"
	CodeInvalidGuestCount   = "INVALID_GUEST_COUNT"
	CodeGuestCountExceeded  = "GUEST_COUNT_EXCEEDED"
	CodePropertyUnavailable = "PROPERTY_UNAVAILABLE"
	CodeBookingNotFound     = "BOOKING_NOT_FOUND"
	CodeInternal            = "INTERNAL"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{domain.ErrPropertyNotFound, CodePropertyNotFound},
	{domain.ErrPropertyInactive, CodePropertyInactive},
	{domain.ErrInvalidDates, CodeInvalidDates},
	{domain.ErrInvalidDateRange, CodeInvalidDateRange},
	{domain.ErrInvalidGuestCount, CodeInvalidGuestCount},
	{domain.ErrGuestCountExceeded, CodeGuestCountExceeded},
	{domain.ErrPropertyUnavailable, CodePropertyUnavailable},
	{domain.ErrBookingNotFound, CodeBookingNotFound},
}

// ErrorCode возвращает стабильный код ошибки (OK для nil)
func ErrorCode(err error) string {
	if err == nil {
		return CodeOK
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return CodeInternal
}

// ErrorMessage возвращает текст ошибки без технических деталей
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.err.Error()
		}
	}
	return "internal error"
}

// Request модели

// BookingRequest запрос на бронирование
type BookingRequest struct {
	PropertyID string `json:"propertyId"`
	GuestName  string `json:"guestName"`
	Guests     int    `json:"guests"`
	CheckIn    string `json:"checkIn"`  // "2026-02-20"
	CheckOut   string `json:"checkOut"` // "2026-02-22"
}

// ToDomain конвертирует запрос в domain модель
func (r *BookingRequest) ToDomain() domain.BookingRequest {
	return domain.BookingRequest{
		PropertyID: r.PropertyID,
		GuestName:  r.GuestName,
		Guests:     r.Guests,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
	}
}

// Response модели

// PropertyResponse объект размещения
type PropertyResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Type        string   `json:"type"`
	NightlyRate float64  `json:"nightlyRate"`
	CleaningFee float64  `json:"cleaningFee"`
	MaxGuests   int      `json:"maxGuests"`
	Amenities   []string `json:"amenities"`
	IsActive    bool     `json:"isActive"`
}

// BookingResponse бронирование
type BookingResponse struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`
	GuestName  string `json:"guestName"`
	Guests     int    `json:"guests"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

// BookingResult результат запроса на бронирование: либо бронирование, либо код ошибки
type BookingResult struct {
	Success bool             `json:"success"`
	Booking *BookingResponse `json:"booking,omitempty"`
	Error   string           `json:"error,omitempty"`
	Code    string           `json:"code,omitempty"`
}

// QuoteResponse расчет стоимости
type QuoteResponse struct {
	Nights      float64 `json:"nights"`
	NightlyRate float64 `json:"nightlyRate"`
	CleaningFee float64 `json:"cleaningFee"`
	Total       float64 `json:"total"`
}

// CityOccupancyResponse загрузка по городу
type CityOccupancyResponse struct {
	TotalActiveProperties int     `json:"totalActiveProperties"`
	OccupiedProperties    int     `json:"occupiedProperties"`
	OccupancyRate         float64 `json:"occupancyRate"`
}

// DailyReportResponse отчет за день
type DailyReportResponse struct {
	Date                    string                           `json:"date"`
	TotalProperties         int                              `json:"totalProperties"`
	ActiveProperties        int                              `json:"activeProperties"`
	InactiveProperties      int                              `json:"inactiveProperties"`
	TotalBookings           int                              `json:"totalBookings"`
	ConfirmedBookings       int                              `json:"confirmedBookings"`
	PendingBookings         int                              `json:"pendingBookings"`
	CancelledBookings       int                              `json:"cancelledBookings"`
	OccupancyByCity         map[string]CityOccupancyResponse `json:"occupancyByCity"`
	Cities                  []string                         `json:"cities"` // Отсортированные ключи occupancyByCity
	EstimatedRevenueForDate float64                          `json:"estimatedRevenueForDate"`
}

// Методы конвертации

// FromDomainProperty конвертирует domain модель в DTO
func FromDomainProperty(p domain.Property) PropertyResponse {
	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return PropertyResponse{
		ID:          p.ID,
		Name:        p.Name,
		City:        p.City,
		Type:        p.Type,
		NightlyRate: p.NightlyRate,
		CleaningFee: p.CleaningFee,
		MaxGuests:   p.MaxGuests,
		Amenities:   amenities,
		IsActive:    p.IsActive,
	}
}

// FromDomainPropertyList конвертирует список объектов
func FromDomainPropertyList(props []domain.Property) []PropertyResponse {
	result := make([]PropertyResponse, len(props))
	for i, p := range props {
		result[i] = FromDomainProperty(p)
	}
	return result
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		GuestName:  b.GuestName,
		Guests:     b.Guests,
		CheckIn:    dates.Format(b.CheckIn),
		CheckOut:   dates.Format(b.CheckOut),
		Status:     string(b.Status),
		CreatedAt:  dates.Format(b.CreatedAt),
	}
}

// NewBookingResult собирает результат запроса на бронирование
func NewBookingResult(b domain.Booking, err error) *BookingResult {
	if err != nil {
		return &BookingResult{
			Success: false,
			Error:   ErrorMessage(err),
			Code:    ErrorCode(err),
		}
	}

	return &BookingResult{
		Success: true,
		Booking: FromDomainBooking(b),
	}
}

// FromDomainQuote конвертирует расчет стоимости
func FromDomainQuote(q *domain.Quote) *QuoteResponse {
	if q == nil {
		return nil
	}

	return &QuoteResponse{
		Nights:      q.Nights,
		NightlyRate: q.NightlyRate,
		CleaningFee: q.CleaningFee,
		Total:       q.Total,
	}
}

// FromDomainReport конвертирует отчет за день
func FromDomainReport(r *domain.DailyReport) *DailyReportResponse {
	if r == nil {
		return nil
	}

	resp := &DailyReportResponse{
		Date:                    dates.Format(r.Date),
		TotalProperties:         r.TotalProperties,
		ActiveProperties:        r.ActiveProperties,
		InactiveProperties:      r.InactiveProperties,
		TotalBookings:           r.TotalBookings,
		ConfirmedBookings:       r.ConfirmedBookings,
		PendingBookings:         r.PendingBookings,
		CancelledBookings:       r.CancelledBookings,
		OccupancyByCity:         make(map[string]CityOccupancyResponse, len(r.OccupancyByCity)),
		Cities:                  make([]string, 0, len(r.OccupancyByCity)),
		EstimatedRevenueForDate: r.EstimatedRevenueForDate,
	}

	for name, city := range r.OccupancyByCity {
		resp.OccupancyByCity[name] = CityOccupancyResponse{
			TotalActiveProperties: city.TotalActiveProperties,
			OccupiedProperties:    city.OccupiedProperties,
			OccupancyRate:         city.OccupancyRate(),
		}
		resp.Cities = append(resp.Cities, name)
	}
	sort.Strings(resp.Cities)

	return resp
}
