package reservations

import (
	"time"

	"github.com/m04kA/SMC-RentalReservations/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalReservations/internal/infra/storage/booking"
)

// CatalogRepository интерфейс каталога объектов размещения
type CatalogRepository interface {
	FindByID(id string) (domain.Property, error)
	ListActive() []domain.Property
	Search(filter domain.SearchFilter) []domain.Property
	All() []domain.Property
}

// BookingLedger интерфейс реестра бронирований
type BookingLedger interface {
	Create(catalog bookingRepo.PropertyFinder, req domain.BookingRequest) (domain.Booking, error)
	ConfirmWithReason(id string) error
	CancelWithReason(id string) error
	IsAvailable(propertyID string, checkIn, checkOut time.Time) bool
	GetByID(id string) (domain.Booking, error)
	List() []domain.Booking
}

// MetricsCollector интерфейс сбора метрик
type MetricsCollector interface {
	ObserveBookingRequest(result string)
	ObserveTransition(transition string, success bool)
	ObserveOccupancy(occupancyByCity map[string]float64, revenue float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// noopMetrics используется, когда метрики выключены
type noopMetrics struct{}

func (noopMetrics) ObserveBookingRequest(string)                  {}
func (noopMetrics) ObserveTransition(string, bool)                {}
func (noopMetrics) ObserveOccupancy(map[string]float64, float64) {}
